package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/brain"
)

func newPostCommand(repoDir *string) *cobra.Command {
	var businessFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "post <description>",
		Short: "Interpret a description and post it to the ledger",
		Example: `  ledgerbrain post "Paid rent 5000"
  ledgerbrain post --dry-run "Paid 1180 incl GST 18% for supplies via bank"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			businessID, err := p.businessID(businessFlag)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			ev, err := p.pipeline.InterpretAndPost(text, brain.BusinessContext{BusinessID: businessID})
			if err != nil {
				return err
			}

			if !dryRun {
				if err := p.store.Append(ev); err != nil {
					return fmt.Errorf("saving transaction: %w", err)
				}
				p.log.WithFields(logrus.Fields{
					"tx_id":       ev.ID,
					"business_id": ev.BusinessID,
				}).Info("Posted transaction")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ev)
		},
	}

	cmd.Flags().StringVar(&businessFlag, "business", "", "business id (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the transaction without saving it")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newConfirmCommand(repoDir *string) *cobra.Command {
	var businessFlag string

	cmd := &cobra.Command{
		Use:   "confirm <transaction-id>",
		Short: "Mark a draft transaction as confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			businessID, err := p.businessID(businessFlag)
			if err != nil {
				return err
			}

			ev, err := p.store.Confirm(businessID, args[0])
			if err != nil {
				return err
			}
			p.log.WithFields(logrus.Fields{
				"tx_id":       ev.ID,
				"business_id": ev.BusinessID,
			}).Info("Confirmed transaction")

			fmt.Fprintf(cmd.OutOrStdout(), "Confirmed %s (%s %s)\n", ev.ID, ev.Category, ev.Tax.Total.StringFixed(0))
			return nil
		},
	}

	cmd.Flags().StringVar(&businessFlag, "business", "", "business id (overrides config)")

	return cmd
}

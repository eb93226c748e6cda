package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

func newListCommand(repoDir *string) *cobra.Command {
	var businessFlag string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posted transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !model.Status(status).Valid() {
				return fmt.Errorf("invalid --status %q: want draft or confirmed", status)
			}

			p, err := openProject(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			businessID, err := p.businessID(businessFlag)
			if err != nil {
				return err
			}

			events, err := p.store.List(businessID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tCATEGORY\tMODE\tTOTAL\tDESCRIPTION")
			for _, ev := range events {
				if status != "" && string(ev.Status) != status {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					ev.ID, ev.Date, ev.Status, ev.Category,
					ev.Mode, ev.Tax.Total.StringFixed(0), ev.RawText)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&businessFlag, "business", "", "business id (overrides config)")
	cmd.Flags().StringVar(&status, "status", "", "only show draft or confirmed transactions")

	return cmd
}

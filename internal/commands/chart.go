package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

func newChartCommand(repoDir *string) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := model.AccountTypes
			if accountType != "" {
				t := model.AccountType(accountType)
				if !t.Valid() {
					return fmt.Errorf("invalid --type %q", accountType)
				}
				types = []model.AccountType{t}
			}

			p, err := openProject(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range types {
				fmt.Fprintf(out, "%s:\n", t)
				for _, name := range p.chart.Names(t) {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "only print accounts of this type")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/brain"
	"github.com/cleared-dev/ledgerbrain/internal/importer"
)

func newImportCommand(repoDir *string) *cobra.Command {
	var businessFlag string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Post every narrations CSV waiting in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			businessID, err := p.businessID(businessFlag)
			if err != nil {
				return err
			}

			sum, err := importer.RunInbox(p.root, p.pipeline, p.store, brain.BusinessContext{BusinessID: businessID})
			out := cmd.OutOrStdout()
			for _, res := range sum.Rejected {
				fmt.Fprintf(out, "  row %d rejected: %q: %v\n", res.Row, res.Text, res.Err)
			}
			if err != nil {
				return err
			}

			if len(sum.Files) == 0 {
				fmt.Fprintln(out, "Nothing to import.")
				return nil
			}
			fmt.Fprintf(out, "Imported %d file(s): %d posted, %d rejected\n",
				len(sum.Files), sum.Posted, len(sum.Rejected))
			return nil
		},
	}

	cmd.Flags().StringVar(&businessFlag, "business", "", "default business id for rows without one")

	return cmd
}

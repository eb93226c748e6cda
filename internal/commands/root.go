package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var repoDir string

	rootCmd := &cobra.Command{
		Use:     "ledgerbrain",
		Short:   "Turn plain-text money notes into balanced journal entries",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envPath := filepath.Join(repoDir, ".env")
			if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading %s: %w", envPath, err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", ".", "project directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPostCommand(&repoDir))
	rootCmd.AddCommand(newImportCommand(&repoDir))
	rootCmd.AddCommand(newListCommand(&repoDir))
	rootCmd.AddCommand(newConfirmCommand(&repoDir))
	rootCmd.AddCommand(newChartCommand(&repoDir))

	return rootCmd
}

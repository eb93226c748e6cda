package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/config"
	"github.com/cleared-dev/ledgerbrain/internal/importer"
)

func newInitCommand() *cobra.Command {
	var name string
	var businessID string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerbrain project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if businessID == "" {
				businessID = slug(name)
			}
			return runInit(cmd.OutOrStdout(), absDir, name, businessID, entityType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&businessID, "business-id", "", "business id (defaults to a slug of --name)")
	cmd.Flags().StringVar(&entityType, "entity-type", "sole_proprietor", "entity type")

	return cmd
}

func runInit(out io.Writer, dir, name, businessID, entityType string) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(businessID, name, entityType)

	dirs := []string{
		filepath.Dir(accounts.ChartFile),
		importer.InboxDir,
		importer.DoneDir,
		filepath.Join(cfg.Ledger.Dir, businessID),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return err
	}

	if err := accounts.Default(entityType).Save(dir); err != nil {
		return err
	}

	gitignore := ".env\n" + importer.DoneDir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Fprintf(out, "Initialized ledgerbrain project %q at %s (business id %s)\n", name, dir, businessID)
	return nil
}

// slug lowercases s and joins its alphanumeric runs with dashes.
func slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	if len(fields) == 0 {
		return "default"
	}
	return strings.Join(fields, "-")
}

package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// ChartFile is the chart of accounts location relative to a project root.
const ChartFile = "accounts/chart-of-accounts.csv"

// Chart is an immutable chart of accounts grouped by account type.
// It is built once and shared by every pipeline stage that needs it.
type Chart struct {
	accounts []model.Account
	byType   map[model.AccountType][]string
	permit   map[model.AccountType]map[string]bool
}

// NewChart builds a Chart from a slice of accounts. The slice is copied.
func NewChart(accounts []model.Account) *Chart {
	c := &Chart{
		accounts: append([]model.Account(nil), accounts...),
		byType:   make(map[model.AccountType][]string),
		permit:   make(map[model.AccountType]map[string]bool),
	}
	for _, a := range c.accounts {
		if c.permit[a.Type] == nil {
			c.permit[a.Type] = make(map[string]bool)
		}
		if c.permit[a.Type][a.Name] {
			continue
		}
		c.permit[a.Type][a.Name] = true
		c.byType[a.Type] = append(c.byType[a.Type], a.Name)
	}
	return c
}

// Default returns the default chart for the given entity type.
func Default(entityType string) *Chart {
	return NewChart(DefaultChart(entityType))
}

// Load reads chart-of-accounts.csv from a project root and returns a Chart.
func Load(repoRoot string) (*Chart, error) {
	return LoadFile(filepath.Join(repoRoot, ChartFile))
}

// LoadFile reads a chart of accounts CSV from an explicit path.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(accts), nil
}

// All returns a copy of all accounts in file order.
func (c *Chart) All() []model.Account {
	return append([]model.Account(nil), c.accounts...)
}

// Names returns the permitted account names for an account type.
func (c *Chart) Names(accountType model.AccountType) []string {
	return append([]string(nil), c.byType[accountType]...)
}

// Permits reports whether name is a permitted account of the given type.
func (c *Chart) Permits(accountType model.AccountType, name string) bool {
	return c.permit[accountType][name]
}

// Exists reports whether name is an account of any type.
func (c *Chart) Exists(name string) bool {
	for _, names := range c.permit {
		if names[name] {
			return true
		}
	}
	return false
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (c *Chart) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, filepath.Dir(ChartFile))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(repoRoot, ChartFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

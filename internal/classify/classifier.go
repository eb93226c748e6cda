package classify

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// Classification is the outcome of classifying one description.
type Classification struct {
	Direction   model.Direction
	AccountType model.AccountType
	Category    string
	// Keyword is the word that selected the category, empty for the default.
	Keyword string
}

// Classifier resolves descriptions with fixed-priority rule tables.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	direction Table[Flow]
	income    Table[string]
	expense   Table[string]
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithDirectionRules replaces the direction table.
func WithDirectionRules(t Table[Flow]) Option {
	return func(c *Classifier) { c.direction = t }
}

// WithIncomeRules replaces the income category table.
func WithIncomeRules(t Table[string]) Option {
	return func(c *Classifier) { c.income = t }
}

// WithExpenseRules replaces the expense category table.
func WithExpenseRules(t Table[string]) Option {
	return func(c *Classifier) { c.expense = t }
}

// New returns a Classifier using the default rule tables unless overridden.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		direction: DefaultDirectionRules(),
		income:    DefaultIncomeRules(),
		expense:   DefaultExpenseRules(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify resolves direction, account type and category for text.
// It never fails: unmatched text falls through to each table's default.
func (c *Classifier) Classify(text string) Classification {
	lowered := strings.ToLower(text)

	flow, _ := c.direction.Resolve(lowered)
	categories := c.expense
	if flow.Direction == model.DirectionIncome {
		categories = c.income
	}
	category, kw := categories.Resolve(lowered)

	return Classification{
		Direction:   flow.Direction,
		AccountType: flow.AccountType,
		Category:    category,
		Keyword:     kw,
	}
}

// Validate checks every category the rule tables can produce against chart.
// It reports each result the chart does not permit for its account type.
func (c *Classifier) Validate(chart *accounts.Chart) error {
	var missing []string
	check := func(at model.AccountType, t Table[string]) {
		names := []string{t.Default}
		for _, r := range t.Rules {
			names = append(names, r.Result)
		}
		for _, n := range names {
			if !chart.Permits(at, n) {
				missing = append(missing, fmt.Sprintf("%s/%s", at, n))
			}
		}
	}

	flows := []Flow{c.direction.Default}
	for _, r := range c.direction.Rules {
		flows = append(flows, r.Result)
	}
	for _, f := range flows {
		switch f.AccountType {
		case model.AccountTypeIncome:
			check(f.AccountType, c.income)
		case model.AccountTypeExpense:
			check(f.AccountType, c.expense)
		default:
			missing = append(missing, fmt.Sprintf("%s has no category table", f.AccountType))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("classifier rules not in chart of accounts: %s", strings.Join(missing, "; "))
	}
	return nil
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text        string
		direction   model.Direction
		accountType model.AccountType
		category    string
	}{
		{"Paid rent 5000", model.DirectionExpense, model.AccountTypeExpense, "Rent"},
		{"Received 10000 from client", model.DirectionIncome, model.AccountTypeIncome, "Sales"},
		{"got 500 refund from vendor", model.DirectionIncome, model.AccountTypeIncome, "Refunds"},
		{"Sale of goods 1200", model.DirectionIncome, model.AccountTypeIncome, "Sales"},
		{"SALARY paid 30000", model.DirectionExpense, model.AccountTypeExpense, "Salary"},
		{"team lunch 800", model.DirectionExpense, model.AccountTypeExpense, "Office Supplies"},
		{"food for staff 300", model.DirectionExpense, model.AccountTypeExpense, "Office Supplies"},
		{"bought printer 9000", model.DirectionExpense, model.AccountTypeExpense, "General"},
		// rent outranks salary
		{"rent and salary 100", model.DirectionExpense, model.AccountTypeExpense, "Rent"},
		// refund alone does not make a description income
		{"refund issued 200", model.DirectionExpense, model.AccountTypeExpense, "General"},
	}
	c := New()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.direction, got.Direction)
			assert.Equal(t, tt.accountType, got.AccountType)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestClassify_Keyword(t *testing.T) {
	c := New()
	assert.Equal(t, "lunch", c.Classify("Lunch 300").Keyword)
	assert.Empty(t, c.Classify("stationery 300").Keyword)
}

func TestTableResolve_FirstMatchWins(t *testing.T) {
	table := Table[string]{
		Rules: []Rule[string]{
			{Keywords: []string{"a"}, Result: "first"},
			{Keywords: []string{"ab"}, Result: "second"},
		},
		Default: "none",
	}

	got, kw := table.Resolve("xab")
	assert.Equal(t, "first", got)
	assert.Equal(t, "a", kw)

	got, kw = table.Resolve("zzz")
	assert.Equal(t, "none", got)
	assert.Empty(t, kw)
}

func TestDefaultModeRules(t *testing.T) {
	tests := []struct {
		text string
		want model.PaymentMode
	}{
		{"paid rent 5000", model.ModeCash},
		{"paid via bank 5000", model.ModeBank},
		{"bank transfer 5000", model.ModeBank},
		{"paid by upi 5000", model.ModeUPI},
		{"upi bank 5000", model.ModeBank},
	}
	rules := DefaultModeRules()
	for _, tt := range tests {
		got, _ := rules.Resolve(tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestWithExpenseRules_Extends(t *testing.T) {
	rules := DefaultExpenseRules()
	rules.Rules = append(rules.Rules, Rule[string]{Keywords: []string{"electricity"}, Result: "Utilities"})

	c := New(WithExpenseRules(rules))
	assert.Equal(t, "Utilities", c.Classify("electricity bill 1500").Category)
	assert.Equal(t, "Rent", c.Classify("rent 1500").Category)
}

func TestValidate(t *testing.T) {
	chart := accounts.Default("sole_proprietor")
	require.NoError(t, New().Validate(chart))

	rules := DefaultExpenseRules()
	rules.Rules = append(rules.Rules, Rule[string]{Keywords: []string{"fuel"}, Result: "Fuel"})
	err := New(WithExpenseRules(rules)).Validate(chart)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expense/Fuel")
}

func TestValidate_UnsupportedFlow(t *testing.T) {
	dir := DefaultDirectionRules()
	dir.Rules = append(dir.Rules, Rule[Flow]{
		Keywords: []string{"loan"},
		Result:   Flow{Direction: model.DirectionIncome, AccountType: model.AccountTypeLiability},
	})
	err := New(WithDirectionRules(dir)).Validate(accounts.Default(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Liability has no category table")
}

// Package classify resolves keyword signals in a description into a direction,
// an account type and a category account using ordered rule tables.
package classify

import (
	"strings"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// Rule maps any of a set of keywords to a result. Keywords match as
// case-insensitive substrings of the description.
type Rule[T any] struct {
	Keywords []string
	Result   T
}

// Matches reports whether lowered contains any of the rule's keywords.
// lowered must already be lowercase.
func (r Rule[T]) Matches(lowered string) (string, bool) {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

// Table is an ordered rule list with a fallback. The first matching rule wins.
type Table[T any] struct {
	Rules   []Rule[T]
	Default T
}

// Resolve evaluates the table against lowered text. The returned keyword is
// empty when the default was used.
func (t Table[T]) Resolve(lowered string) (result T, keyword string) {
	for _, r := range t.Rules {
		if kw, ok := r.Matches(lowered); ok {
			return r.Result, kw
		}
	}
	return t.Default, ""
}

// Flow is the direction plus the account type it posts against.
type Flow struct {
	Direction   model.Direction
	AccountType model.AccountType
}

// DefaultDirectionRules marks a description as income on any of these words.
func DefaultDirectionRules() Table[Flow] {
	return Table[Flow]{
		Rules: []Rule[Flow]{
			{
				Keywords: []string{"received", "got", "sale"},
				Result:   Flow{Direction: model.DirectionIncome, AccountType: model.AccountTypeIncome},
			},
		},
		Default: Flow{Direction: model.DirectionExpense, AccountType: model.AccountTypeExpense},
	}
}

// DefaultIncomeRules picks the income account.
func DefaultIncomeRules() Table[string] {
	return Table[string]{
		Rules: []Rule[string]{
			{Keywords: []string{"refund"}, Result: "Refunds"},
		},
		Default: "Sales",
	}
}

// DefaultExpenseRules picks the expense account. "food" and "lunch" post to
// Office Supplies.
func DefaultExpenseRules() Table[string] {
	return Table[string]{
		Rules: []Rule[string]{
			{Keywords: []string{"rent"}, Result: "Rent"},
			{Keywords: []string{"salary"}, Result: "Salary"},
			{Keywords: []string{"food", "lunch"}, Result: "Office Supplies"},
		},
		Default: "General",
	}
}

// DefaultModeRules picks the payment mode. Bank is checked before UPI.
func DefaultModeRules() Table[model.PaymentMode] {
	return Table[model.PaymentMode]{
		Rules: []Rule[model.PaymentMode]{
			{Keywords: []string{"bank", "transfer"}, Result: model.ModeBank},
			{Keywords: []string{"upi"}, Result: model.ModeUPI},
		},
		Default: model.ModeCash,
	}
}

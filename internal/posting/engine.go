// Package posting turns a classified transaction into ordered, balanced
// journal entries using one fixed template per account type.
package posting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// ErrConfigurationGap means no template covers an account type / category pair.
var ErrConfigurationGap = errors.New("configuration gap")

// PostingError wraps ErrConfigurationGap with the combination that failed.
type PostingError struct {
	AccountType model.AccountType
	Category    string
	Reason      string
	Err         error
}

func (e *PostingError) Error() string {
	return fmt.Sprintf("posting %s/%s: %s: %v", e.AccountType, e.Category, e.Reason, e.Err)
}

func (e *PostingError) Unwrap() error {
	return e.Err
}

// Request carries everything a template needs.
type Request struct {
	AccountType model.AccountType
	Category    string
	Mode        model.PaymentMode
	Amount      decimal.Decimal
	Tax         model.TaxSplit
}

// Template builds the entries for one account type. cash is the resolved
// Cash or Bank account.
type Template func(req Request, cash string) []model.JournalEntry

// Engine applies posting templates. It holds no mutable state.
type Engine struct {
	chart     *accounts.Chart
	templates map[model.AccountType]Template
}

// NewEngine returns an Engine with the five standard templates. When chart is
// non-nil, categories are checked against it.
func NewEngine(chart *accounts.Chart) *Engine {
	return &Engine{
		chart: chart,
		templates: map[model.AccountType]Template{
			model.AccountTypeIncome:    incomeTemplate,
			model.AccountTypeExpense:   expenseTemplate,
			model.AccountTypeAsset:     assetTemplate,
			model.AccountTypeLiability: liabilityTemplate,
			model.AccountTypeEquity:    equityTemplate,
		},
	}
}

// CashAccount resolves the settlement account: Cash only for exactly ModeCash.
func CashAccount(mode model.PaymentMode) string {
	if mode == model.ModeCash {
		return model.AccountCash
	}
	return model.AccountBank
}

// Generate returns the ordered journal entries for req.
func (e *Engine) Generate(req Request) ([]model.JournalEntry, error) {
	tmpl, ok := e.templates[req.AccountType]
	if !ok {
		return nil, &PostingError{
			AccountType: req.AccountType,
			Category:    req.Category,
			Reason:      "no posting template",
			Err:         ErrConfigurationGap,
		}
	}

	// Equity always credits Capital, so its category is not consulted.
	if e.chart != nil && req.AccountType != model.AccountTypeEquity && !e.chart.Permits(req.AccountType, req.Category) {
		return nil, &PostingError{
			AccountType: req.AccountType,
			Category:    req.Category,
			Reason:      "category not in chart of accounts",
			Err:         ErrConfigurationGap,
		}
	}

	return tmpl(req, CashAccount(req.Mode)), nil
}

func incomeTemplate(req Request, cash string) []model.JournalEntry {
	entries := []model.JournalEntry{
		model.Dr(cash, req.Tax.Total),
		model.Cr(req.Category, req.Tax.Base),
	}
	if !req.Tax.Tax.IsZero() {
		entries = append(entries, model.Cr(model.AccountGSTPayable, req.Tax.Tax))
	}
	return entries
}

func expenseTemplate(req Request, cash string) []model.JournalEntry {
	entries := []model.JournalEntry{model.Dr(req.Category, req.Tax.Base)}
	if !req.Tax.Tax.IsZero() {
		entries = append(entries, model.Dr(model.AccountInputTaxCredit, req.Tax.Tax))
	}
	return append(entries, model.Cr(cash, req.Tax.Total))
}

func assetTemplate(req Request, cash string) []model.JournalEntry {
	return []model.JournalEntry{
		model.Dr(req.Category, req.Amount),
		model.Cr(cash, req.Amount),
	}
}

func liabilityTemplate(req Request, cash string) []model.JournalEntry {
	return []model.JournalEntry{
		model.Dr(cash, req.Amount),
		model.Cr(req.Category, req.Amount),
	}
}

func equityTemplate(req Request, cash string) []model.JournalEntry {
	return []model.JournalEntry{
		model.Dr(cash, req.Amount),
		model.Cr(model.AccountCapital, req.Amount),
	}
}

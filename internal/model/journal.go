package model

import "github.com/shopspring/decimal"

// JournalEntry is one debit-or-credit line posted against a named account.
type JournalEntry struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`  // zero if credit side
	Credit  decimal.Decimal `json:"credit"` // zero if debit side
}

// Dr returns a debit line.
func Dr(account string, amount decimal.Decimal) JournalEntry {
	return JournalEntry{Account: account, Debit: amount}
}

// Cr returns a credit line.
func Cr(account string, amount decimal.Decimal) JournalEntry {
	return JournalEntry{Account: account, Credit: amount}
}

// IsDebit reports whether the entry posts to the debit side.
func (e JournalEntry) IsDebit() bool {
	return !e.Debit.IsZero()
}

// Totals sums both sides of a set of entries.
func Totals(entries []JournalEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// TaxSplit is the base/tax/total breakdown of a taxed amount.
type TaxSplit struct {
	Base  decimal.Decimal `json:"base"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

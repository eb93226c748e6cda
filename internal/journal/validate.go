package journal

import (
	"fmt"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// Invariant numbers reported by ValidateEntries.
const (
	InvariantBalanced   = 1
	InvariantOneSided   = 2
	InvariantAccount    = 3
	InvariantNonNeg     = 4
	InvariantWholeUnits = 5
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account name exists in the chart of accounts.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidateEntries enforces the posting invariants on one transaction's entries.
// accounts may be nil to skip the account check.
func ValidateEntries(txID string, entries []model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Invariant 1: sum(debits) == sum(credits).
	debit, credit := model.Totals(entries)
	if !debit.Equal(credit) {
		errs = append(errs, ValidationError{
			Invariant:   InvariantBalanced,
			EntryID:     txID,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", debit, credit),
		})
	}

	for i, e := range entries {
		ref := fmt.Sprintf("%s#%d", txID, i)

		// Invariant 2: at most one of debit/credit per entry.
		if !e.Debit.IsZero() && !e.Credit.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   InvariantOneSided,
				EntryID:     ref,
				Description: "entry has both debit and credit",
			})
		}

		// Invariant 3: valid account references.
		if accounts != nil && !accounts.Exists(e.Account) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantAccount,
				EntryID:     ref,
				Description: fmt.Sprintf("unknown account %q", e.Account),
			})
		}

		// Invariant 4: amounts are never negative.
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   InvariantNonNeg,
				EntryID:     ref,
				Description: fmt.Sprintf("negative amount (debit %s, credit %s)", e.Debit, e.Credit),
			})
		}

		// Invariant 5: whole currency units only.
		if !e.Debit.Equal(e.Debit.Truncate(0)) || !e.Credit.Equal(e.Credit.Truncate(0)) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantWholeUnits,
				EntryID:     ref,
				Description: fmt.Sprintf("fractional amount (debit %s, credit %s)", e.Debit, e.Credit),
			})
		}
	}

	return errs
}

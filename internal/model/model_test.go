package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals(t *testing.T) {
	entries := []JournalEntry{
		Dr("Rent", decimal.NewFromInt(1000)),
		Dr("Input Tax Credit", decimal.NewFromInt(180)),
		Cr("Bank", decimal.NewFromInt(1180)),
	}
	debit, credit := Totals(entries)
	assert.True(t, debit.Equal(decimal.NewFromInt(1180)))
	assert.True(t, credit.Equal(decimal.NewFromInt(1180)))

	debit, credit = Totals(nil)
	assert.True(t, debit.IsZero())
	assert.True(t, credit.IsZero())
}

func TestIsDebit(t *testing.T) {
	assert.True(t, Dr("Cash", decimal.NewFromInt(1)).IsDebit())
	assert.False(t, Cr("Cash", decimal.NewFromInt(1)).IsDebit())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.False(t, Status("posted").Valid())
	assert.False(t, Status("").Valid())
}

func TestAccountTypeValid(t *testing.T) {
	for _, at := range AccountTypes {
		assert.True(t, at.Valid(), at)
	}
	assert.Len(t, AccountTypes, 5)
	assert.False(t, AccountType("asset").Valid(), "account types are case-sensitive")
}

func TestTransactionEventJSONFieldNames(t *testing.T) {
	ev := TransactionEvent{
		ID:           "1-1",
		BusinessID:   "biz",
		Status:       StatusDraft,
		ParsedIntent: ParsedIntent{RawText: "Paid rent 5000", AmountFound: true},
		Entries:      []JournalEntry{Dr("Rent", decimal.NewFromInt(5000))},
	}
	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, name := range []string{
		"id", "businessId", "status", "amount", "direction", "mode", "category",
		"accountType", "gstRate", "isInclusiveGST", "date", "rawText", "tax", "entries", "createdAt",
	} {
		assert.Contains(t, fields, name)
	}
	assert.NotContains(t, fields, "AmountFound")
	assert.Len(t, fields, 15)
}

func TestDateOf(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	d := DateOf(time.Date(2025, 3, 14, 23, 45, 0, 0, ist))
	assert.Equal(t, "2025-03-14", d.String())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, ist, d.Location())
}

func TestDate_JSON(t *testing.T) {
	d := DateOf(time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-03-14"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"14/03/2025"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20250314`), &back))
}

func TestTransactionEvent_MoneyIsNumeric(t *testing.T) {
	require.False(t, decimal.MarshalJSONWithoutQuotes, "encoding must not depend on the package default")

	ev := TransactionEvent{
		ID:     "1-1",
		Status: StatusDraft,
		ParsedIntent: ParsedIntent{
			Amount:  decimal.NewFromInt(1180),
			GSTRate: decimal.NewFromInt(18),
			Date:    DateOf(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
		},
		Tax: TaxSplit{Base: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(180), Total: decimal.NewFromInt(1180)},
		Entries: []JournalEntry{
			Dr("Office Supplies", decimal.NewFromInt(1000)),
			Dr("Input Tax Credit", decimal.NewFromInt(180)),
			Cr("Bank", decimal.NewFromInt(1180)),
		},
	}
	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, float64(1180), fields["amount"])
	assert.Equal(t, float64(18), fields["gstRate"])
	assert.Equal(t, "2025-03-14", fields["date"])
	assert.Equal(t, map[string]any{"base": float64(1000), "tax": float64(180), "total": float64(1180)}, fields["tax"])
	assert.Equal(t, map[string]any{"account": "Bank", "debit": float64(0), "credit": float64(1180)}, fields["entries"].([]any)[2])

	var back TransactionEvent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Amount.Equal(ev.Amount))
	assert.True(t, back.Tax.Tax.Equal(ev.Tax.Tax))
	assert.Equal(t, ev.Date, back.Date)
	require.Len(t, back.Entries, 3)
	assert.True(t, back.Entries[2].Credit.Equal(decimal.NewFromInt(1180)))
}

func TestParsedIntent_JSON(t *testing.T) {
	data, err := json.Marshal(ParsedIntent{Amount: decimal.NewFromInt(5000), RawText: "Paid rent 5000"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, float64(5000), fields["amount"])
	assert.Equal(t, "Paid rent 5000", fields["rawText"])
	assert.Len(t, fields, 9)
}

package posting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/journal"
	"github.com/cleared-dev/ledgerbrain/internal/model"
	"github.com/cleared-dev/ledgerbrain/internal/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type line struct {
	account string
	debit   string
	credit  string
}

func assertEntries(t *testing.T, want []line, got []model.JournalEntry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.account, got[i].Account, "entry %d account", i)
		assert.True(t, got[i].Debit.Equal(dec(w.debit)), "entry %d debit: got %s want %s", i, got[i].Debit, w.debit)
		assert.True(t, got[i].Credit.Equal(dec(w.credit)), "entry %d credit: got %s want %s", i, got[i].Credit, w.credit)
	}
}

func request(at model.AccountType, category string, mode model.PaymentMode, amount, rate string, inclusive bool) Request {
	return Request{
		AccountType: at,
		Category:    category,
		Mode:        mode,
		Amount:      dec(amount),
		Tax:         tax.Split(dec(amount), dec(rate), inclusive),
	}
}

func TestGenerate_Templates(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []line
	}{
		{
			name: "expense no tax",
			req:  request(model.AccountTypeExpense, "Rent", model.ModeCash, "5000", "0", false),
			want: []line{{"Rent", "5000", "0"}, {"Cash", "0", "5000"}},
		},
		{
			name: "expense inclusive gst",
			req:  request(model.AccountTypeExpense, "Rent", model.ModeCash, "5000", "18", true),
			want: []line{{"Rent", "4237", "0"}, {"Input Tax Credit", "763", "0"}, {"Cash", "0", "5000"}},
		},
		{
			name: "income no tax",
			req:  request(model.AccountTypeIncome, "Sales", model.ModeCash, "10000", "0", false),
			want: []line{{"Cash", "10000", "0"}, {"Sales", "0", "10000"}},
		},
		{
			name: "income exclusive gst via bank",
			req:  request(model.AccountTypeIncome, "Sales", model.ModeBank, "1000", "18", false),
			want: []line{{"Bank", "1180", "0"}, {"Sales", "0", "1000"}, {"GST Payable", "0", "180"}},
		},
		{
			name: "asset ignores tax",
			req:  request(model.AccountTypeAsset, "Equipment", model.ModeUPI, "9000", "18", false),
			want: []line{{"Equipment", "9000", "0"}, {"Bank", "0", "9000"}},
		},
		{
			name: "liability",
			req:  request(model.AccountTypeLiability, "Loans", model.ModeBank, "25000", "0", false),
			want: []line{{"Bank", "25000", "0"}, {"Loans", "0", "25000"}},
		},
		{
			name: "equity credits capital",
			req:  request(model.AccountTypeEquity, "Owner", model.ModeCash, "100000", "0", false),
			want: []line{{"Cash", "100000", "0"}, {"Capital", "0", "100000"}},
		},
	}
	engine := NewEngine(accounts.Default("sole_proprietor"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Generate(tt.req)
			require.NoError(t, err)
			assertEntries(t, tt.want, got)
		})
	}
}

func TestCashAccount(t *testing.T) {
	assert.Equal(t, "Cash", CashAccount(model.ModeCash))
	assert.Equal(t, "Bank", CashAccount(model.ModeBank))
	assert.Equal(t, "Bank", CashAccount(model.ModeUPI))
	assert.Equal(t, "Bank", CashAccount("cash"), "only the exact Cash mode settles in cash")
	assert.Equal(t, "Bank", CashAccount(""))
}

func TestGenerate_AlwaysBalanced(t *testing.T) {
	chart := accounts.Default("sole_proprietor")
	engine := NewEngine(chart)
	categories := map[model.AccountType]string{
		model.AccountTypeIncome:    "Sales",
		model.AccountTypeExpense:   "General",
		model.AccountTypeAsset:     "Equipment",
		model.AccountTypeLiability: "Loans",
		model.AccountTypeEquity:    "Capital",
	}

	for _, at := range model.AccountTypes {
		for _, mode := range []model.PaymentMode{model.ModeCash, model.ModeBank, model.ModeUPI} {
			for rate := int64(0); rate <= 100; rate += 7 {
				for amount := int64(0); amount <= 50000; amount += 3331 {
					for _, inclusive := range []bool{false, true} {
						req := Request{
							AccountType: at,
							Category:    categories[at],
							Mode:        mode,
							Amount:      decimal.NewFromInt(amount),
							Tax:         tax.Split(decimal.NewFromInt(amount), decimal.NewFromInt(rate), inclusive),
						}
						entries, err := engine.Generate(req)
						require.NoError(t, err)
						errs := journal.ValidateEntries("prop", entries, chart)
						assert.Empty(t, errs, "type=%s mode=%s amount=%d rate=%d inclusive=%v", at, mode, amount, rate, inclusive)
					}
				}
			}
		}
	}
}

func TestGenerate_ConfigurationGap(t *testing.T) {
	engine := NewEngine(accounts.Default("sole_proprietor"))

	_, err := engine.Generate(request("Contra", "Rent", model.ModeCash, "100", "0", false))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationGap)

	var perr *PostingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, model.AccountType("Contra"), perr.AccountType)

	_, err = engine.Generate(request(model.AccountTypeExpense, "Fuel", model.ModeCash, "100", "0", false))
	assert.ErrorIs(t, err, ErrConfigurationGap)

	_, err = engine.Generate(request(model.AccountTypeIncome, "Rent", model.ModeCash, "100", "0", false))
	assert.ErrorIs(t, err, ErrConfigurationGap, "Rent is not an income account")
}

func TestGenerate_NilChartSkipsCategoryCheck(t *testing.T) {
	engine := NewEngine(nil)
	entries, err := engine.Generate(request(model.AccountTypeExpense, "Fuel", model.ModeCash, "100", "0", false))
	require.NoError(t, err)
	assertEntries(t, []line{{"Fuel", "100", "0"}, {"Cash", "0", "100"}}, entries)
}

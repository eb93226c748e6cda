package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
	AccountTypeEquity    AccountType = "Equity"
)

// AccountTypes lists every account type in chart order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeIncome,
	AccountTypeExpense,
	AccountTypeEquity,
}

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Name        string
	Type        AccountType
	Description string
}

// Well-known account names the posting templates write to.
const (
	AccountCash           = "Cash"
	AccountBank           = "Bank"
	AccountGSTPayable     = "GST Payable"
	AccountInputTaxCredit = "Input Tax Credit"
	AccountCapital        = "Capital"
)

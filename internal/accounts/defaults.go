package accounts

import "github.com/cleared-dev/ledgerbrain/internal/model"

// DefaultChart returns the default chart of accounts for an entity type.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "sole_proprietor":
		return soleProprietorChart()
	default:
		return soleProprietorChart()
	}
}

func soleProprietorChart() []model.Account {
	return []model.Account{
		{Name: model.AccountCash, Type: model.AccountTypeAsset, Description: "Cash in hand"},
		{Name: model.AccountBank, Type: model.AccountTypeAsset, Description: "Bank and UPI balances"},
		{Name: model.AccountInputTaxCredit, Type: model.AccountTypeAsset, Description: "GST paid on purchases"},
		{Name: "Equipment", Type: model.AccountTypeAsset},
		{Name: model.AccountGSTPayable, Type: model.AccountTypeLiability, Description: "GST collected on sales"},
		{Name: "Loans", Type: model.AccountTypeLiability},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Sales", Type: model.AccountTypeIncome},
		{Name: "Refunds", Type: model.AccountTypeIncome},
		{Name: "Interest Income", Type: model.AccountTypeIncome},
		{Name: "Rent", Type: model.AccountTypeExpense},
		{Name: "Salary", Type: model.AccountTypeExpense},
		{Name: "Utilities", Type: model.AccountTypeExpense},
		{Name: "Office Supplies", Type: model.AccountTypeExpense},
		{Name: "Professional Fees", Type: model.AccountTypeExpense},
		{Name: "General", Type: model.AccountTypeExpense, Description: "Unclassified expenses"},
		{Name: model.AccountCapital, Type: model.AccountTypeEquity, Description: "Owner's capital"},
	}
}

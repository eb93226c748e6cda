package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Money goes on the wire as a plain JSON number, whatever the package-level
// decimal settings are. Decoding uses the struct tags; decimal accepts both
// quoted and bare numbers.

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type intentWire struct {
	Amount         json.Number `json:"amount"`
	Direction      Direction   `json:"direction"`
	Mode           PaymentMode `json:"mode"`
	Category       string      `json:"category"`
	AccountType    AccountType `json:"accountType"`
	GSTRate        json.Number `json:"gstRate"`
	IsInclusiveGST bool        `json:"isInclusiveGST"`
	Date           Date        `json:"date"`
	RawText        string      `json:"rawText"`
}

func (p ParsedIntent) wire() intentWire {
	return intentWire{
		Amount:         number(p.Amount),
		Direction:      p.Direction,
		Mode:           p.Mode,
		Category:       p.Category,
		AccountType:    p.AccountType,
		GSTRate:        number(p.GSTRate),
		IsInclusiveGST: p.IsInclusiveGST,
		Date:           p.Date,
		RawText:        p.RawText,
	}
}

func (p ParsedIntent) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// MarshalJSON flattens the intent fields into the event object. It must be
// defined here or ParsedIntent's method would be promoted and drop the rest.
func (ev TransactionEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string `json:"id"`
		BusinessID string `json:"businessId"`
		Status     Status `json:"status"`
		intentWire
		Tax       TaxSplit       `json:"tax"`
		Entries   []JournalEntry `json:"entries"`
		CreatedAt time.Time      `json:"createdAt"`
	}{
		ID:         ev.ID,
		BusinessID: ev.BusinessID,
		Status:     ev.Status,
		intentWire: ev.ParsedIntent.wire(),
		Tax:        ev.Tax,
		Entries:    ev.Entries,
		CreatedAt:  ev.CreatedAt,
	})
}

func (e JournalEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Account string      `json:"account"`
		Debit   json.Number `json:"debit"`
		Credit  json.Number `json:"credit"`
	}{e.Account, number(e.Debit), number(e.Credit)})
}

func (s TaxSplit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Base  json.Number `json:"base"`
		Tax   json.Number `json:"tax"`
		Total json.Number `json:"total"`
	}{number(s.Base), number(s.Tax), number(s.Total)})
}

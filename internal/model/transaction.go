package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction says whether money came in or went out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// PaymentMode is how the money moved.
type PaymentMode string

const (
	ModeCash PaymentMode = "Cash"
	ModeBank PaymentMode = "Bank"
	ModeUPI  PaymentMode = "UPI"
)

// Status represents the lifecycle state of a transaction.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusConfirmed
}

// ParsedIntent holds the signals extracted from one free-text description.
type ParsedIntent struct {
	Amount         decimal.Decimal `json:"amount"`
	Direction      Direction       `json:"direction"`
	Mode           PaymentMode     `json:"mode"`
	Category       string          `json:"category"`
	AccountType    AccountType     `json:"accountType"`
	GSTRate        decimal.Decimal `json:"gstRate"`
	IsInclusiveGST bool            `json:"isInclusiveGST"`
	Date           Date            `json:"date"`
	RawText        string          `json:"rawText"`

	// AmountFound is false when no numeric token was present in RawText.
	AmountFound bool `json:"-"`
}

// TransactionEvent is the finished, posted record of one description.
type TransactionEvent struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Status     Status `json:"status"`
	ParsedIntent
	Tax       TaxSplit       `json:"tax"`
	Entries   []JournalEntry `json:"entries"`
	CreatedAt time.Time      `json:"createdAt"`
}

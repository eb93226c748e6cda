package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// Header is the CSV header for transactions.csv. Each row is one journal
// entry; transaction-level columns repeat on every entry of a transaction.
const Header = "tx_id,business_id,status,date,created_at,direction,account_type,category,mode,amount,gst_rate,inclusive_gst,base,tax,total,raw_text,account,debit,credit"

const (
	numFields   = 19
	colTxID     = 0
	colBusiness = 1
	colStatus   = 2
	colDate     = 3
	colCreated  = 4
	colDir      = 5
	colAcctType = 6
	colCategory = 7
	colMode     = 8
	colAmount   = 9
	colRate     = 10
	colIncl     = 11
	colBase     = 12
	colTax      = 13
	colTotal    = 14
	colRawText  = 15
	colAccount  = 16
	colDebit    = 17
	colCredit   = 18
)

// row is one decoded CSV line.
type row struct {
	event model.TransactionEvent // Entries unset
	entry model.JournalEntry
}

// ReadEvents reads all transactions from a transactions.csv reader, grouping
// consecutive rows with the same tx_id.
func ReadEvents(r io.Reader) ([]model.TransactionEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var events []model.TransactionEvent
	for i, rec := range records[1:] {
		rw, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if n := len(events); n > 0 && events[n-1].ID == rw.event.ID {
			events[n-1].Entries = append(events[n-1].Entries, rw.entry)
			continue
		}
		ev := rw.event
		ev.Entries = []model.JournalEntry{rw.entry}
		events = append(events, ev)
	}
	return events, nil
}

// WriteEvents writes events to a transactions.csv writer (including header).
func WriteEvents(w io.Writer, events []model.TransactionEvent) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, ev := range events {
		for _, rec := range MarshalEvent(ev) {
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing transaction %s: %w", ev.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendEvent appends one event to an existing transactions.csv writer (no header).
func AppendEvent(w io.Writer, ev model.TransactionEvent) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range MarshalEvent(ev) {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEvent converts an event to one CSV row per journal entry.
func MarshalEvent(ev model.TransactionEvent) [][]string {
	rows := make([][]string, 0, len(ev.Entries))
	for _, e := range ev.Entries {
		rec := make([]string, numFields)
		rec[colTxID] = ev.ID
		rec[colBusiness] = ev.BusinessID
		rec[colStatus] = string(ev.Status)
		rec[colDate] = ev.Date.String()
		rec[colCreated] = ev.CreatedAt.Format(time.RFC3339Nano)
		rec[colDir] = string(ev.Direction)
		rec[colAcctType] = string(ev.AccountType)
		rec[colCategory] = ev.Category
		rec[colMode] = string(ev.Mode)
		rec[colAmount] = ev.Amount.String()
		rec[colRate] = ev.GSTRate.String()
		rec[colIncl] = strconv.FormatBool(ev.IsInclusiveGST)
		rec[colBase] = ev.Tax.Base.String()
		rec[colTax] = ev.Tax.Tax.String()
		rec[colTotal] = ev.Tax.Total.String()
		rec[colRawText] = ev.RawText
		rec[colAccount] = e.Account
		if !e.Debit.IsZero() {
			rec[colDebit] = e.Debit.String()
		}
		if !e.Credit.IsZero() {
			rec[colCredit] = e.Credit.String()
		}
		rows = append(rows, rec)
	}
	return rows
}

func unmarshalRow(record []string) (row, error) {
	if len(record) != numFields {
		return row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	created, err := time.Parse(time.RFC3339Nano, record[colCreated])
	if err != nil {
		return row{}, fmt.Errorf("parsing created_at %q: %w", record[colCreated], err)
	}

	inclusive, err := strconv.ParseBool(record[colIncl])
	if err != nil {
		return row{}, fmt.Errorf("parsing inclusive_gst %q: %w", record[colIncl], err)
	}

	var amount, rate, base, taxAmt, total, debit, credit decimal.Decimal
	fields := []struct {
		col int
		dst *decimal.Decimal
	}{
		{colAmount, &amount}, {colRate, &rate}, {colBase, &base}, {colTax, &taxAmt},
		{colTotal, &total}, {colDebit, &debit}, {colCredit, &credit},
	}
	for _, f := range fields {
		if record[f.col] == "" {
			continue
		}
		d, err := decimal.NewFromString(record[f.col])
		if err != nil {
			return row{}, fmt.Errorf("parsing %s %q: %w", columnName(f.col), record[f.col], err)
		}
		*f.dst = d
	}

	return row{
		event: model.TransactionEvent{
			ID:         record[colTxID],
			BusinessID: record[colBusiness],
			Status:     model.Status(record[colStatus]),
			ParsedIntent: model.ParsedIntent{
				Amount:         amount,
				AmountFound:    true,
				Direction:      model.Direction(record[colDir]),
				Mode:           model.PaymentMode(record[colMode]),
				Category:       record[colCategory],
				AccountType:    model.AccountType(record[colAcctType]),
				GSTRate:        rate,
				IsInclusiveGST: inclusive,
				Date:           date,
				RawText:        record[colRawText],
			},
			Tax:       model.TaxSplit{Base: base, Tax: taxAmt, Total: total},
			CreatedAt: created,
		},
		entry: model.JournalEntry{
			Account: record[colAccount],
			Debit:   debit,
			Credit:  credit,
		},
	}, nil
}

func columnName(col int) string {
	return strings.Split(Header, ",")[col]
}

package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// Header is the first line of chart-of-accounts.csv.
const Header = "account_name,account_type,description"

const (
	numFields = 3
	colName   = 0
	colType   = 1
	colDesc   = 2
)

// ReadAccounts reads chart-of-accounts.csv. Lines starting with '#' are
// ignored so hand-edited charts can carry notes.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading accounts header: %w", err)
	}
	if got := strings.Join(header, ","); got != Header {
		return nil, fmt.Errorf("unexpected accounts header %q, want %q", got, Header)
	}

	var accounts []model.Account
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return accounts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading accounts CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		accounts = append(accounts, acct)
	}
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing account %s: %w", acct.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	return []string{acct.Name, string(acct.Type), acct.Description}
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	name := strings.TrimSpace(record[colName])
	if name == "" {
		return model.Account{}, fmt.Errorf("empty account name")
	}

	accountType := model.AccountType(strings.TrimSpace(record[colType]))
	if !accountType.Valid() {
		return model.Account{}, fmt.Errorf("account %s: unknown account type %q", name, record[colType])
	}

	return model.Account{Name: name, Type: accountType, Description: record[colDesc]}, nil
}

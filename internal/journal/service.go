package journal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

var (
	// ErrNotFound is returned when a transaction id is not in the ledger.
	ErrNotFound = errors.New("transaction not found")
	// ErrAlreadyConfirmed is returned when confirming a confirmed transaction.
	ErrAlreadyConfirmed = errors.New("transaction already confirmed")
)

// Store persists posted transactions as one CSV file per business.
// Writes are serialized; the pipeline itself never touches the store.
type Store struct {
	root     string
	accounts AccountChecker
	mu       sync.Mutex
}

// NewStore creates a Store rooted at dir. accounts may be nil.
func NewStore(dir string, accounts AccountChecker) *Store {
	return &Store{root: dir, accounts: accounts}
}

// Append validates ev and appends it to the business's transactions.csv.
func (s *Store) Append(ev model.TransactionEvent) error {
	if err := s.validate(ev); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readBusiness(ev.BusinessID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ID == ev.ID {
			return fmt.Errorf("duplicate transaction id %s", ev.ID)
		}
	}

	path, err := s.businessPath(ev.BusinessID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEvent(f, ev); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	return nil
}

// List returns every transaction recorded for a business, oldest first.
func (s *Store) List(businessID string) ([]model.TransactionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readBusiness(businessID)
}

// Confirm moves a draft transaction to confirmed and rewrites the ledger file.
func (s *Store) Confirm(businessID, txID string) (model.TransactionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.readBusiness(businessID)
	if err != nil {
		return model.TransactionEvent{}, err
	}

	idx := -1
	for i, ev := range events {
		if ev.ID == txID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.TransactionEvent{}, fmt.Errorf("confirming %s: %w", txID, ErrNotFound)
	}
	if events[idx].Status == model.StatusConfirmed {
		return model.TransactionEvent{}, fmt.Errorf("confirming %s: %w", txID, ErrAlreadyConfirmed)
	}
	events[idx].Status = model.StatusConfirmed

	path, err := s.businessPath(businessID)
	if err != nil {
		return model.TransactionEvent{}, err
	}
	err = replaceFile(path, func(w io.Writer) error { return WriteEvents(w, events) })
	if err != nil {
		return model.TransactionEvent{}, err
	}

	return events[idx], nil
}

func (s *Store) validate(ev model.TransactionEvent) error {
	if ev.ID == "" {
		return fmt.Errorf("transaction has no id")
	}
	if !ev.Status.Valid() {
		return fmt.Errorf("transaction %s: invalid status %q", ev.ID, ev.Status)
	}
	if len(ev.Entries) == 0 {
		return fmt.Errorf("transaction %s has no entries", ev.ID)
	}
	if verrs := ValidateEntries(ev.ID, ev.Entries, s.accounts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func (s *Store) readBusiness(businessID string) ([]model.TransactionEvent, error) {
	path, err := s.businessPath(businessID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	events, err := ReadEvents(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return events, nil
}

func (s *Store) businessPath(businessID string) (string, error) {
	if businessID == "" || businessID != filepath.Base(businessID) || businessID == "." || businessID == ".." {
		return "", fmt.Errorf("invalid business id %q", businessID)
	}
	return filepath.Join(s.root, businessID, "transactions.csv"), nil
}

// replaceFile writes path through a sibling .tmp file and renames it into
// place. The .tmp file never outlives a failed write.
func replaceFile(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

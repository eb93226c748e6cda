package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/ledgerbrain/internal/brain"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

const (
	// InboxDir holds narration CSVs waiting to be posted.
	InboxDir = "import"
	// DoneDir receives CSVs once every row has been attempted.
	DoneDir = "import/processed"
)

// Appender persists posted transactions.
type Appender interface {
	Append(ev model.TransactionEvent) error
}

// Summary totals one inbox run.
type Summary struct {
	Files    []string
	Posted   int
	Rejected []Result
}

// Pending lists narration CSVs in <root>/import, sorted by name.
func Pending(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, InboxDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// RunInbox posts every pending CSV, appends accepted transactions to store and
// moves each file to import/processed. Rows that fail to post or that the
// store refuses are collected in the summary. A file is always moved once its
// rows have been attempted, so running again never re-posts a row.
func RunInbox(root string, p Poster, store Appender, bc brain.BusinessContext) (Summary, error) {
	var sum Summary

	names, err := Pending(root)
	if err != nil {
		return sum, err
	}

	for _, name := range names {
		path := filepath.Join(root, InboxDir, name)
		f, err := os.Open(path)
		if err != nil {
			return sum, fmt.Errorf("opening %s: %w", name, err)
		}
		rows, err := ReadNarrations(f)
		f.Close()
		if err != nil {
			return sum, fmt.Errorf("%s: %w", name, err)
		}

		for _, res := range PostAll(p, rows, bc) {
			if res.Err != nil {
				sum.Rejected = append(sum.Rejected, res)
				continue
			}
			if err := store.Append(res.Event); err != nil {
				res.Event = model.TransactionEvent{}
				res.Err = fmt.Errorf("saving: %w", err)
				sum.Rejected = append(sum.Rejected, res)
				continue
			}
			sum.Posted++
		}

		if err := markDone(root, name); err != nil {
			return sum, err
		}
		sum.Files = append(sum.Files, name)
	}
	return sum, nil
}

func markDone(root, name string) error {
	dst := filepath.Join(root, DoneDir)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}
	if err := os.Rename(filepath.Join(root, InboxDir, name), filepath.Join(dst, name)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", name, err)
	}
	return nil
}

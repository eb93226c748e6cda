package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/cleared-dev/ledgerbrain/internal/brain"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// NarrationRow is one line of a narrations CSV. BusinessID is optional and
// overrides the batch default when set.
type NarrationRow struct {
	Narration  string `csv:"narration"`
	BusinessID string `csv:"business_id,omitempty"`
}

// Poster is the part of the pipeline the importer needs.
type Poster interface {
	InterpretAndPost(rawText string, bc brain.BusinessContext) (model.TransactionEvent, error)
}

// Result is the outcome of one row. Exactly one of Event and Err is set.
type Result struct {
	Row   int // 1-based CSV line number, header is line 1
	Text  string
	Event model.TransactionEvent
	Err   error
}

// ReadNarrations decodes a narrations CSV.
func ReadNarrations(r io.Reader) ([]NarrationRow, error) {
	var rows []NarrationRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading narrations CSV: %w", err)
	}
	return rows, nil
}

// PostAll runs every non-blank row through p. A rejected row is reported in
// its Result and does not stop the batch.
func PostAll(p Poster, rows []NarrationRow, bc brain.BusinessContext) []Result {
	results := make([]Result, 0, len(rows))
	for i, row := range rows {
		text := strings.TrimSpace(row.Narration)
		if text == "" {
			continue
		}
		rowCtx := bc
		if row.BusinessID != "" {
			rowCtx.BusinessID = row.BusinessID
		}
		ev, err := p.InterpretAndPost(text, rowCtx)
		results = append(results, Result{Row: i + 2, Text: text, Event: ev, Err: err})
	}
	return results
}

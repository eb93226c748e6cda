package brain

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/ledgerbrain/internal/posting"
)

// ErrAmountNotFound means the description contained no numeric token.
var ErrAmountNotFound = errors.New("amount not found")

// ErrorKind is a coarse-grained categorization for pipeline failures.
type ErrorKind string

const (
	KindAmountNotFound   ErrorKind = "amount_not_found"
	KindConfigurationGap ErrorKind = "configuration_gap"
)

// PipelineError wraps an underlying error with the stage that failed and a kind.
type PipelineError struct {
	Op   string
	Kind ErrorKind
	Text string
	Err  error
}

func (e *PipelineError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Text != "" {
		base += fmt.Sprintf(" (text=%q)", e.Text)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a PipelineError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

func amountNotFound(text string) error {
	return &PipelineError{Op: "interpret", Kind: KindAmountNotFound, Text: text, Err: ErrAmountNotFound}
}

func configurationGap(err error) error {
	if !errors.Is(err, posting.ErrConfigurationGap) {
		return fmt.Errorf("posting: %w", err)
	}
	return &PipelineError{Op: "post", Kind: KindConfigurationGap, Err: err}
}

// Package brain composes the text-to-posting pipeline: interpret, classify,
// split tax, post, assemble.
package brain

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/classify"
	"github.com/cleared-dev/ledgerbrain/internal/id"
	"github.com/cleared-dev/ledgerbrain/internal/interpret"
	"github.com/cleared-dev/ledgerbrain/internal/model"
	"github.com/cleared-dev/ledgerbrain/internal/posting"
	"github.com/cleared-dev/ledgerbrain/internal/tax"
)

// BusinessContext is the caller-supplied identity for one invocation.
type BusinessContext struct {
	BusinessID string
	// IDs generates the transaction id. The pipeline's default source is
	// used when nil.
	IDs id.Source
}

// Pipeline turns descriptions into posted transactions. All of its fields are
// set at construction and never mutated, so one Pipeline may be shared by any
// number of goroutines.
type Pipeline struct {
	chart         *accounts.Chart
	classifier    *classify.Classifier
	interpreter   *interpret.Interpreter
	engine        *posting.Engine
	ids           id.Source
	now           func() time.Time
	defaultStatus model.Status
	log           logrus.FieldLogger

	interpretOpts []interpret.Option
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithChart injects the chart of accounts.
func WithChart(c *accounts.Chart) Option {
	return func(p *Pipeline) { p.chart = c }
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Pipeline) { p.classifier = c }
}

// WithInterpretOptions passes options through to the interpreter.
func WithInterpretOptions(opts ...interpret.Option) Option {
	return func(p *Pipeline) { p.interpretOpts = append(p.interpretOpts, opts...) }
}

// WithIDSource sets the default id source.
func WithIDSource(s id.Source) Option {
	return func(p *Pipeline) { p.ids = s }
}

// WithClock sets the clock used for the intent date and CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithDefaultStatus sets the status new transactions start in.
func WithDefaultStatus(s model.Status) Option {
	return func(p *Pipeline) { p.defaultStatus = s }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) { p.log = l }
}

// New builds a Pipeline. It fails if the default status is unknown or the
// classifier can produce a category the chart does not contain.
func New(opts ...Option) (*Pipeline, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	p := &Pipeline{
		chart:         accounts.Default(""),
		classifier:    classify.New(),
		ids:           id.NewTimestampSource(),
		now:           time.Now,
		defaultStatus: model.StatusDraft,
		log:           discard,
	}
	for _, opt := range opts {
		opt(p)
	}

	if !p.defaultStatus.Valid() {
		return nil, fmt.Errorf("invalid default status %q", p.defaultStatus)
	}
	if err := p.classifier.Validate(p.chart); err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}

	iopts := append([]interpret.Option{
		interpret.WithClassifier(p.classifier),
		interpret.WithClock(p.now),
	}, p.interpretOpts...)
	p.interpreter = interpret.New(iopts...)
	p.engine = posting.NewEngine(p.chart)

	return p, nil
}

// Chart returns the injected chart of accounts.
func (p *Pipeline) Chart() *accounts.Chart {
	return p.chart
}

// InterpretAndPost runs the full pipeline over rawText. The only input-driven
// failure is ErrAmountNotFound; a ConfigurationGap means the rule tables and
// posting templates disagree.
func (p *Pipeline) InterpretAndPost(rawText string, bc BusinessContext) (model.TransactionEvent, error) {
	intent := p.interpreter.Parse(rawText)
	if !intent.AmountFound {
		p.log.WithField("business_id", bc.BusinessID).Info("Rejected description with no amount")
		return model.TransactionEvent{}, amountNotFound(rawText)
	}

	p.log.WithFields(logrus.Fields{
		"business_id":  bc.BusinessID,
		"account_type": intent.AccountType,
		"category":     intent.Category,
		"mode":         intent.Mode,
		"gst_rate":     intent.GSTRate.String(),
		"inclusive":    intent.IsInclusiveGST,
	}).Debug("Interpreted description")

	split := tax.Split(intent.Amount, intent.GSTRate, intent.IsInclusiveGST)

	entries, err := p.engine.Generate(posting.Request{
		AccountType: intent.AccountType,
		Category:    intent.Category,
		Mode:        intent.Mode,
		Amount:      intent.Amount,
		Tax:         split,
	})
	if err != nil {
		p.log.WithError(err).Error("Posting failed")
		return model.TransactionEvent{}, configurationGap(err)
	}

	ids := bc.IDs
	if ids == nil {
		ids = p.ids
	}
	return Assemble(intent, split, entries, bc.BusinessID, ids, p.defaultStatus, p.now()), nil
}

// Assemble combines an intent and its entries into a TransactionEvent.
func Assemble(intent model.ParsedIntent, split model.TaxSplit, entries []model.JournalEntry,
	businessID string, ids id.Source, status model.Status, now time.Time,
) model.TransactionEvent {
	return model.TransactionEvent{
		ID:           ids.NewID(now),
		BusinessID:   businessID,
		Status:       status,
		ParsedIntent: intent,
		Tax:          split,
		Entries:      entries,
		CreatedAt:    now,
	}
}

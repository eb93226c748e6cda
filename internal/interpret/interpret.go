// Package interpret extracts amount, tax, payment mode and classification
// signals from a free-text description of a financial event.
package interpret

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbrain/internal/classify"
	"github.com/cleared-dev/ledgerbrain/internal/model"
	"github.com/cleared-dev/ledgerbrain/internal/tax"
)

// DefaultGSTRate applies when "gst" is mentioned without any integer token.
const DefaultGSTRate = 18

var (
	amountPattern  = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?`)
	percentPattern = regexp.MustCompile(`(\d+)\s*%`)
	integerPattern = regexp.MustCompile(`\d+`)
)

var inclusiveRules = classify.Table[bool]{
	Rules: []classify.Rule[bool]{
		{Keywords: []string{"incl", "included"}, Result: true},
	},
	Default: false,
}

// Interpreter turns raw text into a ParsedIntent. It is immutable after
// construction and safe for concurrent use.
type Interpreter struct {
	classifier      *classify.Classifier
	modes           classify.Table[model.PaymentMode]
	now             func() time.Time
	defaultRate     decimal.Decimal
	reuseAmountRate bool
}

// Option customizes an Interpreter.
type Option func(*Interpreter)

// WithClassifier sets the classifier used for direction and category.
func WithClassifier(c *classify.Classifier) Option {
	return func(i *Interpreter) { i.classifier = c }
}

// WithModeRules replaces the payment mode table.
func WithModeRules(t classify.Table[model.PaymentMode]) Option {
	return func(i *Interpreter) { i.modes = t }
}

// WithClock sets the clock used to date intents.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// WithDefaultGSTRate sets the rate used when "gst" appears with no integer token.
func WithDefaultGSTRate(rate int64) Option {
	return func(i *Interpreter) { i.defaultRate = decimal.NewFromInt(rate) }
}

// WithAmountDigitsForRate controls whether the GST rate fallback may reuse the
// digits that supplied the amount. Enabled by default.
func WithAmountDigitsForRate(reuse bool) Option {
	return func(i *Interpreter) { i.reuseAmountRate = reuse }
}

// New returns an Interpreter with the default rule tables and the system clock.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		classifier:      classify.New(),
		modes:           classify.DefaultModeRules(),
		now:             time.Now,
		defaultRate:     decimal.NewFromInt(DefaultGSTRate),
		reuseAmountRate: true,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Parse extracts every signal from rawText. It never fails; a missing amount
// is reported through ParsedIntent.AmountFound.
func (i *Interpreter) Parse(rawText string) model.ParsedIntent {
	lowered := strings.ToLower(rawText)

	amount, amountLoc := extractAmount(rawText)
	mode, _ := i.modes.Resolve(lowered)
	inclusive, _ := inclusiveRules.Resolve(lowered)
	class := i.classifier.Classify(rawText)

	return model.ParsedIntent{
		Amount:         amount,
		AmountFound:    amountLoc != nil,
		Direction:      class.Direction,
		Mode:           mode,
		Category:       class.Category,
		AccountType:    class.AccountType,
		GSTRate:        i.gstRate(rawText, lowered, amountLoc),
		IsInclusiveGST: inclusive,
		Date:           model.DateOf(i.now()),
		RawText:        rawText,
	}
}

// extractAmount returns the first numeric token as a whole amount and its location.
func extractAmount(text string) (decimal.Decimal, []int) {
	loc := amountPattern.FindStringIndex(text)
	if loc == nil {
		return decimal.Zero, nil
	}
	digits := strings.ReplaceAll(text[loc[0]:loc[1]], ",", "")
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, nil
	}
	return tax.Round(d), loc
}

// gstRate scans for the rate independently of the amount scan. A "N%" token
// wins; otherwise the first integer token is used, which may be the amount.
func (i *Interpreter) gstRate(text, lowered string, amountLoc []int) decimal.Decimal {
	if !strings.Contains(lowered, "gst") {
		return decimal.Zero
	}

	if m := percentPattern.FindStringSubmatch(text); m != nil {
		return decimal.RequireFromString(m[1])
	}

	for _, loc := range integerPattern.FindAllStringIndex(text, -1) {
		if !i.reuseAmountRate && overlaps(loc, amountLoc) {
			continue
		}
		return decimal.RequireFromString(text[loc[0]:loc[1]])
	}
	return i.defaultRate
}

func overlaps(a, b []int) bool {
	return b != nil && a[0] < b[1] && b[0] < a[1]
}

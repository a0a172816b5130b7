// Package form holds the mutable state of the tip screen and keeps the
// derived tip and per-person amounts in step with it.
//
// Every mutator ends in recompute, so readers never see stale values.
// A Form is owned by a single screen and is not safe for concurrent use.
package form

import (
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/jettip/internal/calculator"
	"github.com/mmynk/jettip/internal/models"
	"github.com/mmynk/jettip/internal/money"
)

const (
	// MinSplit and MaxSplit bound the contributor count.
	MinSplit = 1
	MaxSplit = 100

	// SliderSteps is the number of stops between the slider ends,
	// giving SliderSteps+2 selectable positions.
	SliderSteps = 5
)

// sliderStops is the number of intervals between the slider ends.
const sliderStops = SliderSteps + 1

// ValueChangedFunc receives the bill text when the user submits a valid bill.
type ValueChangedFunc func(bill string)

// Form is the state behind the tip screen.
type Form struct {
	bill   string
	split  int
	slider float64

	billAmount     float64
	billErr        error
	tipAmount      float64
	totalPerPerson float64

	onValueChanged ValueChangedFunc
	logger         *slog.Logger
	id             string
}

// Option configures a Form.
type Option func(*Form)

// WithSplit sets the initial contributor count, clamped to [MinSplit, MaxSplit].
func WithSplit(n int) Option {
	return func(f *Form) { f.split = clampSplit(n) }
}

// WithTipPercent sets the initial slider position from a whole percentage.
func WithTipPercent(p int) Option {
	return func(f *Form) { f.slider = clampFraction(float64(p) / 100) }
}

// WithOnValueChanged registers the callback invoked by Submit.
func WithOnValueChanged(fn ValueChangedFunc) Option {
	return func(f *Form) { f.onValueChanged = fn }
}

// WithLogger sets the logger used for state changes. A nil logger keeps
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a form with an empty bill, one contributor and a 0% tip.
func New(opts ...Option) *Form {
	f := &Form{
		split:  MinSplit,
		logger: slog.Default(),
		id:     uuid.New().String(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("form_id", f.id)
	f.recompute()
	return f
}

// ID returns the session id attached to this form's log records.
func (f *Form) ID() string {
	return f.id
}

// SetBill replaces the bill text.
func (f *Form) SetBill(text string) {
	f.bill = text
	f.recompute()
}

// Increment adds one contributor. It is a no-op at MaxSplit.
func (f *Form) Increment() {
	if f.split < MaxSplit {
		f.split++
	}
	f.recompute()
}

// Decrement removes one contributor. It is a no-op at MinSplit.
func (f *Form) Decrement() {
	if f.split > MinSplit {
		f.split--
	}
	f.recompute()
}

// SetSliderPosition moves the tip slider, clamping to [0, 1].
func (f *Form) SetSliderPosition(pos float64) {
	f.slider = clampFraction(pos)
	f.recompute()
}

// SetTipPercent moves the slider to the given whole percentage.
func (f *Form) SetTipPercent(p int) {
	f.SetSliderPosition(float64(p) / 100)
}

// SlideUp moves the slider to the next stop.
func (f *Form) SlideUp() {
	f.SetSliderPosition(float64(stop(f.slider)+1) / sliderStops)
}

// SlideDown moves the slider to the previous stop.
func (f *Form) SlideDown() {
	f.SetSliderPosition(float64(stop(f.slider)-1) / sliderStops)
}

// Reset restores the initial empty state.
func (f *Form) Reset() {
	f.bill = ""
	f.split = MinSplit
	f.slider = 0
	f.recompute()
}

// Valid reports whether the trimmed bill text is non-empty.
func (f *Form) Valid() bool {
	return strings.TrimSpace(f.bill) != ""
}

// Err returns the parse error for a non-empty bill that is not a number.
// Such a bill counts as zero in every derived value.
func (f *Form) Err() error {
	return f.billErr
}

// Submit is the keyboard "Done" action. When the bill is valid it invokes
// the value-changed callback and returns true.
func (f *Form) Submit() bool {
	if !f.Valid() || f.billErr != nil {
		f.logger.Debug("Submit ignored", "bill", f.bill, "error", f.billErr)
		return false
	}
	if f.onValueChanged != nil {
		f.onValueChanged(f.bill)
	}
	return true
}

// Bill returns the bill text as entered.
func (f *Form) Bill() string { return f.bill }

// Split returns the contributor count.
func (f *Form) Split() int { return f.split }

// SliderPosition returns the tip fraction in [0, 1].
func (f *Form) SliderPosition() float64 { return f.slider }

// TipAmount returns the derived tip.
func (f *Form) TipAmount() float64 { return f.tipAmount }

// TotalPerPerson returns the derived per-person share.
func (f *Form) TotalPerPerson() float64 { return f.totalPerPerson }

// TipPercent is the whole percentage shown for the current slider position.
func (f *Form) TipPercent() int {
	return money.PercentOf(f.slider)
}

// SliderStop is the index of the slider stop nearest the current position,
// from 0 to SliderSteps+1.
func (f *Form) SliderStop() int {
	return stop(f.slider)
}

// Summary returns a snapshot of inputs and derived values.
func (f *Form) Summary() models.Summary {
	return models.Summary{
		Bill:           f.bill,
		BillAmount:     f.billAmount,
		Split:          f.split,
		SliderPosition: f.slider,
		TipPercent:     f.TipPercent(),
		Tip:            f.tipAmount,
		TotalPerPerson: f.totalPerPerson,
		Valid:          f.Valid(),
	}
}

// recompute derives the tip and per-person amounts from the inputs.
func (f *Form) recompute() {
	f.billAmount, f.billErr = calculator.ParseBill(f.bill)
	f.tipAmount = calculator.CalculateTotalTip(int(f.billAmount), f.TipPercent())
	f.totalPerPerson = calculator.CalculateTotalPerPerson(f.bill, f.tipAmount, f.split)

	f.logger.Debug("Form recomputed",
		"bill", f.bill,
		"split", f.split,
		"tip_percent", f.TipPercent(),
		"tip", f.tipAmount,
		"total_per_person", f.totalPerPerson,
	)
}

func clampSplit(n int) int {
	return min(max(n, MinSplit), MaxSplit)
}

func clampFraction(v float64) float64 {
	return min(max(v, 0), 1)
}

// stop returns the index of the slider stop nearest to pos.
func stop(pos float64) int {
	return int(math.Round(pos * sliderStops))
}

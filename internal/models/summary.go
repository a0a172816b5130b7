package models

// Summary is a point-in-time snapshot of the tip form.
// It is the value handed to renderers and value-changed callbacks.
type Summary struct {
	// Bill is the bill text exactly as entered.
	Bill string

	// BillAmount is the parsed bill. Zero when Bill is empty or unparsable.
	BillAmount float64

	// Split is the number of contributors.
	Split int

	// SliderPosition is the tip fraction in [0, 1].
	SliderPosition float64

	// TipPercent is the whole-number percentage shown next to the slider.
	TipPercent int

	// Tip is the computed tip amount.
	// Calculated as: int(bill) × percent / 100, integer division
	Tip float64

	// TotalPerPerson is (bill + tip) / split.
	TotalPerPerson float64

	// Valid reports whether the bill text is non-empty.
	Valid bool
}

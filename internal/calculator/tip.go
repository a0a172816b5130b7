package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBill is returned by ParseBill when the bill text is not a number
// or its magnitude exceeds MaxBill.
var ErrInvalidBill = errors.New("invalid bill amount")

// MaxBill is the largest bill accepted. It keeps the integer tip product and
// the formatted amounts well inside int64.
const MaxBill = 1e12

// ParseBill converts user-entered bill text into a float.
// Empty (or whitespace-only) text is zero, not an error.
func ParseBill(billValue string) (float64, error) {
	s := strings.TrimSpace(billValue)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, billValue)
	}
	if math.Abs(v) > MaxBill {
		return 0, fmt.Errorf("%w: %q exceeds %.0f", ErrInvalidBill, billValue, MaxBill)
	}
	return v, nil
}

// CalculateTotalTip returns the tip for a whole-unit bill amount.
// Bills of 1 or less get no tip, and the tip is truncated to a whole unit
// (integer division before conversion). Both behaviours are kept for
// compatibility with existing totals.
func CalculateTotalTip(billAmount int, tipPercentage int) float64 {
	if billAmount <= 1 {
		return 0
	}
	return float64(billAmount * tipPercentage / 100)
}

// CalculateTotalPerPerson splits the bill plus tip evenly across splitBy people.
// Empty or unparsable bill text yields 0.
// splitBy must be at least 1.
func CalculateTotalPerPerson(billValue string, tip float64, splitBy int) float64 {
	if strings.TrimSpace(billValue) == "" {
		return 0
	}
	bill, err := ParseBill(billValue)
	if err != nil {
		return 0
	}
	return (bill + tip) / float64(splitBy)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/mmynk/jettip/internal/models"
	"github.com/mmynk/jettip/internal/money"
)

// RenderSummary formats a summary as plain text for non-interactive output.
func RenderSummary(s models.Summary, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Per Person: %s\n", money.Format(currency, s.TotalPerPerson))
	fmt.Fprintf(&b, "Bill Amount:      %s\n", money.Format(currency, s.BillAmount))
	if s.Valid {
		fmt.Fprintf(&b, "Split:            %d\n", s.Split)
		fmt.Fprintf(&b, "Tip (%d%%):%s%s\n", s.TipPercent, strings.Repeat(" ", tipPad(s.TipPercent)), money.Format(currency, s.Tip))
	}
	return b.String()
}

// tipPad aligns the tip value with the other rows.
func tipPad(percent int) int {
	return max(1, len("Total Per Person: ")-len(fmt.Sprintf("Tip (%d%%):", percent)))
}

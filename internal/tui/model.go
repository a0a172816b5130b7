// Package tui renders the tip form as a terminal screen.
//
// The screen is a bubbletea model wrapping a form.Form. Key presses are
// translated into form mutations and the view is rebuilt from the form's
// derived values after every message.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/jettip/internal/form"
)

const (
	cardWidth  = 36
	labelWidth = 8

	// maxBillLength caps typed bill text, decimal point included.
	maxBillLength = 16
)

// Model is the bubbletea model for the tip screen.
type Model struct {
	form     *form.Form
	currency string
	styles   styles
	status   string
	quitting bool
}

// New creates a screen for f that prints amounts with the currency symbol.
func New(f *form.Form, currency string) Model {
	return Model{
		form:     f,
		currency: currency,
		styles:   defaultStyles(),
	}
}

// Form returns the form behind the screen.
func (m Model) Form() *form.Form {
	return m.form
}

// Init implements tea.Model. The screen needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies a key press to the form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	key := keyMsg.String()
	switch key {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.form.Submit() {
			m.status = "Bill submitted"
		}
		return m, nil
	case "backspace":
		m.form.SetBill(dropLast(m.form.Bill()))
		return m, nil
	case "ctrl+u":
		m.form.Reset()
		return m, nil
	}

	// Split and tip controls are only on screen for a valid bill.
	if m.form.Valid() {
		switch key {
		case "+", "=":
			m.form.Increment()
			return m, nil
		case "-", "_":
			m.form.Decrement()
			return m, nil
		case "right", "l":
			m.form.SlideUp()
			return m, nil
		case "left", "h":
			m.form.SlideDown()
			return m, nil
		}
	}

	if keyMsg.Type == tea.KeyRunes {
		if bill, ok := appendBillRunes(m.form.Bill(), keyMsg.Runes); ok {
			m.form.SetBill(bill)
		}
	}
	return m, nil
}

// appendBillRunes accepts digits and a single decimal point, mirroring a
// numeric keyboard. It reports false when any rune is rejected.
func appendBillRunes(bill string, runes []rune) (string, bool) {
	var b strings.Builder
	b.WriteString(bill)
	hasDot := strings.Contains(bill, ".")
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !hasDot:
			hasDot = true
			b.WriteRune(r)
		default:
			return bill, false
		}
	}
	if b.Len() > maxBillLength {
		return bill, false
	}
	return b.String(), true
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

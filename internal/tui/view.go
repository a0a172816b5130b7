package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mmynk/jettip/internal/form"
	"github.com/mmynk/jettip/internal/money"
)

// View renders the header card, the form card and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		"",
		m.formView(),
		m.helpView(),
	)
}

func (m Model) headerView() string {
	return m.styles.header.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.headerTitle.Render("Total Per Person"),
		m.styles.headerTotal.Render(money.Format(m.currency, m.form.TotalPerPerson())),
	))
}

func (m Model) formView() string {
	rows := []string{
		"Bill Amount",
		fmt.Sprintf("%s %s█", m.currency, m.form.Bill()),
	}
	if err := m.form.Err(); err != nil {
		rows = append(rows, m.styles.err.Render("Enter a number"))
	}

	if m.form.Valid() {
		rows = append(rows,
			"",
			m.row("Split", fmt.Sprintf("%s %3d %s",
				m.styles.button.Render("[-]"),
				m.form.Split(),
				m.styles.button.Render("[+]"),
			)),
			m.row("Tip", money.Format(m.currency, m.form.TipAmount())),
			"",
			m.row("", m.styles.value.Render(money.Percent(m.form.SliderPosition()))),
			m.row("", m.sliderView()),
		)
	}

	if m.status != "" {
		rows = append(rows, "", m.status)
	}
	return m.styles.card.Render(strings.Join(rows, "\n"))
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + value
}

// sliderView draws one marker per stop with the current stop filled.
func (m Model) sliderView() string {
	current := m.form.SliderStop()
	marks := make([]string, form.SliderSteps+2)
	for i := range marks {
		switch {
		case i == current:
			marks[i] = m.styles.sliderOn.Render("●")
		case i < current:
			marks[i] = m.styles.sliderOn.Render("○")
		default:
			marks[i] = m.styles.sliderOff.Render("○")
		}
	}
	return strings.Join(marks, "─")
}

func (m Model) helpView() string {
	help := "0-9 . edit • enter done • ctrl+u reset • esc quit"
	if m.form.Valid() {
		help = "+/- split • ←/→ tip • " + help
	}
	return m.styles.help.Render(help)
}

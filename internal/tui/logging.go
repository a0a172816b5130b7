package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loggingModel wraps a model and logs every message it handles.
type loggingModel struct {
	next   tea.Model
	logger *slog.Logger
}

// WithLogging returns a model that logs each handled message, its
// duration, and whether it produced a command.
func WithLogging(next tea.Model, logger *slog.Logger) tea.Model {
	return loggingModel{next: next, logger: logger}
}

func (m loggingModel) Init() tea.Cmd {
	return m.next.Init()
}

func (m loggingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	start := time.Now()

	next, cmd := m.next.Update(msg)

	attrs := []any{
		"msg_type", fmt.Sprintf("%T", msg),
		"duration_us", time.Since(start).Microseconds(),
		"cmd", cmd != nil,
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		attrs = append(attrs, "key", key.String())
	}
	m.logger.Debug("Message handled", attrs...)

	m.next = next
	return m, cmd
}

func (m loggingModel) View() string {
	return m.next.View()
}

// Unwrap returns the wrapped model.
func (m loggingModel) Unwrap() tea.Model {
	return m.next
}

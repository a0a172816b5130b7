package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/mmynk/jettip/internal/config"
	"github.com/mmynk/jettip/internal/form"
	"github.com/mmynk/jettip/internal/tui"
	"github.com/mmynk/jettip/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout *os.File) int {
	cfg, err := config.ParseFlags(args)
	if err != nil {
		logging.Setup(os.Stderr)
		slog.Error("Invalid configuration", "error", err)
		return 2
	}

	interactive := !cfg.Once && isatty.IsTerminal(stdout.Fd())
	if !interactive {
		logging.Setup(os.Stderr)
		return printOnce(cfg, stdout)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logging.Setup(os.Stderr)
			slog.Error("Failed to open log file", "path", cfg.LogFile, "error", err)
			return 1
		}
		defer logFile.Close()
		logging.Setup(logFile)
	} else {
		logging.Discard()
	}

	f := newForm(cfg)
	slog.Info("Tip screen starting", "form_id", f.ID(), "currency", cfg.Currency)

	model := tui.WithLogging(tui.New(f, cfg.Currency), slog.Default().With("form_id", f.ID()))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("Tip screen failed", "error", err)
		fmt.Fprintln(os.Stderr, "jettip:", err)
		return 1
	}

	slog.Info("Tip screen closed", "form_id", f.ID(), "summary", f.Summary())
	return 0
}

func newForm(cfg config.Config) *form.Form {
	f := form.New(
		form.WithSplit(cfg.Split),
		form.WithTipPercent(cfg.TipPercent),
		form.WithOnValueChanged(func(bill string) {
			slog.Debug("Bill submitted", "bill", bill)
		}),
	)
	f.SetBill(cfg.Bill)
	return f
}

// printOnce renders the prefilled form a single time.
func printOnce(cfg config.Config, w io.Writer) int {
	f := newForm(cfg)
	if err := f.Err(); err != nil {
		slog.Error("Invalid bill", "error", err)
		return 2
	}
	f.Submit()

	if _, err := io.WriteString(w, tui.RenderSummary(f.Summary(), cfg.Currency)); err != nil {
		slog.Error("Failed to write summary", "error", err)
		return 1
	}
	return 0
}

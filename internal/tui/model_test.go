package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/mmynk/jettip/internal/form"
	"github.com/mmynk/jettip/internal/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds msgs through the model and returns the resulting model.
func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func view(m tea.Model) string {
	return ansi.Strip(m.View())
}

func TestUpdate_BillEntry(t *testing.T) {
	f := form.New()
	m := send(t, New(f, "$"), runes("1"), runes("0"), runes("0"), runes("."), runes("5"), runes("."), runes("x"))

	if f.Bill() != "100.5" {
		t.Errorf("Bill() = %q, want %q", f.Bill(), "100.5")
	}

	m = send(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace))
	if f.Bill() != "100" {
		t.Errorf("Bill() after backspace = %q, want %q", f.Bill(), "100")
	}

	send(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	if f.Bill() != "" {
		t.Errorf("Bill() = %q, want empty", f.Bill())
	}
}

func TestUpdate_PastedRunes(t *testing.T) {
	f := form.New()
	send(t, New(f, "$"), runes("42.75"))
	if f.Bill() != "42.75" {
		t.Errorf("Bill() = %q, want %q", f.Bill(), "42.75")
	}

	send(t, New(f, "$"), runes("1a"))
	if f.Bill() != "42.75" {
		t.Errorf("Bill() = %q, want paste with letters rejected", f.Bill())
	}
}

func TestUpdate_BillLengthCapped(t *testing.T) {
	f := form.New()
	m := send(t, New(f, "$"), runes("1234567890123456"), runes("7"))
	if f.Bill() != "1234567890123456" {
		t.Errorf("Bill() = %q, want input stopped at %d characters", f.Bill(), maxBillLength)
	}

	send(t, m, key(tea.KeyBackspace), runes("9"))
	if f.Bill() != "1234567890123459" {
		t.Errorf("Bill() = %q, want %q", f.Bill(), "1234567890123459")
	}
	if !strings.Contains(view(New(f, "$")), "Enter a number") {
		t.Errorf("expected over-limit bill to show validation message:\n%s", view(New(f, "$")))
	}
}

func TestUpdate_ControlsRequireValidBill(t *testing.T) {
	f := form.New()
	m := send(t, New(f, "$"), runes("+"), key(tea.KeyRight), runes("-"))

	if f.Split() != 1 || f.SliderPosition() != 0 {
		t.Errorf("controls changed state on empty bill: split=%d slider=%v", f.Split(), f.SliderPosition())
	}
	if f.Bill() != "" {
		t.Errorf("Bill() = %q, want control keys not typed into bill", f.Bill())
	}

	send(t, m, runes("100"), runes("+"), runes("="), runes("+"), runes("+"), key(tea.KeyRight), runes("l"), runes("h"))

	if f.Split() != 5 {
		t.Errorf("Split() = %d, want 5", f.Split())
	}
	if f.TipPercent() != 16 {
		t.Errorf("TipPercent() = %d, want 16", f.TipPercent())
	}
	if f.TipAmount() != 16 {
		t.Errorf("TipAmount() = %v, want 16", f.TipAmount())
	}
}

func TestUpdate_SubmitAndReset(t *testing.T) {
	var submitted []string
	f := form.New(form.WithOnValueChanged(func(bill string) { submitted = append(submitted, bill) }))
	m := send(t, New(f, "$"), key(tea.KeyEnter))
	if len(submitted) != 0 {
		t.Fatalf("callback invoked for empty bill: %v", submitted)
	}

	m = send(t, m, runes("60"), key(tea.KeyEnter))
	if len(submitted) != 1 || submitted[0] != "60" {
		t.Fatalf("submitted = %v, want [60]", submitted)
	}
	if !strings.Contains(view(m), "Bill submitted") {
		t.Errorf("expected submit status in view:\n%s", view(m))
	}

	m = send(t, m, runes("+"), key(tea.KeyCtrlU))
	if f.Bill() != "" || f.Split() != 1 {
		t.Errorf("after reset bill=%q split=%d", f.Bill(), f.Split())
	}
	if strings.Contains(view(m), "Bill submitted") {
		t.Error("expected status to clear on next key")
	}
}

func TestUpdate_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{key(tea.KeyCtrlC), key(tea.KeyEsc), runes("q")} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := New(form.New(), "$").Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg, got %T", cmd())
			}
			if m.View() != "" {
				t.Errorf("expected empty view after quit, got %q", m.View())
			}
		})
	}
}

func TestView(t *testing.T) {
	t.Run("empty bill hides controls", func(t *testing.T) {
		out := view(New(form.New(), "$"))
		for _, want := range []string{"Total Per Person", "$0.00", "Bill Amount"} {
			if !strings.Contains(out, want) {
				t.Errorf("view missing %q:\n%s", want, out)
			}
		}
		for _, absent := range []string{"Split", "Tip", "%"} {
			if strings.Contains(out, absent) {
				t.Errorf("view contains %q for invalid bill:\n%s", absent, out)
			}
		}
	})

	t.Run("valid bill shows totals and controls", func(t *testing.T) {
		f := form.New(form.WithTipPercent(15), form.WithSplit(5))
		f.SetBill("100")
		out := view(New(f, "$"))
		for _, want := range []string{"$23.00", "$15.00", "15%", "Split", "5", "[-]", "[+]", "●"} {
			if !strings.Contains(out, want) {
				t.Errorf("view missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("slider ends", func(t *testing.T) {
		f := form.New()
		f.SetBill("10")
		if out := view(New(f, "$")); !strings.Contains(out, "0%") {
			t.Errorf("expected 0%% at slider start:\n%s", out)
		}
		f.SetSliderPosition(1)
		if out := view(New(f, "$")); !strings.Contains(out, "100%") {
			t.Errorf("expected 100%% at slider end:\n%s", out)
		}
	})

	t.Run("unparsable bill shows validation message", func(t *testing.T) {
		f := form.New()
		f.SetBill(".")
		out := view(New(f, "€"))
		if !strings.Contains(out, "Enter a number") {
			t.Errorf("expected validation message:\n%s", out)
		}
		if !strings.Contains(out, "€0.00") {
			t.Errorf("expected zero total:\n%s", out)
		}
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := form.New(form.WithLogger(slog.New(slog.DiscardHandler)))
	m := send(t, WithLogging(New(f, "$"), logger), runes("7"))

	if f.Bill() != "7" {
		t.Errorf("Bill() = %q, want 7", f.Bill())
	}
	if !strings.Contains(buf.String(), "Message handled") || !strings.Contains(buf.String(), "key=7") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
	if _, ok := m.(loggingModel).Unwrap().(Model); !ok {
		t.Errorf("expected wrapped tui.Model, got %T", m.(loggingModel).Unwrap())
	}
	if !strings.Contains(view(m), "Bill Amount") {
		t.Errorf("wrapped view not rendered:\n%s", view(m))
	}
}

func TestRenderSummary(t *testing.T) {
	s := models.Summary{
		Bill:           "100",
		BillAmount:     100,
		Split:          5,
		TipPercent:     15,
		Tip:            15,
		TotalPerPerson: 23,
		Valid:          true,
	}
	want := "Total Per Person: $23.00\n" +
		"Bill Amount:      $100.00\n" +
		"Split:            5\n" +
		"Tip (15%):        $15.00\n"
	if got := RenderSummary(s, "$"); got != want {
		t.Errorf("RenderSummary() =\n%s\nwant\n%s", got, want)
	}

	empty := RenderSummary(models.Summary{Split: 1}, "$")
	if strings.Contains(empty, "Split") {
		t.Errorf("expected controls omitted for empty bill:\n%s", empty)
	}
}

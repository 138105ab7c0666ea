package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Config{Text: "a\nb", Title: "Content", Multiline: true})
	if got := m.Value(); got != "a\nb" {
		t.Fatalf("value: got %q", got)
	}
	if !m.Focused() {
		t.Fatalf("expected a new model to be focused")
	}
	if m.Title() != "Content" || !m.Multiline() {
		t.Fatalf("config accessors: got (%q, %v)", m.Title(), m.Multiline())
	}
	if m.cfg.KeyMap.isZero() {
		t.Fatalf("expected default key map")
	}
	if got := m.Buffer().Options().HistoryLimit; got != 100 {
		t.Fatalf("history limit: got %d, want 100", got)
	}
}

func TestModel_HistoryLimitForwarded(t *testing.T) {
	m := New(Config{HistoryLimit: 2})
	m = typeText(m, "abc")
	m = press(m, tea.KeyCtrlZ, tea.KeyCtrlZ, tea.KeyCtrlZ)
	if got := m.Value(); got != "a" {
		t.Fatalf("value after undoing past the limit: got %q, want %q", got, "a")
	}
}

func TestModel_SetValueResetsHistory(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "abc")
	m = m.SetValue("fresh")
	if m.Buffer().CanUndo() {
		t.Fatalf("expected history cleared")
	}
	if got := m.Value(); got != "fresh" {
		t.Fatalf("value: got %q", got)
	}
}

func TestModel_SetSizeClampsNegative(t *testing.T) {
	m := New(Config{}).SetSize(-3, -1)
	if m.Width() != 0 || m.Height() != 0 {
		t.Fatalf("size: got (%d, %d), want (0, 0)", m.Width(), m.Height())
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})
	if m.Width() != 30 || m.Height() != 6 {
		t.Fatalf("size after WindowSizeMsg: got (%d, %d)", m.Width(), m.Height())
	}
}

func TestModel_FocusBlur(t *testing.T) {
	m := New(Config{}).Blur()
	if m.Focused() {
		t.Fatalf("expected blurred")
	}
	if !m.Focus().Focused() {
		t.Fatalf("expected focused")
	}
}

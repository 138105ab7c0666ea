package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	// Word bindings are checked before plain arrows: a user binding may
	// reuse an arrow with a modifier.
	case key.Matches(msg, km.ShiftWordLeft):
		m.buf.MoveWordLeft(true)
	case key.Matches(msg, km.ShiftWordRight):
		m.buf.MoveWordRight(true)
	case key.Matches(msg, km.WordLeft):
		m.buf.MoveWordLeft(false)
	case key.Matches(msg, km.WordRight):
		m.buf.MoveWordRight(false)

	case key.Matches(msg, km.Left):
		m.buf.MoveLeft(false)
	case key.Matches(msg, km.Right):
		m.buf.MoveRight(false)
	case key.Matches(msg, km.Up):
		m.buf.MoveUp(false)
	case key.Matches(msg, km.Down):
		m.buf.MoveDown(false)

	case key.Matches(msg, km.ShiftLeft):
		m.buf.MoveLeft(true)
	case key.Matches(msg, km.ShiftRight):
		m.buf.MoveRight(true)
	case key.Matches(msg, km.ShiftUp):
		m.buf.MoveUp(true)
	case key.Matches(msg, km.ShiftDown):
		m.buf.MoveDown(true)

	case key.Matches(msg, km.Home):
		m.buf.MoveHome(false)
	case key.Matches(msg, km.End):
		m.buf.MoveEnd(false)
	case key.Matches(msg, km.ShiftHome):
		m.buf.MoveHome(true)
	case key.Matches(msg, km.ShiftEnd):
		m.buf.MoveEnd(true)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteChar()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly && m.cfg.Multiline {
			m.buf.InsertNewline()
		}

	default:
		if m.cfg.ReadOnly || msg.Alt {
			return m, nil
		}
		switch msg.Type {
		case tea.KeySpace:
			m.buf.InsertChar(' ')
		case tea.KeyRunes:
			if len(msg.Runes) > 0 {
				m.insertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// insertText inserts typed or pasted text. Line breaks are dropped from
// single-line fields.
func (m Model) insertText(s string) {
	if !m.cfg.Multiline {
		s = singleLine(s)
		if s == "" {
			return
		}
	}
	m.buf.InsertText(s)
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.status = fmt.Sprintf("Failed to copy to clipboard: %v", err)
		return
	}
	if s != "" {
		m.status = "Copied to clipboard"
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.status = fmt.Sprintf("Failed to copy to clipboard: %v", err)
		return
	}
	if s != "" {
		m.buf.DeleteSelection()
		m.status = "Cut to clipboard"
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.status = fmt.Sprintf("Failed to paste from clipboard: %v", err)
		return
	}
	if s == "" {
		return
	}
	m.insertText(s)
}

func singleLine(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
	}
}

// Bindings names user-configurable keys in bubbletea notation ("ctrl+z",
// "left"). Empty fields keep the default binding.
type Bindings struct {
	Undo, Redo          string
	WordLeft, WordRight string
	Copy, Cut, Paste    string
	SelectAll           string
}

// KeyMapFromBindings returns DefaultKeyMap with the configured keys swapped
// in. Word motions also get a shift variant for extending the selection.
func KeyMapFromBindings(b Bindings) KeyMap {
	km := DefaultKeyMap()
	rebind(&km.Undo, b.Undo)
	rebind(&km.Redo, b.Redo)
	rebind(&km.Copy, b.Copy)
	rebind(&km.Cut, b.Cut)
	rebind(&km.Paste, b.Paste)
	rebind(&km.SelectAll, b.SelectAll)
	rebind(&km.WordLeft, b.WordLeft)
	rebind(&km.WordRight, b.WordRight)
	if b.WordLeft != "" {
		rebind(&km.ShiftWordLeft, withShift(b.WordLeft))
	}
	if b.WordRight != "" {
		rebind(&km.ShiftWordRight, withShift(b.WordRight))
	}
	return km
}

func rebind(kb *key.Binding, k string) {
	if k == "" {
		return
	}
	kb.SetKeys(k)
	kb.SetHelp(k, kb.Help().Desc)
}

// withShift adds the shift modifier in front of the base key:
// "ctrl+left" -> "ctrl+shift+left".
func withShift(k string) string {
	if strings.Contains(k, "shift+") {
		return k
	}
	i := strings.LastIndex(k, "+")
	if i < 0 {
		return "shift+" + k
	}
	return k[:i+1] + "shift+" + k[i+1:]
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 && len(km.Backspace.Keys()) == 0
}

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/tnj/editor"
)

// ErrInvalidKeyBinding is returned for binding strings that name no key.
var ErrInvalidKeyBinding = errors.New("invalid key binding")

var specialKeys = map[string]string{
	"Enter":     "enter",
	"Esc":       "esc",
	"Escape":    "esc",
	"Backspace": "backspace",
	"Tab":       "tab",
	"Space":     " ",
	"Left":      "left",
	"Right":     "right",
	"Up":        "up",
	"Down":      "down",
	"Home":      "home",
	"End":       "end",
	"PageUp":    "pgup",
	"PageDown":  "pgdown",
	"Delete":    "delete",
	"Insert":    "insert",
}

// ParseKeyBinding converts "Ctrl+z", "Ctrl+Left", "F1" or "q" to the key
// name bubbletea reports for it.
func ParseKeyBinding(s string) (string, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "Ctrl+"); ok {
		name, err := parseKeyName(rest)
		if err != nil || name == " " {
			return "", fmt.Errorf("%w: %q", ErrInvalidKeyBinding, s)
		}
		return "ctrl+" + strings.ToLower(name), nil
	}
	name, err := parseKeyName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyBinding, s)
	}
	return name, nil
}

func parseKeyName(s string) (string, error) {
	if name, ok := specialKeys[s]; ok {
		return name, nil
	}
	if len(s) >= 2 && s[0] == 'F' {
		if n, err := strconv.Atoi(s[1:]); err == nil && n >= 1 && n <= 12 {
			return "f" + strconv.Itoa(n), nil
		}
	}
	if r := []rune(s); len(r) == 1 {
		return s, nil
	}
	return "", ErrInvalidKeyBinding
}

// Resolved holds every binding in bubbletea key-name form.
type Resolved struct {
	Editor editor.Bindings
	Save   string
	Quit   string
}

// Resolve parses all bindings. The first invalid one is reported.
func (k KeyBindings) Resolve() (Resolved, error) {
	var out Resolved
	fields := []struct {
		name string
		in   string
		out  *string
	}{
		{"undo", k.Undo, &out.Editor.Undo},
		{"redo", k.Redo, &out.Editor.Redo},
		{"word_left", k.WordLeft, &out.Editor.WordLeft},
		{"word_right", k.WordRight, &out.Editor.WordRight},
		{"copy", k.Copy, &out.Editor.Copy},
		{"cut", k.Cut, &out.Editor.Cut},
		{"paste", k.Paste, &out.Editor.Paste},
		{"select_all", k.SelectAll, &out.Editor.SelectAll},
		{"save", k.Save, &out.Save},
		{"quit", k.Quit, &out.Quit},
	}
	for _, f := range fields {
		if f.in == "" {
			continue
		}
		name, err := ParseKeyBinding(f.in)
		if err != nil {
			return Resolved{}, fmt.Errorf("key_bindings.%s: %w", f.name, err)
		}
		*f.out = name
	}
	return out, nil
}

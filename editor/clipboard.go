package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; the editor reports them through Status.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// Unsupported reports whether no clipboard utility was found at startup.
func (SystemClipboard) Unsupported() bool { return clipboard.Unsupported }

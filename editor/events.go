package editor

import "github.com/iw2rmb/tnj/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	// TextChanged is set when the document text changed, not just the
	// cursor, selection or scroll state.
	TextChanged bool

	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
}

func buildChangeEvent(b *buffer.Buffer, lastTextVersion uint64) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		TextChanged: b.TextVersion() != lastTextVersion,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if b.HasSelection() {
		if r, ok := b.SelectionBounds(); ok {
			ev.Selection.Active = true
			ev.Selection.Range = r
		}
	}
	return ev
}

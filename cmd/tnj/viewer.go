package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/tnj/buffer"
	"github.com/iw2rmb/tnj/tcellview"
)

// runViewer shows text read-only on a tcell screen. Arrows, home/end and
// page keys move the cursor; q or esc quits.
func runViewer(title, text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	defer screen.Fini()

	b := buffer.FromText(text, buffer.Options{HistoryLimit: -1})
	b.SetCursor(buffer.Pos{})
	field := tcellview.Field{Title: title, Focused: true, Styles: tcellview.DefaultStyles()}

	for {
		w, h := screen.Size()
		screen.Clear()
		tcellview.Paint(screen, b, buffer.Rect{Width: w, Height: h}, field)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !viewerKey(b, ev, h-buffer.BorderCells) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// viewerKey applies one key to the viewer buffer and reports whether the
// viewer keeps running.
func viewerKey(b *buffer.Buffer, ev *tcell.EventKey, page int) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return ev.Rune() != 'q'
	case tcell.KeyUp:
		b.MoveUp(false)
	case tcell.KeyDown:
		b.MoveDown(false)
	case tcell.KeyLeft:
		b.MoveLeft(false)
	case tcell.KeyRight:
		b.MoveRight(false)
	case tcell.KeyHome:
		b.MoveHome(false)
	case tcell.KeyEnd:
		b.MoveEnd(false)
	case tcell.KeyPgUp:
		for i := 0; i < max(page, 1); i++ {
			b.MoveUp(false)
		}
	case tcell.KeyPgDn:
		for i := 0; i < max(page, 1); i++ {
			b.MoveDown(false)
		}
	}
	return true
}

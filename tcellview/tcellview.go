// Package tcellview paints a buffer straight onto a tcell screen, for hosts
// that drive the terminal with tcell instead of Bubble Tea.
package tcellview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/tnj/buffer"
	"github.com/iw2rmb/tnj/internal/cellwidth"
)

// Screen is the part of tcell.Screen Paint draws with.
type Screen interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	ShowCursor(x, y int)
	HideCursor()
}

var _ Screen = tcell.Screen(nil)

type Styles struct {
	Border        tcell.Style
	BorderFocused tcell.Style
	Title         tcell.Style
	Text          tcell.Style
	Selection     tcell.Style
}

func DefaultStyles() Styles {
	return Styles{
		Border:        tcell.StyleDefault.Foreground(tcell.ColorGray),
		BorderFocused: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Title:         tcell.StyleDefault.Bold(true),
		Text:          tcell.StyleDefault,
		Selection:     tcell.StyleDefault.Reverse(true),
	}
}

// Field describes the frame around a painted buffer.
type Field struct {
	Title   string
	Focused bool
	Styles  Styles
}

type cell struct {
	main  rune
	comb  []rune
	style tcell.Style
}

// Paint draws b inside area with a one-cell border. The scroll offsets are
// first moved to keep the cursor visible. The terminal cursor is shown on
// the cursor cell of a focused field and left alone for unfocused ones, so
// several fields can share a screen.
func Paint(s Screen, b *buffer.Buffer, area buffer.Rect, f Field) {
	if b == nil || area.Width < buffer.BorderCells || area.Height < buffer.BorderCells {
		if f.Focused {
			s.HideCursor()
		}
		return
	}
	vh := area.Height - buffer.BorderCells
	inner := area.Width - buffer.BorderCells

	b.UpdateScroll(vh)
	b.UpdateHorizontalScroll(area.Width)

	paintBorder(s, area, f)

	start, rows := b.VisibleLines(vh, area.Width)
	sel, selOK := b.SelectionBounds()
	selOK = selOK && !sel.IsEmpty()
	scrollCol := b.Scroll().Col

	cx, cy, cursorOK := b.CursorScreenPosition(area, vh)
	cursorIdx := cx - area.X - 1
	cursorRow := cy - area.Y - 1

	for i := 0; i < vh; i++ {
		y := area.Y + 1 + i
		var cells []cell
		used := 0
		j := 0
		last := -1
		cursorCell := -1
		if i < len(rows) {
			for _, r := range rows[i] {
				if cursorOK && i == cursorRow && j == cursorIdx {
					cursorCell = used
				}
				disp := cellwidth.Display(string(r))
				w := cellwidth.Cluster(disp)
				if w == 0 {
					if last >= 0 {
						cells[last].comb = append(cells[last].comb, r)
					}
					j++
					continue
				}
				if used+w > inner {
					break
				}
				st := f.Styles.Text
				pos := buffer.Pos{Line: start + i, Col: scrollCol + j}
				if selOK && buffer.ComparePos(pos, sel.Start) >= 0 && buffer.ComparePos(pos, sel.End) < 0 {
					st = f.Styles.Selection
				}
				last = len(cells)
				cells = append(cells, cell{main: []rune(disp)[0], style: st})
				// A wide rune covers the next cell too.
				for k := 1; k < w; k++ {
					cells = append(cells, cell{})
				}
				used += w
				j++
			}
		}
		if cursorOK && i == cursorRow && cursorCell < 0 {
			cursorCell = used
		}

		x := area.X + 1
		for k := 0; k < inner; k++ {
			if k < len(cells) {
				if c := cells[k]; c.main != 0 {
					s.SetContent(x+k, y, c.main, c.comb, c.style)
				}
				continue
			}
			s.SetContent(x+k, y, ' ', nil, f.Styles.Text)
		}
		if cursorOK && i == cursorRow {
			cx = x + min(cursorCell, inner-1)
		}
	}

	if !f.Focused {
		return
	}
	if cursorOK {
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}
}

func paintBorder(s Screen, area buffer.Rect, f Field) {
	st := f.Styles.Border
	if f.Focused {
		st = f.Styles.BorderFocused
	}
	left, right := area.X, area.X+area.Width-1
	top, bottom := area.Y, area.Y+area.Height-1

	s.SetContent(left, top, tcell.RuneULCorner, nil, st)
	s.SetContent(right, top, tcell.RuneURCorner, nil, st)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, st)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, tcell.RuneHLine, nil, st)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, tcell.RuneVLine, nil, st)
		s.SetContent(right, y, tcell.RuneVLine, nil, st)
	}

	if f.Title == "" {
		return
	}
	title := cellwidth.Truncate(" "+f.Title+" ", area.Width-buffer.BorderCells)
	x := left + 1
	for _, c := range cellwidth.Split(title) {
		rs := []rune(cellwidth.Display(c))
		s.SetContent(x, top, rs[0], rs[1:], f.Styles.Title)
		x += cellwidth.Cluster(cellwidth.Display(c))
	}
}

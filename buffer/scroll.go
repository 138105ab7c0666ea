package buffer

// ScrollState is the viewport offset: the first visible line and the first
// visible column. It is not part of the document and is not undoable.
type ScrollState struct {
	Line int
	Col  int
}

func (b *Buffer) Scroll() ScrollState { return b.scroll }

// SetScroll replaces the scroll offsets. Negative values are clamped to 0.
func (b *Buffer) SetScroll(s ScrollState) {
	s.Line = max(s.Line, 0)
	s.Col = max(s.Col, 0)
	if s == b.scroll {
		return
	}
	b.scroll = s
	b.version++
}

// UpdateScroll adjusts the vertical offset so the cursor line lies in
// [offset, offset+viewportHeight).
func (b *Buffer) UpdateScroll(viewportHeight int) {
	h := max(viewportHeight, 1)
	next := b.scroll
	switch line := b.cursor.Line; {
	case line < next.Line:
		next.Line = line
	case line >= next.Line+h:
		next.Line = line - h + 1
	}
	b.SetScroll(next)
}

// UpdateHorizontalScroll adjusts the horizontal offset so the cursor column
// stays visible on its own line. viewportWidth includes the border cells.
// Other lines share the offset and are clipped, not wrapped.
func (b *Buffer) UpdateHorizontalScroll(viewportWidth int) {
	w := max(viewportWidth-BorderCells, 1)
	next := b.scroll
	switch col := b.cursor.Col; {
	case col < next.Col:
		next.Col = col
	case col >= next.Col+w:
		next.Col = col - w + 1
	}
	b.SetScroll(next)
}

// VisibleLines returns the index of the first visible line and the visible
// lines, each sliced by the horizontal offset to viewportWidth minus the
// border cells. A line scrolled past its end yields "".
func (b *Buffer) VisibleLines(viewportHeight, viewportWidth int) (int, []string) {
	start := clampInt(b.scroll.Line, 0, len(b.lines))
	end := min(start+max(viewportHeight, 0), len(b.lines))
	w := max(viewportWidth-BorderCells, 0)

	out := make([]string, 0, end-start)
	for _, line := range b.lines[start:end] {
		if b.scroll.Col >= len(line) {
			out = append(out, "")
			continue
		}
		to := min(b.scroll.Col+w, len(line))
		out = append(out, string(line[b.scroll.Col:to]))
	}
	return start, out
}

// CursorScreenPosition maps the cursor to a screen cell inside area, which
// includes a one-cell border on every side. ok is false when the cursor is
// outside the visible lines or the horizontal window.
func (b *Buffer) CursorScreenPosition(area Rect, viewportHeight int) (x, y int, ok bool) {
	cur := b.cursor
	top := b.scroll.Line
	if cur.Line < top || cur.Line >= top+viewportHeight {
		return 0, 0, false
	}
	row := cur.Line - top
	if row >= area.Height-BorderCells {
		return 0, 0, false
	}

	col := min(cur.Col, b.lineLen(cur.Line))
	if col < b.scroll.Col {
		return 0, 0, false
	}
	visCol := col - b.scroll.Col
	if visCol >= max(area.Width-BorderCells, 0) {
		return 0, 0, false
	}

	x = area.X + 1 + visCol
	y = area.Y + 1 + row
	if x >= area.X+area.Width || y >= area.Y+area.Height {
		return 0, 0, false
	}
	return x, y, true
}

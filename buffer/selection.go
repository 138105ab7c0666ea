package buffer

// StartSelection records the selection anchor at the cursor.
func (b *Buffer) StartSelection() {
	if b.hasAnchor && b.anchor == b.cursor {
		return
	}
	b.anchor = b.cursor
	b.hasAnchor = true
	b.version++
}

// ClearSelection drops the selection anchor.
func (b *Buffer) ClearSelection() {
	if !b.hasAnchor {
		return
	}
	b.hasAnchor = false
	b.version++
}

// Anchor returns the raw selection anchor, if one is set.
func (b *Buffer) Anchor() (Pos, bool) {
	return b.anchor, b.hasAnchor
}

// HasSelection reports whether an anchor is set and differs from the cursor.
func (b *Buffer) HasSelection() bool {
	return b.hasAnchor && b.anchor != b.cursor
}

// SelectionBounds returns the anchor and cursor ordered so the earlier
// position comes first. ok is false when no anchor is set; an anchor equal
// to the cursor yields an empty range.
func (b *Buffer) SelectionBounds() (r Range, ok bool) {
	if !b.hasAnchor {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.anchor, End: b.cursor}), true
}

// SelectedText returns the text inside the selection bounds, joined with
// '\n' across lines, or "" without a selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.selectionRange()
	if !ok {
		return ""
	}
	return textForRange(b.lines, r)
}

// DeleteSelection removes the selected text, collapses the cursor to the
// selection start and clears the selection. The removal is recorded as one
// undoable operation.
func (b *Buffer) DeleteSelection() {
	r, ok := b.selectionRange()
	if !ok {
		b.ClearSelection()
		return
	}
	if r.IsEmpty() {
		b.hasAnchor = false
		b.cursor = r.Start
		b.version++
		return
	}

	removed := b.removeRange(r)
	b.cursor = r.Start
	b.record(DeleteRangeOp{Start: r.Start, Text: removed})
	b.textChanged()
}

// SelectAll anchors the selection at (0, 0) and moves the cursor to the end
// of the last line.
func (b *Buffer) SelectAll() {
	b.ensureValid()
	last := len(b.lines) - 1
	b.anchor = Pos{}
	b.hasAnchor = true
	b.cursor = Pos{Line: last, Col: len(b.lines[last])}
	b.version++
}

func (b *Buffer) selectionRange() (Range, bool) {
	r, ok := b.SelectionBounds()
	if !ok {
		return Range{}, false
	}
	return NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)), true
}

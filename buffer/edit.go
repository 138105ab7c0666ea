package buffer

import "strings"

// InsertChar inserts r at the cursor and advances the cursor by one column.
// An active selection is deleted first. '\n' is handled as InsertNewline.
func (b *Buffer) InsertChar(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}
	if b.HasSelection() {
		b.DeleteSelection()
	}
	b.ensureValid()

	p := b.cursor
	b.insertRuneAt(p, r)
	b.cursor = Pos{Line: p.Line, Col: p.Col + 1}
	b.record(InsertCharOp{Pos: p, Char: r})
	b.textChanged()
}

// InsertText inserts s rune by rune, as typed. "\r\n" and "\r" are
// normalized to "\n". An empty s only deletes an active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, r := range s {
		b.InsertChar(r)
	}
}

// InsertNewline splits the current line at the cursor. The cursor moves to
// column 0 of the new line. An active selection is deleted first.
func (b *Buffer) InsertNewline() {
	if b.HasSelection() {
		b.DeleteSelection()
	}
	b.ensureValid()

	p := b.cursor
	b.splitLine(p)
	b.cursor = Pos{Line: p.Line + 1, Col: 0}
	b.record(InsertNewlineOp{Pos: p})
	b.textChanged()
}

// DeleteChar applies backspace semantics. An active selection is deleted
// instead. At column 0 the line is merged onto the previous one. At the
// start of the document it does nothing.
func (b *Buffer) DeleteChar() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	b.ensureValid()

	line, col := b.cursor.Line, b.cursor.Col
	switch {
	case col > 0:
		p := Pos{Line: line, Col: col - 1}
		r, ok := b.removeRuneAt(p)
		if !ok {
			return
		}
		b.cursor = p
		b.record(DeleteCharOp{Pos: p, Char: r})
	case line > 0:
		p := Pos{Line: line - 1, Col: len(b.lines[line-1])}
		tail, ok := b.joinLines(line - 1)
		if !ok {
			return
		}
		b.cursor = p
		b.record(DeleteNewlineOp{Pos: p, Tail: string(tail)})
	default:
		return
	}
	b.textChanged()
}

func (b *Buffer) runeAt(p Pos) (rune, bool) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, false
	}
	line := b.lines[p.Line]
	if p.Col < 0 || p.Col >= len(line) {
		return 0, false
	}
	return line[p.Col], true
}

func (b *Buffer) insertRuneAt(p Pos, r rune) {
	line := b.lines[p.Line]
	col := clampInt(p.Col, 0, len(line))
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[p.Line] = next
}

func (b *Buffer) removeRuneAt(p Pos) (rune, bool) {
	r, ok := b.runeAt(p)
	if !ok {
		return 0, false
	}
	line := b.lines[p.Line]
	next := make([]rune, 0, len(line)-1)
	next = append(next, line[:p.Col]...)
	next = append(next, line[p.Col+1:]...)
	b.lines[p.Line] = next
	return r, true
}

// splitLine moves everything right of p onto a new line after p.Line.
func (b *Buffer) splitLine(p Pos) {
	line := b.lines[p.Line]
	col := clampInt(p.Col, 0, len(line))
	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	out := make([][]rune, 0, len(b.lines)+1)
	out = append(out, b.lines[:p.Line]...)
	out = append(out, head, tail)
	out = append(out, b.lines[p.Line+1:]...)
	b.lines = out
}

// joinLines appends line+1 onto line and removes it. It returns the joined
// fragment.
func (b *Buffer) joinLines(line int) ([]rune, bool) {
	if line < 0 || line+1 >= len(b.lines) {
		return nil, false
	}
	tail := b.lines[line+1]
	joined := make([]rune, 0, len(b.lines[line])+len(tail))
	joined = append(joined, b.lines[line]...)
	joined = append(joined, tail...)
	b.lines[line] = joined
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
	return tail, true
}

// removeRange deletes r (already clamped and normalized) and returns the
// removed text.
func (b *Buffer) removeRange(r Range) string {
	removed := textForRange(b.lines, r)
	prefix := b.lines[r.Start.Line][:r.Start.Col]
	suffix := b.lines[r.End.Line][r.End.Col:]

	joined := make([]rune, 0, len(prefix)+len(suffix))
	joined = append(joined, prefix...)
	joined = append(joined, suffix...)

	out := make([][]rune, 0, len(b.lines)-(r.End.Line-r.Start.Line))
	out = append(out, b.lines[:r.Start.Line]...)
	out = append(out, joined)
	out = append(out, b.lines[r.End.Line+1:]...)
	b.lines = out
	return removed
}

// insertTextAt inserts text (which may contain '\n') at p and returns the
// position just after it.
func (b *Buffer) insertTextAt(p Pos, text string) Pos {
	parts := splitLines(text)
	line := b.lines[p.Line]
	col := clampInt(p.Col, 0, len(line))
	prefix := append([]rune(nil), line[:col]...)
	suffix := append([]rune(nil), line[col:]...)

	repl := make([][]rune, 0, len(parts))
	for i, part := range parts {
		var l []rune
		if i == 0 {
			l = append(l, prefix...)
		}
		l = append(l, part...)
		repl = append(repl, l)
	}
	last := len(repl) - 1
	end := Pos{Line: p.Line + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)+last)
	out = append(out, b.lines[:p.Line]...)
	out = append(out, repl...)
	out = append(out, b.lines[p.Line+1:]...)
	b.lines = out
	return end
}

func textForRange(lines [][]rune, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Line == r.End.Line {
		return string(lines[r.Start.Line][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for line := r.Start.Line; line <= r.End.Line; line++ {
		if line > r.Start.Line {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[line])
		if line == r.Start.Line {
			from = r.Start.Col
		}
		if line == r.End.Line {
			to = r.End.Col
		}
		sb.WriteString(string(lines[line][from:to]))
	}
	return sb.String()
}

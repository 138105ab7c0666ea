package buffer

// EditOp is one recorded, reversible buffer mutation. The concrete types are
// InsertCharOp, DeleteCharOp, InsertNewlineOp, DeleteNewlineOp and
// DeleteRangeOp.
type EditOp interface {
	editOp()
}

// InsertCharOp records Char inserted at Pos.
type InsertCharOp struct {
	Pos  Pos
	Char rune
}

// DeleteCharOp records Char removed from Pos.
type DeleteCharOp struct {
	Pos  Pos
	Char rune
}

// InsertNewlineOp records a line split at Pos.
type InsertNewlineOp struct {
	Pos Pos
}

// DeleteNewlineOp records the line after Pos.Line merged onto it at Pos.Col.
// Tail is the merged fragment.
type DeleteNewlineOp struct {
	Pos  Pos
	Tail string
}

// DeleteRangeOp records Text (possibly multi-line) removed at Start.
type DeleteRangeOp struct {
	Start Pos
	Text  string
}

func (InsertCharOp) editOp()    {}
func (DeleteCharOp) editOp()    {}
func (InsertNewlineOp) editOp() {}
func (DeleteNewlineOp) editOp() {}
func (DeleteRangeOp) editOp()   {}

type history struct {
	undo []EditOp
	redo []EditOp
}

func (b *Buffer) record(op EditOp) {
	b.hist.redo = nil
	b.pushUndo(op)
}

func (b *Buffer) pushUndo(op EditOp) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, op)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// History returns a copy of the undo history, oldest first.
func (b *Buffer) History() []EditOp {
	return append([]EditOp(nil), b.hist.undo...)
}

// Undo pops the most recent operation and applies its inverse. It reports
// false only when the history is empty. A step whose recorded text no longer
// matches the document is dropped without touching the text.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	op := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]

	if b.revert(op) {
		b.hist.redo = append(b.hist.redo, op)
		b.textChanged()
		return true
	}
	b.hasAnchor = false
	b.version++
	return true
}

// Redo re-applies the most recently undone operation. Any new edit clears
// the redo history.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	op := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]

	if b.reapply(op) {
		b.pushUndo(op)
		b.textChanged()
		return true
	}
	b.hasAnchor = false
	b.version++
	return true
}

// revert applies the inverse of op. The cursor is placed at the position op
// recorded.
func (b *Buffer) revert(op EditOp) bool {
	switch op := op.(type) {
	case InsertCharOp:
		if r, ok := b.runeAt(op.Pos); !ok || r != op.Char {
			return false
		}
		b.removeRuneAt(op.Pos)
		b.cursor = op.Pos
	case DeleteCharOp:
		if !b.validPos(op.Pos) {
			return false
		}
		b.insertRuneAt(op.Pos, op.Char)
		b.cursor = Pos{Line: op.Pos.Line, Col: op.Pos.Col + 1}
	case InsertNewlineOp:
		if !b.validPos(op.Pos) || op.Pos.Line+1 >= len(b.lines) {
			return false
		}
		b.joinLines(op.Pos.Line)
		b.cursor = op.Pos
	case DeleteNewlineOp:
		if !b.validPos(op.Pos) {
			return false
		}
		b.splitLine(op.Pos)
		b.cursor = op.Pos
	case DeleteRangeOp:
		if !b.validPos(op.Start) {
			return false
		}
		b.insertTextAt(op.Start, op.Text)
		b.cursor = op.Start
	default:
		return false
	}
	return true
}

// reapply applies op forward again. The cursor is placed where the original
// edit left it.
func (b *Buffer) reapply(op EditOp) bool {
	switch op := op.(type) {
	case InsertCharOp:
		if !b.validPos(op.Pos) {
			return false
		}
		b.insertRuneAt(op.Pos, op.Char)
		b.cursor = Pos{Line: op.Pos.Line, Col: op.Pos.Col + 1}
	case DeleteCharOp:
		if r, ok := b.runeAt(op.Pos); !ok || r != op.Char {
			return false
		}
		b.removeRuneAt(op.Pos)
		b.cursor = op.Pos
	case InsertNewlineOp:
		if !b.validPos(op.Pos) {
			return false
		}
		b.splitLine(op.Pos)
		b.cursor = Pos{Line: op.Pos.Line + 1, Col: 0}
	case DeleteNewlineOp:
		if !b.validPos(op.Pos) || op.Pos.Col != len(b.lines[op.Pos.Line]) {
			return false
		}
		if _, ok := b.joinLines(op.Pos.Line); !ok {
			return false
		}
		b.cursor = op.Pos
	case DeleteRangeOp:
		if !b.validPos(op.Start) {
			return false
		}
		end, ok := b.endOf(op.Start, op.Text)
		if !ok {
			return false
		}
		r := Range{Start: op.Start, End: end}
		if textForRange(b.lines, r) != op.Text {
			return false
		}
		b.removeRange(r)
		b.cursor = op.Start
	default:
		return false
	}
	return true
}

// endOf returns the position text would end at if it started at start, when
// that position lies inside the document.
func (b *Buffer) endOf(start Pos, text string) (Pos, bool) {
	parts := splitLines(text)
	last := len(parts) - 1
	end := Pos{Line: start.Line + last, Col: len(parts[last])}
	if last == 0 {
		end.Col += start.Col
	}
	return end, b.validPos(end)
}

package buffer

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, anchors a selection at the old cursor; if false clears it
}

// Move moves the cursor. With Extend set, an anchor is dropped at the
// current cursor unless one already exists, and stays fixed while the cursor
// moves. Without Extend the selection is cleared.
func (b *Buffer) Move(m Move) {
	b.ensureValid()
	prevCursor, prevAnchor, prevHas := b.cursor, b.anchor, b.hasAnchor

	if m.Extend {
		if !b.hasAnchor {
			b.anchor = b.cursor
			b.hasAnchor = true
		}
	} else {
		b.hasAnchor = false
	}
	b.cursor = b.clampPos(b.moveCursor(b.cursor, m))

	if b.cursor != prevCursor || b.hasAnchor != prevHas || (b.hasAnchor && b.anchor != prevAnchor) {
		b.version++
	}
}

func (b *Buffer) MoveLeft(extend bool)  { b.Move(Move{Unit: MoveChar, Dir: DirLeft, Extend: extend}) }
func (b *Buffer) MoveRight(extend bool) { b.Move(Move{Unit: MoveChar, Dir: DirRight, Extend: extend}) }
func (b *Buffer) MoveUp(extend bool)    { b.Move(Move{Unit: MoveChar, Dir: DirUp, Extend: extend}) }
func (b *Buffer) MoveDown(extend bool)  { b.Move(Move{Unit: MoveChar, Dir: DirDown, Extend: extend}) }
func (b *Buffer) MoveHome(extend bool)  { b.Move(Move{Unit: MoveLine, Dir: DirHome, Extend: extend}) }
func (b *Buffer) MoveEnd(extend bool)   { b.Move(Move{Unit: MoveLine, Dir: DirEnd, Extend: extend}) }

func (b *Buffer) MoveWordLeft(extend bool) {
	b.Move(Move{Unit: MoveWord, Dir: DirLeft, Extend: extend})
}

func (b *Buffer) MoveWordRight(extend bool) {
	b.Move(Move{Unit: MoveWord, Dir: DirRight, Extend: extend})
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveChar:
		return b.moveChar(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveChar(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Col
	lastLine := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Line: line, Col: col - 1}
		}
		if line == 0 {
			return p
		}
		return Pos{Line: line - 1, Col: len(b.lines[line-1])}
	case DirRight:
		if col < len(b.lines[line]) {
			return Pos{Line: line, Col: col + 1}
		}
		if line == lastLine {
			return p
		}
		return Pos{Line: line + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Col
	lastLine := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Line: line, Col: 0}
	case DirEnd:
		return Pos{Line: line, Col: len(b.lines[line])}
	case DirUp:
		if line == 0 {
			return p
		}
		return Pos{Line: line - 1, Col: min(col, len(b.lines[line-1]))}
	case DirDown:
		if line == lastLine {
			return p
		}
		return Pos{Line: line + 1, Col: min(col, len(b.lines[line+1]))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastLine := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Line: lastLine, Col: len(b.lines[lastLine])}
	default:
		return p
	}
}

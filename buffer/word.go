package buffer

import "unicode"

// IsWordRune reports whether r belongs to a word: letters, digits and '_'.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Col

	switch dir {
	case DirLeft:
		if col == 0 {
			if line == 0 {
				return p
			}
			return Pos{Line: line - 1, Col: len(b.lines[line-1])}
		}
		return Pos{Line: line, Col: prevWordBoundary(b.lines[line], col)}
	case DirRight:
		if col >= len(b.lines[line]) {
			if line == len(b.lines)-1 {
				return p
			}
			return Pos{Line: line + 1, Col: 0}
		}
		return Pos{Line: line, Col: nextWordBoundary(b.lines[line], col)}
	default:
		return b.moveLine(p, dir)
	}
}

// prevWordBoundary skips whitespace left of col, then a run of word runes.
// Punctuation stops it.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && IsWordRune(line[i-1]) {
		i--
	}
	return i
}

// nextWordBoundary skips a run of word runes, then whitespace. Punctuation
// stops it.
func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && IsWordRune(line[i]) {
		i++
	}
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	return i
}

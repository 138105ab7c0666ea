package buffer

// Pos points into the document by (line, col) in runes.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open span in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// Rect is a screen area in terminal cells. It includes the border cells
// drawn around a field.
type Rect struct {
	X, Y          int
	Width, Height int
}

// BorderCells is the number of columns (and rows) a field border reserves.
const BorderCells = 2

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Line < lineCount (with lineCount treated as at least 1)
// - 0 <= Col <= lineLen(Line)
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		lineCount = 1
	}

	line := clampInt(p.Line, 0, lineCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(line)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	return Pos{Line: line, Col: clampInt(p.Col, 0, maxCol)}
}

func ClampRange(r Range, lineCount int, lineLen func(line int) int) Range {
	return Range{
		Start: ClampPos(r.Start, lineCount, lineLen),
		End:   ClampPos(r.End, lineCount, lineLen),
	}
}

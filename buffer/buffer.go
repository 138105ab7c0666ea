package buffer

import "strings"

// DefaultHistoryLimit is the undo capacity used when Options.HistoryLimit is 0.
const DefaultHistoryLimit = 100

type Options struct {
	// HistoryLimit bounds the undo history; the oldest operation is evicted
	// once it is exceeded. 0 selects DefaultHistoryLimit, a negative value
	// disables history.
	HistoryLimit int
}

// Buffer is the document state of one field: lines, cursor, selection
// anchor, undo history and scroll offsets.
type Buffer struct {
	lines [][]rune

	cursor    Pos
	anchor    Pos
	hasAnchor bool

	scroll ScrollState

	opt  Options
	hist history

	version     uint64
	textVersion uint64
}

// New returns an empty buffer: one empty line, cursor at (0, 0).
func New(opt Options) *Buffer {
	return FromText("", opt)
}

// FromText splits text on '\n' and places the cursor at the end of the last
// line. Carriage returns are kept as regular runes.
func FromText(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	b := &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
	last := len(b.lines) - 1
	b.cursor = Pos{Line: last, Col: len(b.lines[last])}
	return b
}

// Text joins all lines with a single '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (b *Buffer) LineLen(i int) int { return b.lineLen(i) }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped into the document. The selection
// anchor is left untouched.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Version changes whenever text, cursor, selection or scroll state changes.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Options returns the effective options.
func (b *Buffer) Options() Options { return b.opt }

func (b *Buffer) lineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) validPos(p Pos) bool {
	return p.Line >= 0 && p.Line < len(b.lines) && p.Col >= 0 && p.Col <= len(b.lines[p.Line])
}

// ensureValid restores the structural invariants: at least one line, cursor
// and anchor inside the document.
func (b *Buffer) ensureValid() {
	if len(b.lines) == 0 {
		b.lines = [][]rune{nil}
	}
	b.cursor = b.clampPos(b.cursor)
	if b.hasAnchor {
		b.anchor = b.clampPos(b.anchor)
	}
}

func (b *Buffer) textChanged() {
	b.hasAnchor = false
	b.ensureValid()
	b.version++
	b.textVersion++
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}

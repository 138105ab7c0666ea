package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tnj/buffer"
	"github.com/iw2rmb/tnj/internal/cellwidth"
)

// View renders the field as a bordered box of exactly Width x Height cells.
// Sizes below the border leave nothing to draw.
func (m Model) View() string {
	if m.buf == nil || m.width < buffer.BorderCells || m.height < buffer.BorderCells {
		return ""
	}

	st := m.cfg.Style
	borderStyle := st.Border
	if m.focused {
		borderStyle = st.BorderActive
	}
	border := lipgloss.RoundedBorder()
	inner := m.width - buffer.BorderCells
	gw := m.gutterWidth()
	textCells := max(inner-gw, 0)
	vh := m.viewportHeight()

	start, rows := m.buf.VisibleLines(vh, m.textWidth())

	cursorRow, cursorCol := -1, -1
	area := buffer.Rect{X: gw, Width: m.textWidth(), Height: m.height}
	if x, y, ok := m.buf.CursorScreenPosition(area, vh); ok && m.focused {
		cursorRow = y - 1
		cursorCol = x - gw - 1
	}

	sel, selOK := m.buf.SelectionBounds()
	selOK = selOK && !sel.IsEmpty()

	out := make([]string, 0, m.height)
	out = append(out, m.renderTop(borderStyle, border, inner))
	for i := 0; i < vh; i++ {
		var sb strings.Builder
		sb.WriteString(borderStyle.Render(border.Left))

		line := start + i
		hasLine := i < len(rows)
		if gw > 0 {
			sb.WriteString(m.renderGutter(line, hasLine, gw))
		}

		text := ""
		if hasLine {
			text = rows[i]
		}
		col := -1
		if i == cursorRow {
			col = cursorCol
		}
		sb.WriteString(m.renderRow(line, text, col, sel, selOK, textCells))

		sb.WriteString(borderStyle.Render(border.Right))
		out = append(out, sb.String())
	}
	out = append(out, borderStyle.Render(border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight))
	return strings.Join(out, "\n")
}

func (m Model) renderTop(borderStyle lipgloss.Style, border lipgloss.Border, inner int) string {
	title := ""
	if m.cfg.Title != "" {
		title = cellwidth.Truncate(" "+m.cfg.Title+" ", inner)
	}
	fill := strings.Repeat(border.Top, max(inner-cellwidth.String(title), 0))

	var sb strings.Builder
	sb.WriteString(borderStyle.Render(border.TopLeft))
	if title != "" {
		sb.WriteString(m.cfg.Style.Title.Render(title))
	}
	sb.WriteString(borderStyle.Render(fill + border.TopRight))
	return sb.String()
}

func (m Model) renderGutter(line int, hasLine bool, gw int) string {
	if !hasLine {
		return m.cfg.Style.Gutter.Render(strings.Repeat(" ", gw))
	}
	num := fmt.Sprintf("%*d ", gw-1, line+1)
	if line == m.buf.Cursor().Line {
		return m.cfg.Style.LineNumActive.Render(num)
	}
	return m.cfg.Style.LineNum.Render(num)
}

// renderRow draws one visible slice of a document line. cursorCol is the
// cursor's column within text, or -1. The scroll offset counts runes, so a
// row of wide runes can be cut before the cursor; leading runes are dropped
// until the cursor cell fits.
func (m Model) renderRow(line int, text string, cursorCol int, sel buffer.Range, selOK bool, cells int) string {
	st := m.cfg.Style
	scrollCol := m.buf.Scroll().Col
	runes := []rune(text)
	skip := leadingOverflow(runes, cursorCol, cells)

	var sb strings.Builder
	used := 0
	j := skip
	for ; j < len(runes); j++ {
		cell := cellwidth.Display(string(runes[j]))
		w := cellwidth.Cluster(cell)
		if used+w > cells {
			break
		}
		pos := buffer.Pos{Line: line, Col: scrollCol + j}
		switch {
		case j == cursorCol:
			sb.WriteString(st.Cursor.Render(cell))
		case selOK && inRange(pos, sel):
			sb.WriteString(st.Selection.Render(cell))
		default:
			sb.WriteString(st.Text.Render(cell))
		}
		used += w
	}
	if cursorCol >= j && used < cells {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}
	if used < cells {
		sb.WriteString(strings.Repeat(" ", cells-used))
	}
	return sb.String()
}

// leadingOverflow returns how many leading runes must be dropped for the
// cursor cell at cursorCol to fit in cells.
func leadingOverflow(runes []rune, cursorCol, cells int) int {
	if cursorCol < 0 {
		return 0
	}
	width := func(r rune) int { return cellwidth.Cluster(cellwidth.Display(string(r))) }

	need := 1
	if cursorCol < len(runes) {
		need = width(runes[cursorCol])
	}
	for _, r := range runes[:min(cursorCol, len(runes))] {
		need += width(r)
	}
	skip := 0
	for need > cells && skip < min(cursorCol, len(runes)) {
		need -= width(runes[skip])
		skip++
	}
	return skip
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(m.buf.LineCount())) + 1
}

func inRange(p buffer.Pos, r buffer.Range) bool {
	return buffer.ComparePos(p, r.Start) >= 0 && buffer.ComparePos(p, r.End) < 0
}

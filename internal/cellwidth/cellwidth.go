// Package cellwidth measures text in terminal cells and cuts it on grapheme
// cluster boundaries.
package cellwidth

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Cluster returns the cell width of one grapheme cluster. Zero-width results
// from runewidth fall back to uniseg, which knows emoji sequences.
func Cluster(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// String returns the cell width of text.
func String(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += Cluster(Display(c))
	}
	return w
}

// Display maps clusters that have no sensible terminal rendering (tabs and
// other control characters) to a single space.
func Display(cluster string) string {
	for _, r := range cluster {
		if unicode.IsControl(r) {
			return " "
		}
	}
	return cluster
}

// Truncate cuts text to at most width cells without splitting a cluster.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		c = Display(c)
		w := Cluster(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// Pad truncates text to width cells and right-pads it with spaces.
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(text, width)
	if n := width - String(text); n > 0 {
		text += strings.Repeat(" ", n)
	}
	return text
}

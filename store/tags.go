package store

import "strings"

// ParseTags splits a comma separated tag list, trimming blanks and dropping
// empty entries.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeTags returns the canonical stored form: trimmed, first occurrence
// wins on duplicates, joined with ", ".
func NormalizeTags(s string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range ParseTags(s) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return strings.Join(out, ", ")
}

// FormatTags renders tags as "[a] [b]" for list rows.
func FormatTags(s string) string {
	tags := ParseTags(s)
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, "] [") + "]"
}

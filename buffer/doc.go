// Package buffer implements the in-memory text buffer behind every editable
// field in tnj.
//
// Coordinates are 0-based (Line, Col) where Col counts runes (Unicode scalar
// values) of that line. Ranges are half-open: [Start, End).
//
// A Buffer is owned by exactly one caller and is not safe for concurrent use.
// No operation returns an error: out-of-range positions are clamped and undo
// steps that no longer match the document are skipped.
package buffer

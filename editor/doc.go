// Package editor provides a Bubble Tea text field backed by the buffer
// package.
//
// A Model owns one buffer and is responsible for key handling, scroll
// follow, bordered rendering with selection and cursor, clipboard
// integration and change events. Forms compose several Models.
package editor

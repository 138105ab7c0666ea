package form

import (
	"github.com/iw2rmb/tnj/store"
)

// ValidationError names the field that blocks a save.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// Task builds the task described by the form. Text fields are trimmed and
// tags normalized. It fails with a *ValidationError when the title is empty
// or the due date is not YYYY-MM-DD.
func (f Form) Task() (store.Task, error) {
	t := store.Task{
		ID:          f.id,
		Title:       f.value(FieldTitle),
		Description: f.value(FieldDescription),
		DueDate:     f.value(FieldDueDate),
		Tags:        store.NormalizeTags(f.value(FieldTags)),
		Status:      f.status,
		Order:       f.order,
		NotebookID:  f.notebookID,
	}
	if t.Title == "" {
		return store.Task{}, invalid(FieldTitle, "Title is required")
	}
	if t.DueDate != "" && !store.ValidDate(t.DueDate) {
		return store.Task{}, invalid(FieldDueDate, "Due date must be in YYYY-MM-DD format")
	}
	return t, nil
}

func (f Form) Note() (store.Note, error) {
	n := store.Note{
		ID:         f.id,
		Title:      f.value(FieldTitle),
		Content:    f.value(FieldContent),
		Tags:       store.NormalizeTags(f.value(FieldTags)),
		NotebookID: f.notebookID,
	}
	if n.Title == "" {
		return store.Note{}, invalid(FieldTitle, "Title is required")
	}
	return n, nil
}

// Journal builds the journal entry described by the form. The date is
// required, the title is optional.
func (f Form) Journal() (store.JournalEntry, error) {
	j := store.JournalEntry{
		ID:         f.id,
		Date:       f.value(FieldDate),
		Title:      f.value(FieldTitle),
		Content:    f.value(FieldContent),
		Tags:       store.NormalizeTags(f.value(FieldTags)),
		NotebookID: f.notebookID,
	}
	if j.Date == "" {
		return store.JournalEntry{}, invalid(FieldDate, "Date is required")
	}
	if !store.ValidDate(j.Date) {
		return store.JournalEntry{}, invalid(FieldDate, "Date must be in YYYY-MM-DD format")
	}
	return j, nil
}

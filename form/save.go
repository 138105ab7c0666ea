package form

import (
	"context"
	"fmt"

	"github.com/iw2rmb/tnj/store"
)

// Saver is the part of *store.Store a form writes through.
type Saver interface {
	InsertTask(ctx context.Context, t store.Task) (int64, error)
	UpdateTask(ctx context.Context, t store.Task) error
	InsertNote(ctx context.Context, n store.Note) (int64, error)
	UpdateNote(ctx context.Context, n store.Note) error
	InsertJournal(ctx context.Context, j store.JournalEntry) (int64, error)
	UpdateJournal(ctx context.Context, j store.JournalEntry) error
}

var _ Saver = (*store.Store)(nil)

// Save inserts the record when it is new and updates it otherwise. On
// success the returned form carries the record id and is clean.
func (f Form) Save(ctx context.Context, s Saver) (Form, error) {
	id := f.id
	var err error
	switch f.kind {
	case KindTask:
		var t store.Task
		if t, err = f.Task(); err != nil {
			return f, err
		}
		if id == 0 {
			id, err = s.InsertTask(ctx, t)
		} else {
			err = s.UpdateTask(ctx, t)
		}
	case KindNote:
		var n store.Note
		if n, err = f.Note(); err != nil {
			return f, err
		}
		if id == 0 {
			id, err = s.InsertNote(ctx, n)
		} else {
			err = s.UpdateNote(ctx, n)
		}
	case KindJournal:
		var j store.JournalEntry
		if j, err = f.Journal(); err != nil {
			return f, err
		}
		if id == 0 {
			id, err = s.InsertJournal(ctx, j)
		} else {
			err = s.UpdateJournal(ctx, j)
		}
	default:
		return f, fmt.Errorf("save: unknown form kind %d", f.kind)
	}
	if err != nil {
		return f, fmt.Errorf("save %s: %w", f.kind, err)
	}
	return f.Saved(id), nil
}

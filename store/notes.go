package store

import (
	"context"
	"database/sql"
	"fmt"
)

const noteColumns = "id, title, content, tags, archived, notebook_id, created_at, updated_at"

func scanNote(row interface{ Scan(...any) error }) (Note, error) {
	var (
		n                    Note
		content, tags        sql.NullString
		archived             int
		notebook             sql.NullInt64
		createdAt, updatedAt string
	)
	if err := row.Scan(&n.ID, &n.Title, &content, &tags, &archived, &notebook, &createdAt, &updatedAt); err != nil {
		return Note{}, err
	}
	n.Content = content.String
	n.Tags = tags.String
	n.Archived = archived != 0
	n.NotebookID = int64Ptr(notebook)
	n.CreatedAt = parseTime(createdAt)
	n.UpdatedAt = parseTime(updatedAt)
	return n, nil
}

func (s *Store) InsertNote(ctx context.Context, n Note) (int64, error) {
	now := s.timestamp()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, tags, archived, notebook_id, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?)`,
		n.Title, nullString(n.Content), nullString(NormalizeTags(n.Tags)), nullInt64(n.NotebookID), now, now)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetNote(ctx context.Context, id int64) (Note, error) {
	n, err := scanNote(s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id))
	if err != nil {
		return Note{}, notFound(err, "note", id)
	}
	return n, nil
}

func (s *Store) UpdateNote(ctx context.Context, n Note) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, tags = ?, notebook_id = ?, updated_at = ? WHERE id = ?",
		n.Title, nullString(n.Content), nullString(NormalizeTags(n.Tags)), nullInt64(n.NotebookID), s.timestamp(), n.ID)
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}
	return checkAffected(res, "note", n.ID)
}

func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return checkAffected(res, "note", id)
}

func (s *Store) ArchiveNote(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE notes SET archived = 1, updated_at = ? WHERE id = ?", s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("archive note %d: %w", id, err)
	}
	return checkAffected(res, "note", id)
}

// ListNotes returns the unarchived notes of a notebook (nil for notes
// outside any notebook), newest first.
func (s *Store) ListNotes(ctx context.Context, notebookID *int64) ([]Note, error) {
	where, args := notebookClause(notebookID)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE archived = 0 AND "+where+" ORDER BY created_at DESC, id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

package store

import (
	"context"
	"database/sql"
	"fmt"
)

const journalColumns = "id, date, title, content, tags, archived, notebook_id, created_at, updated_at"

func scanJournal(row interface{ Scan(...any) error }) (JournalEntry, error) {
	var (
		j                    JournalEntry
		title, content, tags sql.NullString
		archived             int
		notebook             sql.NullInt64
		createdAt, updatedAt string
	)
	if err := row.Scan(&j.ID, &j.Date, &title, &content, &tags, &archived, &notebook, &createdAt, &updatedAt); err != nil {
		return JournalEntry{}, err
	}
	j.Title = title.String
	j.Content = content.String
	j.Tags = tags.String
	j.Archived = archived != 0
	j.NotebookID = int64Ptr(notebook)
	j.CreatedAt = parseTime(createdAt)
	j.UpdatedAt = parseTime(updatedAt)
	return j, nil
}

// InsertJournal stores j and returns its new id. An empty Date becomes today.
func (s *Store) InsertJournal(ctx context.Context, j JournalEntry) (int64, error) {
	if j.Date == "" {
		j.Date = s.now().Format(DateLayout)
	}
	now := s.timestamp()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO journals (date, title, content, tags, archived, notebook_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?, ?)`,
		j.Date, nullString(j.Title), nullString(j.Content), nullString(NormalizeTags(j.Tags)),
		nullInt64(j.NotebookID), now, now)
	if err != nil {
		return 0, fmt.Errorf("insert journal: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetJournal(ctx context.Context, id int64) (JournalEntry, error) {
	j, err := scanJournal(s.db.QueryRowContext(ctx, "SELECT "+journalColumns+" FROM journals WHERE id = ?", id))
	if err != nil {
		return JournalEntry{}, notFound(err, "journal", id)
	}
	return j, nil
}

func (s *Store) UpdateJournal(ctx context.Context, j JournalEntry) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE journals SET date = ?, title = ?, content = ?, tags = ?, notebook_id = ?, updated_at = ? WHERE id = ?",
		j.Date, nullString(j.Title), nullString(j.Content), nullString(NormalizeTags(j.Tags)),
		nullInt64(j.NotebookID), s.timestamp(), j.ID)
	if err != nil {
		return fmt.Errorf("update journal %d: %w", j.ID, err)
	}
	return checkAffected(res, "journal", j.ID)
}

func (s *Store) DeleteJournal(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM journals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete journal %d: %w", id, err)
	}
	return checkAffected(res, "journal", id)
}

func (s *Store) ArchiveJournal(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE journals SET archived = 1, updated_at = ? WHERE id = ?", s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("archive journal %d: %w", id, err)
	}
	return checkAffected(res, "journal", id)
}

// ListJournals returns the unarchived entries of a notebook (nil for
// entries outside any notebook), latest date first.
func (s *Store) ListJournals(ctx context.Context, notebookID *int64) ([]JournalEntry, error) {
	where, args := notebookClause(notebookID)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+journalColumns+" FROM journals WHERE archived = 0 AND "+where+" ORDER BY date DESC, id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("list journals: %w", err)
		}
		entries = append(entries, j)
	}
	return entries, rows.Err()
}

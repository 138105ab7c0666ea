package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

func scanNotebook(row interface{ Scan(...any) error }) (Notebook, error) {
	var (
		nb                   Notebook
		createdAt, updatedAt string
	)
	if err := row.Scan(&nb.ID, &nb.Name, &createdAt, &updatedAt); err != nil {
		return Notebook{}, err
	}
	nb.CreatedAt = parseTime(createdAt)
	nb.UpdatedAt = parseTime(updatedAt)
	return nb, nil
}

func (s *Store) InsertNotebook(ctx context.Context, name string) (int64, error) {
	now := s.timestamp()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notebooks (name, created_at, updated_at) VALUES (?, ?, ?)", name, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert notebook: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetNotebook(ctx context.Context, id int64) (Notebook, error) {
	nb, err := scanNotebook(s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM notebooks WHERE id = ?", id))
	if err != nil {
		return Notebook{}, notFound(err, "notebook", id)
	}
	return nb, nil
}

func (s *Store) RenameNotebook(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notebooks SET name = ?, updated_at = ? WHERE id = ?", name, s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("rename notebook %d: %w", id, err)
	}
	return checkAffected(res, "notebook", id)
}

// ListNotebooks returns all notebooks sorted by name.
func (s *Store) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM notebooks ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	defer rows.Close()

	var notebooks []Notebook
	for rows.Next() {
		nb, err := scanNotebook(rows)
		if err != nil {
			return nil, fmt.Errorf("list notebooks: %w", err)
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, rows.Err()
}

// DefaultNotebook returns the first notebook by name. ok is false when
// there are none.
func (s *Store) DefaultNotebook(ctx context.Context) (nb Notebook, ok bool, err error) {
	nb, err = scanNotebook(s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM notebooks ORDER BY name ASC, id ASC LIMIT 1"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Notebook{}, false, nil
		}
		return Notebook{}, false, fmt.Errorf("default notebook: %w", err)
	}
	return nb, true, nil
}

// DeleteNotebook removes a notebook. Its items are kept and moved out of
// any notebook in the same transaction.
func (s *Store) DeleteNotebook(ctx context.Context, id int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete notebook %d: %w", id, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range itemTables {
		if _, err = tx.ExecContext(ctx, "UPDATE "+table+" SET notebook_id = NULL WHERE notebook_id = ?", id); err != nil {
			return fmt.Errorf("delete notebook %d: detach %s: %w", id, table, err)
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM notebooks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete notebook %d: %w", id, err)
	}
	if err = checkAffected(res, "notebook", id); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("delete notebook %d: commit: %w", id, err)
	}
	log.Printf("Store: deleted notebook %d", id)
	return nil
}

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// tick makes every timestamp one second later than the previous one.
func tick(s *Store) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	s.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestOpen_CreatesDirectoryAndIsReopenable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	id, err := s.InsertNote(ctx, Note{Title: "kept"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "kept", n.Title)
}

func TestOpen_MigratesNotebookColumn(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT,
		tags TEXT,
		archived INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (title, created_at, updated_at) VALUES ('legacy', '2023-01-01 00:00:00', '2023-01-01 00:00:00')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	notes, err := s.ListNotes(ctx, nil)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "legacy", notes[0].Title)
	assert.Nil(t, notes[0].NotebookID)
	assert.Equal(t, "2023-01-01 00:00:00", notes[0].CreatedAt.Format(timeLayout))
}

func TestNotes_CRUD(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tick(s)

	id, err := s.InsertNote(ctx, Note{Title: "Groceries", Content: "milk\neggs", Tags: " home, food ,home,"})
	require.NoError(t, err)

	n, err := s.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "milk\neggs", n.Content)
	assert.Equal(t, "home, food", n.Tags)
	assert.False(t, n.Archived)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)

	n.Content = "bread"
	require.NoError(t, s.UpdateNote(ctx, n))
	got, err := s.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bread", got.Content)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	require.NoError(t, s.DeleteNote(ctx, id))
	_, err = s.GetNote(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteNote(ctx, id), ErrNotFound)
	assert.ErrorIs(t, s.UpdateNote(ctx, Note{ID: id, Title: "x"}), ErrNotFound)
}

func TestListNotes_NewestFirstAndArchivedHidden(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tick(s)

	first, err := s.InsertNote(ctx, Note{Title: "first"})
	require.NoError(t, err)
	_, err = s.InsertNote(ctx, Note{Title: "second"})
	require.NoError(t, err)
	third, err := s.InsertNote(ctx, Note{Title: "third"})
	require.NoError(t, err)

	require.NoError(t, s.ArchiveNote(ctx, third))
	assert.ErrorIs(t, s.ArchiveNote(ctx, 999), ErrNotFound)

	notes, err := s.ListNotes(ctx, nil)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Title)
	assert.Equal(t, first, notes[1].ID)

	archived, err := s.GetNote(ctx, third)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
}

func TestTasks_OrderAndStatus(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	maxOrder, err := s.MaxTaskOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), maxOrder)

	a, err := s.InsertTask(ctx, Task{Title: "a", DueDate: "2024-03-02"})
	require.NoError(t, err)
	b, err := s.InsertTask(ctx, Task{Title: "b"})
	require.NoError(t, err)
	c, err := s.InsertTask(ctx, Task{Title: "c", Status: StatusDone})
	require.NoError(t, err)

	task, err := s.GetTask(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, int64(1), task.Order)
	assert.Equal(t, "2024-03-02", task.DueDate)

	require.NoError(t, s.UpdateTaskOrder(ctx, c, 0))
	tasks, err := s.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int64{c, a, b}, []int64{tasks[0].ID, tasks[1].ID, tasks[2].ID})

	task.Status = task.Status.Toggle()
	require.NoError(t, s.UpdateTask(ctx, task))
	task, err = s.GetTask(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, task.Status)

	require.NoError(t, s.ArchiveTask(ctx, b))
	require.NoError(t, s.DeleteTask(ctx, c))
	tasks, err = s.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, a, tasks[0].ID)

	maxOrder, err = s.MaxTaskOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), maxOrder, "archived tasks still count")
}

func TestJournals_DefaultDateAndOrdering(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tick(s)

	today, err := s.InsertJournal(ctx, JournalEntry{Content: "sunny"})
	require.NoError(t, err)
	_, err = s.InsertJournal(ctx, JournalEntry{Date: "2023-12-31", Title: "NYE"})
	require.NoError(t, err)

	j, err := s.GetJournal(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", j.Date)
	assert.Equal(t, "", j.Title)

	entries, err := s.ListJournals(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, today, entries[0].ID)
	assert.Equal(t, "NYE", entries[1].Title)

	j.Title = "Friday"
	require.NoError(t, s.UpdateJournal(ctx, j))
	require.NoError(t, s.ArchiveJournal(ctx, today))
	entries, err = s.ListJournals(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, s.DeleteJournal(ctx, today))
	_, err = s.GetJournal(ctx, today)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotebooks_FilterAndDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.DefaultNotebook(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	work, err := s.InsertNotebook(ctx, "work")
	require.NoError(t, err)
	home, err := s.InsertNotebook(ctx, "home")
	require.NoError(t, err)

	nb, ok, err := s.DefaultNotebook(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, home, nb.ID)

	_, err = s.InsertNote(ctx, Note{Title: "standup", NotebookID: &work})
	require.NoError(t, err)
	_, err = s.InsertTask(ctx, Task{Title: "ship", NotebookID: &work})
	require.NoError(t, err)
	_, err = s.InsertNote(ctx, Note{Title: "loose"})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, &work)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "standup", notes[0].Title)
	require.NotNil(t, notes[0].NotebookID)
	assert.Equal(t, work, *notes[0].NotebookID)

	notes, err = s.ListNotes(ctx, nil)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "loose", notes[0].Title)

	require.NoError(t, s.RenameNotebook(ctx, work, "office"))
	got, err := s.GetNotebook(ctx, work)
	require.NoError(t, err)
	assert.Equal(t, "office", got.Name)

	require.NoError(t, s.DeleteNotebook(ctx, work))
	_, err = s.GetNotebook(ctx, work)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteNotebook(ctx, work), ErrNotFound)

	notes, err = s.ListNotes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, notes, 2, "items of a deleted notebook move out of it")
	tasks, err := s.ListTasks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	notebooks, err := s.ListNotebooks(ctx)
	require.NoError(t, err)
	require.Len(t, notebooks, 1)
	assert.Equal(t, "home", notebooks[0].Name)
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, ParseTags(" a ,, b c ,"))
	assert.Nil(t, ParseTags(" , "))
	assert.Equal(t, "a, b", NormalizeTags("a,b, a"))
	assert.Equal(t, "", NormalizeTags(""))
	assert.Equal(t, "[a] [b]", FormatTags("a, b"))
	assert.Equal(t, "", FormatTags(""))
}

func TestValidDateAndToggle(t *testing.T) {
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("tomorrow"))
	assert.Equal(t, StatusDone, StatusTodo.Toggle())
	assert.Equal(t, StatusTodo, StatusDone.Toggle())
}

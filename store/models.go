package store

import "time"

type TaskStatus string

const (
	StatusTodo TaskStatus = "todo"
	StatusDone TaskStatus = "done"
)

// Toggle flips between todo and done.
func (s TaskStatus) Toggle() TaskStatus {
	if s == StatusDone {
		return StatusTodo
	}
	return StatusDone
}

type Task struct {
	ID          int64
	Title       string
	Description string
	// DueDate is YYYY-MM-DD or empty.
	DueDate    string
	Status     TaskStatus
	Tags       string
	Order      int64
	Archived   bool
	NotebookID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Note struct {
	ID         int64
	Title      string
	Content    string
	Tags       string
	Archived   bool
	NotebookID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type JournalEntry struct {
	ID int64
	// Date is YYYY-MM-DD.
	Date       string
	Title      string
	Content    string
	Tags       string
	Archived   bool
	NotebookID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Notebook struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateLayout is the layout of Task.DueDate and JournalEntry.Date.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

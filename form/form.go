// Package form stacks editor fields into a record form for tasks, notes and
// journal entries.
//
// Tab and shift+tab move focus between fields. Enter advances from a
// single-line field and inserts a newline in a multi-line one. All other
// keys go to the focused field.
package form

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tnj/editor"
	"github.com/iw2rmb/tnj/store"
)

type Kind int

const (
	KindTask Kind = iota
	KindNote
	KindJournal
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindNote:
		return "note"
	case KindJournal:
		return "journal"
	default:
		return "unknown"
	}
}

// Field names, also used as box titles and Values keys.
const (
	FieldTitle       = "Title"
	FieldDescription = "Description"
	FieldDueDate     = "Due Date"
	FieldDate        = "Date"
	FieldTags        = "Tags"
	FieldContent     = "Content"
)

// singleLineHeight is one text row plus the border.
const singleLineHeight = 3

// Options configures every field of a form.
type Options struct {
	KeyMap       editor.KeyMap
	Style        editor.Style
	HistoryLimit int
	ShowLineNums bool
	Clipboard    editor.Clipboard
	Nav          NavKeyMap
}

// NavKeyMap moves focus between fields.
type NavKeyMap struct {
	Next, Prev, Advance key.Binding
}

func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Advance: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
	}
}

type fieldSpec struct {
	name      string
	text      string
	multiline bool
}

// Form is a Bubble Tea component. The zero value is not usable; build one
// with NewTaskForm, NewNoteForm or NewJournalForm.
type Form struct {
	kind Kind
	id   int64

	// Carried through unchanged from the record.
	notebookID *int64
	status     store.TaskStatus
	order      int64

	nav     NavKeyMap
	fields  []editor.Model
	initial []string
	focus   int

	width, height int
}

func newForm(kind Kind, id int64, specs []fieldSpec, opts Options) Form {
	if len(opts.Nav.Next.Keys()) == 0 {
		opts.Nav = DefaultNavKeyMap()
	}
	f := Form{kind: kind, id: id, nav: opts.Nav}
	for i, s := range specs {
		m := editor.New(editor.Config{
			Text:         s.text,
			Title:        s.name,
			Multiline:    s.multiline,
			ShowLineNums: opts.ShowLineNums && s.multiline,
			Style:        opts.Style,
			HistoryLimit: opts.HistoryLimit,
			KeyMap:       opts.KeyMap,
			Clipboard:    opts.Clipboard,
		})
		if i != 0 {
			m = m.Blur()
		}
		f.fields = append(f.fields, m)
		f.initial = append(f.initial, m.Value())
	}
	return f
}

func NewTaskForm(t store.Task, opts Options) Form {
	f := newForm(KindTask, t.ID, []fieldSpec{
		{name: FieldTitle, text: t.Title},
		{name: FieldDescription, text: t.Description, multiline: true},
		{name: FieldDueDate, text: t.DueDate},
		{name: FieldTags, text: t.Tags},
	}, opts)
	f.notebookID = t.NotebookID
	f.status = t.Status
	f.order = t.Order
	return f
}

func NewNoteForm(n store.Note, opts Options) Form {
	f := newForm(KindNote, n.ID, []fieldSpec{
		{name: FieldTitle, text: n.Title},
		{name: FieldTags, text: n.Tags},
		{name: FieldContent, text: n.Content, multiline: true},
	}, opts)
	f.notebookID = n.NotebookID
	return f
}

func NewJournalForm(j store.JournalEntry, opts Options) Form {
	f := newForm(KindJournal, j.ID, []fieldSpec{
		{name: FieldDate, text: j.Date},
		{name: FieldTitle, text: j.Title},
		{name: FieldTags, text: j.Tags},
		{name: FieldContent, text: j.Content, multiline: true},
	}, opts)
	f.notebookID = j.NotebookID
	return f
}

func (f Form) Kind() Kind { return f.kind }

// ID is the record id, 0 for a record not stored yet.
func (f Form) ID() int64 { return f.id }

// Saved records the id assigned by the store and makes the current values
// the clean state.
func (f Form) Saved(id int64) Form {
	f = f.detach()
	f.id = id
	for i := range f.fields {
		f.initial[i] = f.fields[i].Value()
	}
	return f
}

// Dirty reports whether any field differs from the last saved values.
func (f Form) Dirty() bool {
	for i := range f.fields {
		if f.fields[i].Value() != f.initial[i] {
			return true
		}
	}
	return false
}

// Values returns the raw text of every field by name.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, m := range f.fields {
		out[m.Title()] = m.Value()
	}
	return out
}

func (f Form) value(name string) string {
	for _, m := range f.fields {
		if m.Title() == name {
			return strings.TrimSpace(m.Value())
		}
	}
	return ""
}

// Field returns the editor with the given name.
func (f Form) Field(name string) (editor.Model, bool) {
	for _, m := range f.fields {
		if m.Title() == name {
			return m, true
		}
	}
	return editor.Model{}, false
}

func (f Form) FieldNames() []string {
	names := make([]string, len(f.fields))
	for i, m := range f.fields {
		names[i] = m.Title()
	}
	return names
}

// FocusedField returns the name of the field with focus.
func (f Form) FocusedField() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Title()
}

// Status returns the focused field's last clipboard message.
func (f Form) Status() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Status()
}

// FocusField moves focus to the field with the given name.
func (f Form) FocusField(name string) Form {
	for i, m := range f.fields {
		if m.Title() == name {
			return f.setFocus(i)
		}
	}
	return f
}

func (f Form) setFocus(i int) Form {
	n := len(f.fields)
	if n == 0 {
		return f
	}
	i = ((i % n) + n) % n
	f = f.detach()
	f.fields[f.focus] = f.fields[f.focus].Blur()
	f.focus = i
	f.fields[f.focus] = f.fields[f.focus].Focus()
	return f
}

func (f Form) NextField() Form { return f.setFocus(f.focus + 1) }
func (f Form) PrevField() Form { return f.setFocus(f.focus - 1) }

func (f Form) Init() tea.Cmd { return nil }

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return f.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case msg.Paste:
			// Pasted text always goes to the field.
		case key.Matches(msg, f.nav.Next):
			return f.NextField(), nil
		case key.Matches(msg, f.nav.Prev):
			return f.PrevField(), nil
		case key.Matches(msg, f.nav.Advance) && !f.fields[f.focus].Multiline():
			return f.NextField(), nil
		}
	}

	var cmd tea.Cmd
	f = f.detach()
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

// detach gives f its own field slices so writes through it leave earlier
// copies of the form alone. The editors still share their buffers.
func (f Form) detach() Form {
	f.fields = slices.Clone(f.fields)
	f.initial = slices.Clone(f.initial)
	return f
}

// SetSize lays the fields out top to bottom. Single-line fields take three
// rows and multi-line fields share what is left.
func (f Form) SetSize(width, height int) Form {
	f = f.detach()
	f.width = max(width, 0)
	f.height = max(height, 0)

	multi := 0
	for _, m := range f.fields {
		if m.Multiline() {
			multi++
		}
	}
	var share, extra int
	if multi > 0 {
		rest := max(f.height-(len(f.fields)-multi)*singleLineHeight, 0)
		share, extra = rest/multi, rest%multi
	}
	for i, m := range f.fields {
		h := singleLineHeight
		if m.Multiline() {
			h = share
			if extra > 0 {
				h++
				extra--
			}
			h = max(h, singleLineHeight)
		}
		f.fields[i] = m.SetSize(f.width, h)
	}
	return f
}

func (f Form) View() string {
	views := make([]string, 0, len(f.fields))
	for _, m := range f.fields {
		if v := m.View(); v != "" {
			views = append(views, v)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

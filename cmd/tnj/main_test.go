package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/tnj/buffer"
	"github.com/iw2rmb/tnj/form"
	"github.com/iw2rmb/tnj/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-note", "3", "-db", "/tmp/x.db"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.noteID)
	assert.Equal(t, "/tmp/x.db", o.dbPath)
	assert.Equal(t, "note", o.newKind)

	_, err = parseFlags([]string{"-note", "1", "-task", "2"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-journal", "-4"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-new", "memo"})
	assert.Error(t, err)
}

func TestLoadForm_NewAndExisting(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	f, err := loadForm(ctx, st, options{newKind: "journal"}, form.Options{})
	require.NoError(t, err)
	assert.Equal(t, form.KindJournal, f.Kind())
	assert.Equal(t, todayDate(), f.Values()[form.FieldDate])

	id, err := st.InsertTask(ctx, store.Task{Title: "Pay rent", Description: "by friday"})
	require.NoError(t, err)
	f, err = loadForm(ctx, st, options{taskID: id}, form.Options{})
	require.NoError(t, err)
	assert.Equal(t, form.KindTask, f.Kind())
	assert.Equal(t, id, f.ID())
	assert.Equal(t, "Pay rent", viewTitle(f))
	assert.Equal(t, "by friday", viewText(f))

	_, err = loadForm(ctx, st, options{noteID: 404}, form.Options{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApp_SaveAndQuit(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	var m tea.Model = newApp(form.NewNoteForm(store.Note{}, form.Options{}), st, "ctrl+s", "esc")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 16})

	m, _ = m.Update(keyMsg(tea.KeyCtrlS))
	a := m.(app)
	assert.True(t, a.statusErr)
	assert.Contains(t, a.status, "Title is required")

	m, _ = m.Update(runes("Idea"))
	m, cmd := m.Update(keyMsg(tea.KeyEsc))
	assert.Nil(t, cmd, "first quit with unsaved changes only warns")
	assert.Contains(t, m.(app).status, "Unsaved changes")

	m, _ = m.Update(keyMsg(tea.KeyCtrlS))
	a = m.(app)
	require.False(t, a.statusErr, a.status)
	assert.True(t, strings.HasPrefix(a.status, "Saved note"))

	n, err := st.GetNote(ctx, a.form.ID())
	require.NoError(t, err)
	assert.Equal(t, "Idea", n.Title)

	_, cmd = m.Update(keyMsg(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewHasStatusLine(t *testing.T) {
	var m tea.Model = newApp(form.NewNoteForm(store.Note{Title: "t"}, form.Options{}), nil, "ctrl+s", "esc")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[11], "ctrl+s save")
}

func TestViewerKey(t *testing.T) {
	b := buffer.FromText("a\nb\nc\nd", buffer.Options{})
	b.SetCursor(buffer.Pos{})

	assert.True(t, viewerKey(b, tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), 2))
	assert.Equal(t, buffer.Pos{Line: 2, Col: 0}, b.Cursor())
	assert.True(t, viewerKey(b, tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), 2))
	assert.Equal(t, buffer.Pos{Line: 2, Col: 1}, b.Cursor())

	assert.True(t, viewerKey(b, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 2))
	assert.Equal(t, "a\nb\nc\nd", b.Text(), "viewer never edits")
	assert.False(t, viewerKey(b, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 2))
	assert.False(t, viewerKey(b, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 2))
}

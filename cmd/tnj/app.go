package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tnj/form"
)

const saveTimeout = 5 * time.Second

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type app struct {
	form  form.Form
	saver form.Saver

	save, quit key.Binding

	status    string
	statusErr bool
	// confirmQuit is set after a quit with unsaved changes; a second quit
	// exits anyway.
	confirmQuit bool

	width, height int
}

func newApp(f form.Form, saver form.Saver, save, quit string) app {
	return app{
		form:  f,
		saver: saver,
		save:  key.NewBinding(key.WithKeys(save), key.WithHelp(save, "save")),
		quit:  key.NewBinding(key.WithKeys(quit), key.WithHelp(quit, "quit")),
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.form = a.form.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		switch {
		case msg.Paste:
		case key.Matches(msg, a.save):
			return a.saveForm(), nil
		case key.Matches(msg, a.quit):
			if a.form.Dirty() && !a.confirmQuit {
				a.confirmQuit = true
				a.setStatus(fmt.Sprintf("Unsaved changes, %s again to quit", a.quit.Help().Key), false)
				return a, nil
			}
			return a, tea.Quit
		}
		a.confirmQuit = false
		a.setStatus("", false)
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	if s := a.form.Status(); s != "" {
		a.setStatus(s, strings.HasPrefix(s, "Failed"))
	}
	return a, cmd
}

func (a app) saveForm() app {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	saved, err := a.form.Save(ctx, a.saver)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			a.form = a.form.FocusField(verr.Field)
			a.setStatus("Validation error: "+verr.Msg, true)
			return a
		}
		log.Printf("App: save %s: %v", a.form.Kind(), err)
		a.setStatus("Save failed: "+err.Error(), true)
		return a
	}
	a.form = saved
	a.confirmQuit = false
	log.Printf("App: saved %s %d", saved.Kind(), saved.ID())
	a.setStatus(fmt.Sprintf("Saved %s %d", saved.Kind(), saved.ID()), false)
	return a
}

func (a *app) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a app) View() string {
	st := statusStyle
	if a.statusErr {
		st = errorStyle
	}
	line := a.status
	if line == "" {
		line = fmt.Sprintf("%s save · tab next field · %s quit", a.save.Help().Key, a.quit.Help().Key)
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.form.View(), st.MaxWidth(a.width).Render(line))
}

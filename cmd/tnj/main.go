// Command tnj edits one task, note or journal entry in the terminal and
// saves it to the tnj database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/tnj"
	"github.com/iw2rmb/tnj/config"
	"github.com/iw2rmb/tnj/editor"
	"github.com/iw2rmb/tnj/form"
	"github.com/iw2rmb/tnj/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tnj:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dbPath     string
	noteID     int64
	taskID     int64
	journalID  int64
	newKind    string
	view       bool
	initConfig bool
	version    bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fl := flag.NewFlagSet("tnj", flag.ContinueOnError)
	fl.StringVar(&o.configPath, "config", "", "config file (default: user config dir)/tnj/config.toml")
	fl.StringVar(&o.dbPath, "db", "", "database file, overrides database_path")
	fl.Int64Var(&o.noteID, "note", 0, "edit the note with this id")
	fl.Int64Var(&o.taskID, "task", 0, "edit the task with this id")
	fl.Int64Var(&o.journalID, "journal", 0, "edit the journal entry with this id")
	fl.StringVar(&o.newKind, "new", "note", "kind of record to create: note, task or journal")
	fl.BoolVar(&o.view, "view", false, "show the record read-only")
	fl.BoolVar(&o.initConfig, "init-config", false, "write the default config file if it does not exist")
	fl.BoolVar(&o.version, "version", false, "print the version and exit")
	if err := fl.Parse(args); err != nil {
		return options{}, err
	}

	picked := 0
	for _, id := range []int64{o.noteID, o.taskID, o.journalID} {
		if id < 0 {
			return options{}, fmt.Errorf("record ids are positive, got %d", id)
		}
		if id > 0 {
			picked++
		}
	}
	if picked > 1 {
		return options{}, errors.New("use only one of -note, -task and -journal")
	}
	switch o.newKind {
	case "note", "task", "journal":
	default:
		return options{}, fmt.Errorf("-new: unknown kind %q", o.newKind)
	}
	return o, nil
}

func run() error {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if o.version {
		fmt.Println(tnj.Banner())
		return nil
	}

	cfgPath := o.configPath
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfgPath = config.ExpandPath(cfgPath)
	if o.initConfig {
		return writeDefaultConfig(cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyBindings.Resolve()
	if err != nil {
		return err
	}
	if o.dbPath != "" {
		cfg.DatabasePath = config.ExpandPath(o.dbPath)
	}
	if cfg.DatabasePath == "" {
		return errors.New("no database path; set database_path or pass -db")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tnj needs an interactive terminal")
	}

	logFile, err := openLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	clip := editor.SystemClipboard{}
	opts := form.Options{
		KeyMap:       editor.KeyMapFromBindings(keys.Editor),
		Style:        editor.DefaultStyle(),
		HistoryLimit: cfg.Editor.HistoryLimit,
		ShowLineNums: cfg.Editor.ShowLineNumbers,
	}
	if !clip.Unsupported() {
		opts.Clipboard = clip
	} else {
		log.Printf("App: no system clipboard, copy and paste disabled")
	}

	f, err := loadForm(ctx, st, o, opts)
	if err != nil {
		return err
	}

	if o.view {
		return runViewer(viewTitle(f), viewText(f))
	}

	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	p := tea.NewProgram(newApp(f, st, keys.Save, keys.Quit), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// openLog sends the log package to <data dir>/tnj.log. The terminal belongs
// to the UI.
func openLog() (*os.File, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return tea.LogToFile(filepath.Join(dir, "tnj.log"), "tnj")
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists\n", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func loadForm(ctx context.Context, st *store.Store, o options, opts form.Options) (form.Form, error) {
	switch {
	case o.noteID > 0:
		n, err := st.GetNote(ctx, o.noteID)
		if err != nil {
			return form.Form{}, err
		}
		return form.NewNoteForm(n, opts), nil
	case o.taskID > 0:
		t, err := st.GetTask(ctx, o.taskID)
		if err != nil {
			return form.Form{}, err
		}
		return form.NewTaskForm(t, opts), nil
	case o.journalID > 0:
		j, err := st.GetJournal(ctx, o.journalID)
		if err != nil {
			return form.Form{}, err
		}
		return form.NewJournalForm(j, opts), nil
	}

	// New records land in the default notebook when there is one.
	var notebookID *int64
	nb, ok, err := st.DefaultNotebook(ctx)
	if err != nil {
		return form.Form{}, err
	}
	if ok {
		notebookID = &nb.ID
	}
	switch o.newKind {
	case "task":
		return form.NewTaskForm(store.Task{NotebookID: notebookID}, opts), nil
	case "journal":
		return form.NewJournalForm(store.JournalEntry{Date: todayDate(), NotebookID: notebookID}, opts), nil
	default:
		return form.NewNoteForm(store.Note{NotebookID: notebookID}, opts), nil
	}
}

func todayDate() string {
	return time.Now().Format(store.DateLayout)
}

// viewTitle and viewText pick what -view shows: the title and the
// multi-line body of the record.
func viewTitle(f form.Form) string {
	v := f.Values()
	if t := v[form.FieldTitle]; t != "" {
		return t
	}
	return v[form.FieldDate]
}

func viewText(f form.Form) string {
	v := f.Values()
	if f.Kind() == form.KindTask {
		return v[form.FieldDescription]
	}
	return v[form.FieldContent]
}

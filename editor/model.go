package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tnj/buffer"
)

// Model is a Bubble Tea component that renders and edits one buffer inside
// a bordered box.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	width, height int

	status string

	lastVersion     uint64
	lastTextVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:     cfg,
		buf:     buffer.FromText(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused: true,
	}
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the field text.
func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the field text. Undo history starts over.
func (m Model) SetValue(s string) Model {
	m.buf = buffer.FromText(s, buffer.Options{HistoryLimit: m.cfg.HistoryLimit})
	m.followCursor()
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	return m
}

// Status returns the message left by the last clipboard action, or "".
func (m Model) Status() string { return m.status }

func (m Model) Title() string { return m.cfg.Title }

func (m Model) Multiline() bool { return m.cfg.Multiline }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size, border included.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m.status = ""
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.followCursor()
		m.emitChange()
		return m, cmd
	default:
		// Hosts may drive edits by mutating the buffer directly.
		m.followCursor()
		m.emitChange()
		return m, nil
	}
}

// viewportHeight is the number of text rows inside the border.
func (m Model) viewportHeight() int {
	return max(m.height-buffer.BorderCells, 0)
}

// textWidth is the outer width minus the gutter, border included, as the
// buffer scroll helpers expect it.
func (m Model) textWidth() int {
	return max(m.width-m.gutterWidth(), 0)
}

func (m *Model) followCursor() {
	if m.height <= 0 || m.width <= 0 {
		return
	}
	m.buf.UpdateScroll(m.viewportHeight())
	m.buf.UpdateHorizontalScroll(m.textWidth())
}

func (m *Model) emitChange() {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.lastTextVersion))
	}
	m.lastVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
}

package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Title is drawn into the top border.
	Title string

	// Multiline fields accept Enter as a line break. Single-line fields
	// ignore it so the host can use it for navigation.
	Multiline bool

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// Clipboard is optional. Without it copy, cut and paste do nothing.
	Clipboard Clipboard

	ReadOnly bool

	// OnChange is called after an Update that changed buffer state.
	OnChange func(ChangeEvent)
}

package buffer

import (
	"fmt"
	"testing"
)

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := b.Lines()
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, b *Buffer, line, col int) {
	t.Helper()
	if got, want := b.Cursor(), (Pos{Line: line, Col: col}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestNew_EmptyBuffer(t *testing.T) {
	b := New(Options{})
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)
	if got := b.Text(); got != "" {
		t.Fatalf("text: got %q, want empty", got)
	}
	if got := b.Options().HistoryLimit; got != DefaultHistoryLimit {
		t.Fatalf("history limit: got %d, want %d", got, DefaultHistoryLimit)
	}
}

func TestFromText_SplitsAndPlacesCursorAtEnd(t *testing.T) {
	b := FromText("ab\ncdé", Options{})
	assertLines(t, b, "ab", "cdé")
	assertCursor(t, b, 1, 3)

	b = FromText("", Options{})
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)

	b = FromText("trailing\n", Options{})
	assertLines(t, b, "trailing", "")
	assertCursor(t, b, 1, 0)
}

func TestFromText_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"x",
		"\n",
		"\n\n",
		"hello\nworld",
		"trailing\n",
		"\nleading",
		"日本語\n👍🏽 emoji\n",
		"tab\there\r\nkept cr",
	}
	for _, s := range cases {
		if got := FromText(s, Options{}).Text(); got != s {
			t.Fatalf("round trip: got %q, want %q", got, s)
		}
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := FromText("a\nbc", Options{})
	v := b.Version()

	b.SetCursor(Pos{Line: 999, Col: 999})
	assertCursor(t, b, 1, 2)
	if b.Version() != v {
		t.Fatalf("expected version unchanged for same effective cursor, got %d", b.Version())
	}

	b.SetCursor(Pos{Line: -4, Col: 1})
	assertCursor(t, b, 0, 1)
	if b.Version() != v+1 {
		t.Fatalf("expected version %d, got %d", v+1, b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := FromText("añb\n", Options{})
	if got := b.LineCount(); got != 2 {
		t.Fatalf("line count: got %d, want 2", got)
	}
	if got := b.LineLen(0); got != 3 {
		t.Fatalf("line len: got %d, want 3", got)
	}
	if got := b.Line(0); got != "añb" {
		t.Fatalf("line 0: got %q", got)
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("out of range line: got %q, want empty", got)
	}
	if got := b.LineLen(-1); got != 0 {
		t.Fatalf("out of range line len: got %d, want 0", got)
	}

	lines := b.Lines()
	lines[0] = "mutated"
	if got := b.Line(0); got != "añb" {
		t.Fatalf("Lines must return a copy, buffer now has %q", got)
	}
}

func TestScenarioA_TypeIntoEmptyBuffer(t *testing.T) {
	b := New(Options{})
	b.InsertChar('h')
	b.InsertChar('i')
	assertLines(t, b, "hi")
	assertCursor(t, b, 0, 2)
}

func TestScenarioB_NewlineAtEndOfFirstLine(t *testing.T) {
	b := FromText("ab\ncd", Options{})
	b.SetCursor(Pos{Line: 0, Col: 2})
	b.InsertNewline()
	assertLines(t, b, "ab", "", "cd")
	assertCursor(t, b, 1, 0)
}

func TestScenarioD_BackspaceToEmptyThenNoOp(t *testing.T) {
	b := FromText("abc", Options{})
	assertCursor(t, b, 0, 3)

	for i := 0; i < 3; i++ {
		b.DeleteChar()
	}
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)

	v, tv := b.Version(), b.TextVersion()
	undo := len(b.History())
	b.DeleteChar()
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)
	if b.Version() != v || b.TextVersion() != tv {
		t.Fatalf("backspace at document start must not change state")
	}
	if got := len(b.History()); got != undo {
		t.Fatalf("history length: got %d, want %d", got, undo)
	}
}

package buffer

import "testing"

func TestSelection_HasSelectionRequiresDistinctAnchor(t *testing.T) {
	b := FromText("abc", Options{})
	if b.HasSelection() {
		t.Fatalf("expected no selection on a fresh buffer")
	}
	if _, ok := b.SelectionBounds(); ok {
		t.Fatalf("expected no bounds without an anchor")
	}

	b.StartSelection()
	if b.HasSelection() {
		t.Fatalf("anchor at cursor must not be an active selection")
	}
	r, ok := b.SelectionBounds()
	if !ok || !r.IsEmpty() {
		t.Fatalf("bounds with collapsed anchor: got (%v, %v), want empty range", r, ok)
	}

	b.SetCursor(Pos{Line: 0, Col: 1})
	if !b.HasSelection() {
		t.Fatalf("expected selection once the cursor leaves the anchor")
	}
	if got, want := b.SelectedText(), "bc"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}

	b.ClearSelection()
	if b.HasSelection() {
		t.Fatalf("expected selection cleared")
	}
}

func TestSelection_BoundsAreOrdered(t *testing.T) {
	b := FromText("ab\ncd\nef", Options{})
	b.SetCursor(Pos{Line: 2, Col: 1})
	b.MoveUp(true)
	b.MoveUp(true)

	r, ok := b.SelectionBounds()
	if !ok {
		t.Fatalf("expected bounds")
	}
	want := Range{Start: Pos{Line: 0, Col: 1}, End: Pos{Line: 2, Col: 1}}
	if r != want {
		t.Fatalf("bounds: got %v, want %v", r, want)
	}
	if anchor, _ := b.Anchor(); anchor != (Pos{Line: 2, Col: 1}) {
		t.Fatalf("anchor: got %v, want (2,1)", anchor)
	}
}

func TestSelectedText_MultiLine(t *testing.T) {
	b := FromText("first\nmiddle\nlast", Options{})
	b.SetCursor(Pos{Line: 0, Col: 2})
	b.StartSelection()
	b.SetCursor(Pos{Line: 2, Col: 2})

	if got, want := b.SelectedText(), "rst\nmiddle\nla"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
}

func TestSelectedText_SymmetricForBackwardSelection(t *testing.T) {
	forward := FromText("héllo\nwörld", Options{})
	forward.SetCursor(Pos{Line: 0, Col: 1})
	forward.MoveDown(true)
	forward.MoveRight(true)

	backward := FromText("héllo\nwörld", Options{})
	backward.SetCursor(Pos{Line: 1, Col: 2})
	backward.MoveUp(true)
	backward.MoveLeft(true)

	if forward.SelectedText() != backward.SelectedText() {
		t.Fatalf("selected text differs: forward %q, backward %q", forward.SelectedText(), backward.SelectedText())
	}
	if got, want := forward.SelectedText(), "éllo\nwö"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
}

func TestScenarioE_SelectAllThenDelete(t *testing.T) {
	b := FromText("ab\ncd", Options{})
	b.SetCursor(Pos{})
	b.SelectAll()
	if got, want := b.SelectedText(), "ab\ncd"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
	assertCursor(t, b, 1, 2)

	b.DeleteSelection()
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)
	if b.HasSelection() {
		t.Fatalf("expected selection cleared")
	}
}

func TestDeleteSelection_SplicesAcrossLines(t *testing.T) {
	b := FromText("keep-AAA\nBBB\nCCC-keep", Options{})
	b.SetCursor(Pos{Line: 2, Col: 3})
	b.StartSelection()
	b.SetCursor(Pos{Line: 0, Col: 4})

	b.DeleteSelection()
	assertLines(t, b, "keep-keep")
	assertCursor(t, b, 0, 4)
}

func TestDeleteSelection_WithoutSelectionIsNoOp(t *testing.T) {
	b := FromText("abc", Options{})
	v := b.Version()
	b.DeleteSelection()
	assertLines(t, b, "abc")
	if b.Version() != v {
		t.Fatalf("expected version unchanged")
	}
	if b.CanUndo() {
		t.Fatalf("expected no recorded operation")
	}
}

func TestDeleteSelection_IsUndoable(t *testing.T) {
	b := FromText("one\ntwo\nthree", Options{})
	b.SetCursor(Pos{Line: 0, Col: 1})
	b.StartSelection()
	b.SetCursor(Pos{Line: 2, Col: 2})
	b.DeleteSelection()
	assertLines(t, b, "oree")

	if !b.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	assertLines(t, b, "one", "two", "three")
	assertCursor(t, b, 0, 1)
	if b.HasSelection() {
		t.Fatalf("expected undo to clear the selection")
	}

	if !b.Redo() {
		t.Fatalf("expected redo to succeed")
	}
	assertLines(t, b, "oree")
	assertCursor(t, b, 0, 1)
}

func TestSelectAll_EmptyBuffer(t *testing.T) {
	b := New(Options{})
	b.SelectAll()
	if b.HasSelection() {
		t.Fatalf("select all on an empty buffer has nothing to select")
	}
	if got := b.SelectedText(); got != "" {
		t.Fatalf("selected text: got %q, want empty", got)
	}
}

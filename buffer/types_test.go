package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 0, Col: 0}, Pos{Line: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Line: 2, Col: 0}, Pos{Line: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 1, Col: 0}, Pos{Line: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Line: 1, Col: 2}, Pos{Line: 1, Col: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 3, Col: 4}, Pos{Line: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{Line: 2, Col: 3}, End: Pos{Line: 1, Col: 9}})
	if r.Start != (Pos{Line: 1, Col: 9}) || r.End != (Pos{Line: 2, Col: 3}) {
		t.Fatalf("unexpected range: %#v", r)
	}

	r2 := NormalizeRange(r)
	if r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(line int) int { return []int{3, 0, 5}[line] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Line: -1, Col: -1}, want: Pos{Line: 0, Col: 0}},
		{in: Pos{Line: 0, Col: 99}, want: Pos{Line: 0, Col: 3}},
		{in: Pos{Line: 1, Col: 2}, want: Pos{Line: 1, Col: 0}},
		{in: Pos{Line: 99, Col: 4}, want: Pos{Line: 2, Col: 4}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := ClampPos(Pos{Line: 5, Col: 5}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos on empty doc: got %v, want (0,0)", got)
	}
}

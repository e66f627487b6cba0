package vi

import "testing"

func TestMotionsMoveCursor(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		keys  string
		want  int
	}{
		{"h", "abc", 2, "h", 1},
		{"l", "abc", 0, "l", 1},
		{"0", "  abc", 4, "0", 0},
		{"caret", "  abc", 4, "^", 2},
		{"dollar", "abc\ndef", 0, "$", 3},
		{"w", "foo bar", 0, "w", 4},
		{"2w", "foo bar baz", 0, "2w", 8},
		{"e", "foo bar", 0, "e", 2},
		{"b", "foo bar", 4, "b", 0},
		{"j", "ab\ncd\nef", 0, "j", 3},
		{"k", "ab\ncd\nef", 6, "k", 3},
		{"G", "ab\ncd\nef", 0, "G", 6},
		{"2G", "ab\ncd\nef", 6, "2G", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.text)
			h.win.SetCursor(tt.start)
			h.feed(tt.keys)
			if got := h.win.Cursor(); got != tt.want {
				t.Errorf("cursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindChar(t *testing.T) {
	h := newHarness("abcdefg")
	h.feed("fd")
	if got := h.win.Cursor(); got != 3 {
		t.Fatalf("cursor = %d, want 3", got)
	}

	h = newHarness("abcdefg")
	h.feed("td")
	if got := h.win.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
}

func TestRepeatFindSemicolonAndComma(t *testing.T) {
	h := newHarness("a.b.c.d")
	h.feed("f.")
	if got := h.win.Cursor(); got != 1 {
		t.Fatalf("after f. cursor = %d, want 1", got)
	}
	h.feed(";")
	if got := h.win.Cursor(); got != 3 {
		t.Fatalf("after ; cursor = %d, want 3", got)
	}
	h.feed(",")
	if got := h.win.Cursor(); got != 1 {
		t.Fatalf("after , cursor = %d, want 1", got)
	}
}

func TestBracketMatchMotion(t *testing.T) {
	h := newHarness("x(yy)z")
	h.win.SetCursor(1)
	h.feed("%")
	if got := h.win.Cursor(); got != 4 {
		t.Fatalf("cursor = %d, want 4", got)
	}
}

func TestParagraphMotion(t *testing.T) {
	h := newHarness("one\ntwo\n\nthree\nfour")
	h.win.SetCursor(0)
	h.feed("}")
	// the first blank line is at offset 8 (after "one\ntwo\n")
	if got := h.win.Cursor(); got != 8 {
		t.Fatalf("cursor = %d, want 8", got)
	}
}

func TestMarkMotion(t *testing.T) {
	h := newHarness("abc\ndef\nghi")
	h.win.SetCursor(5)
	h.feed("ma")
	h.win.SetCursor(0)
	h.feed("`a")
	if got := h.win.Cursor(); got != 5 {
		t.Fatalf("cursor after `a = %d, want 5", got)
	}
}

func TestSearchRepeatMotion(t *testing.T) {
	h := newHarness("foo bar foo baz foo")
	// yank "foo" (via a word-end motion, so the trailing space isn't
	// included) into the anonymous register and selection so n/N have a
	// target to search for without a dedicated search-entry command.
	h.feed("ye")
	h.win.SetCursor(0)
	h.feed("n")
	if got := h.win.Cursor(); got != 8 {
		t.Fatalf("cursor after n = %d, want 8", got)
	}
	h.feed("n")
	if got := h.win.Cursor(); got != 16 {
		t.Fatalf("cursor after second n = %d, want 16", got)
	}
}

func TestDeleteBracketMatchSpanningLines(t *testing.T) {
	h := newHarness("x{\nyy\n}z")
	h.win.SetCursor(1)
	h.feed("d%")
	if got := h.text(); got != "xz" {
		t.Fatalf("text = %q, want %q", got, "xz")
	}
}

// Scenario from the core's documented laws (§4.2, §8 scenario 6): when both
// delimiters sit alone on their own line, % as an operand widens to whole
// lines and the yank lands in slot "1 line-wise, because neither
// delimiter shares its line with any other non-blank text.
func TestDeleteBracketMatchIsolatedOnOwnLinesIsLinewise(t *testing.T) {
	h := newHarness("{\n  body\n}\n")
	h.win.SetCursor(0)
	h.feed("d%")
	if got := h.text(); got != "" {
		t.Fatalf("text = %q, want empty", got)
	}
	slot, ok := h.ed.regs.get('1')
	if !ok || !slot.linemode {
		t.Fatalf("slot 1 linemode = %v, ok=%v, want true, true", slot.linemode, ok)
	}
	if got := string(slot.runes); got != "{\n  body\n}\n" {
		t.Fatalf("slot 1 = %q, want %q", got, "{\n  body\n}\n")
	}
}

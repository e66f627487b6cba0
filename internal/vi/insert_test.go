package vi

import (
	"testing"

	"github.com/vicore-editor/vicore/internal/key"
)

func TestInsertAppendsAtCursor(t *testing.T) {
	h := newHarness("bc")
	h.feed("i")
	if h.ed.Mode() != ModeInsert {
		t.Fatalf("mode = %v, want insert", h.ed.Mode())
	}
	h.feed("a")
	h.ed.Feed(key.GKEsc)
	if got := h.text(); got != "abc" {
		t.Fatalf("text = %q, want %q", got, "abc")
	}
	if h.ed.Mode() != ModeCommand {
		t.Fatalf("mode after Esc = %v, want command", h.ed.Mode())
	}
}

func TestInsertAppendAfterCursor(t *testing.T) {
	h := newHarness("ab")
	h.win.SetCursor(0)
	h.feed("a")
	h.feed("X")
	h.ed.Feed(key.GKEsc)
	if got := h.text(); got != "aXb" {
		t.Fatalf("text = %q, want %q", got, "aXb")
	}
}

func TestInsertBackspaceDeletesPriorRune(t *testing.T) {
	h := newHarness("")
	h.feed("i")
	h.feed("ab")
	h.ed.Feed(key.GKBackspace)
	h.ed.Feed(key.GKEsc)
	if got := h.text(); got != "a" {
		t.Fatalf("text = %q, want %q", got, "a")
	}
}

// Scenario from the core's documented laws: a newline typed during insert
// copies the current line's leading indent onto the new line.
func TestInsertNewlineCopiesIndent(t *testing.T) {
	h := newHarness("  abc")
	h.win.SetCursor(5)
	h.feed("a")
	h.feed("\n")
	h.feed("d")
	h.ed.Feed(key.GKEsc)
	if got := h.text(); got != "  abc\n  d" {
		t.Fatalf("text = %q, want %q", got, "  abc\n  d")
	}
}

// Scenario from the core's documented laws: "3ix<Esc>" replays the whole
// insertion session two further times, landing the cursor on the last
// inserted rune rather than one past it.
func TestInsertCountReplaysSession(t *testing.T) {
	h := newHarness("")
	h.feed("3i")
	h.feed("x")
	h.ed.Feed(key.GKEsc)
	if got := h.text(); got != "xxx" {
		t.Fatalf("text = %q, want %q", got, "xxx")
	}
	if got := h.win.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
}

func TestInsertLogOverflowLocksWithoutPanicking(t *testing.T) {
	h := newHarness("")
	h.feed("i")
	for i := 0; i < maxInsertLog+10; i++ {
		h.feed("x")
	}
	h.ed.Feed(key.GKEsc)
	if got := len(h.text()); got != maxInsertLog+10 {
		t.Fatalf("len(text) = %d, want %d", got, maxInsertLog+10)
	}
}

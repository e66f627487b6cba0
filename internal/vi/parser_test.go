package vi

import "testing"

func TestRegisterPrefixRejectsNonNameChar(t *testing.T) {
	h := newHarness("hello world")
	h.feed(`"!`)
	if got := h.errs.s; got != "! invalid command\n" {
		t.Fatalf("diagnostic = %q, want %q", got, "! invalid command\n")
	}
	h.feed("dw")
	if got := h.text(); got != "world" {
		t.Fatalf("text = %q, want %q", got, "world")
	}
}

// Scenario from the core's documented laws (§4.1): a motion char reached
// while already filling the motion slot must itself be a motion — an
// action char there is rejected rather than silently treated as a motion.
func TestMotionSlotRejectsNonMotionChar(t *testing.T) {
	h := newHarness("hello world")
	h.feed("d")
	h.feed("i")
	if got := h.errs.s; got != "! invalid command\n" {
		t.Fatalf("diagnostic = %q, want %q", got, "! invalid command\n")
	}
	if h.ed.Mode() != ModeCommand {
		t.Fatalf("mode = %v, want command", h.ed.Mode())
	}
}

func TestCountPrefixAccumulatesDigits(t *testing.T) {
	h := newHarness("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	h.feed("25l")
	if got := h.win.Cursor(); got != 25 {
		t.Fatalf("cursor = %d, want 25", got)
	}
}

// Scenario from the core's documented laws (§4.1): counts on the operator
// and its motion multiply, so "2d3w" deletes six words' worth of span.
func TestOperatorAndMotionCountsMultiply(t *testing.T) {
	h := newHarness("a b c d e f g h i j")
	h.feed("2d3w")
	if got := h.text(); got != "g h i j" {
		t.Fatalf("text = %q, want %q", got, "g h i j")
	}
}

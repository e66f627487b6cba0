// Package vi implements the command-language core of a modal, vi-style
// text editor: the parser, motion and action catalogs, insertion-mode
// interpreter, yank-register ring, and the dispatcher that ties them
// together with repeat/undo memory. It consumes one rune at a time from a
// host and drives edits against a host-supplied buffer and window; it owns
// no text storage of its own.
package vi

// Cmd is a parsed command fragment: the main command or the motion it
// consumes. The zero value has Count == 0, meaning "unspecified" (an
// effective count of 1 unless the bound key entry says otherwise).
type Cmd struct {
	Count uint16
	Chr   byte
	Arg   rune
}

// GetCount returns the effective repeat count: 1 when Count is the zero
// sentinel.
func (c Cmd) GetCount() int {
	if c.Count == 0 {
		return 1
	}
	return int(c.Count)
}

// MotionResult is the half-open rune-offset range a motion selects, plus
// whether it should be treated as whole lines rather than a character span.
// For a standalone cursor move only End is significant.
type MotionResult struct {
	Beg, End int
	Linewise bool
}

// target names which Cmd slot the parser is currently filling.
type target uint8

const (
	targetMain target = iota
	targetMotion
)

// phase is the parser's persistent state between feed calls.
type phase uint8

const (
	phaseBufferDQuote phase = iota
	phaseBufferName
	phaseCmdChar
	phaseCmdDouble
	phaseCmdArg
)

// Mode is the editor's current input mode.
type Mode uint8

const (
	ModeCommand Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "command"
}

package vi

import (
	"io"

	"github.com/vicore-editor/vicore/internal/key"
)

// findMemory retains the last t/T/f/F target so ';' and ',' can replay it.
type findMemory struct {
	locked bool
	chr    rune
	arg    rune
}

// repeatMemory remembers the last successful non-control command for '.'
// and the alternating undo/redo direction for 'u'.
type repeatMemory struct {
	have    bool
	lastBuf rune
	lastCmd Cmd
	lastMot Cmd
	redo    bool
}

// Editor is the constructed, non-global home for every piece of state §9's
// "Global mutable state" note says a clean reimplementation should use
// instead of module singletons: parser state, mode, the yank ring, and the
// find/repeat/insertion memories all live here.
type Editor struct {
	host Host

	mode Mode

	phase  phase
	target target
	bufReg rune
	cur    Cmd
	mot    Cmd

	find   findMemory
	repeat repeatMemory

	insLog       []rune
	insLocked    bool
	cntI         int
	insSkipFirst bool

	scrolling   bool
	scrollCount int

	regs *registers

	errOut io.Writer
}

// maxInsertLog is the insertion log's fixed capacity (§3).
const maxInsertLog = 512

// NewEditor constructs an Editor bound to host. errOut receives the one
// diagnostic line a parse error produces; a nil errOut discards it.
func NewEditor(host Host, errOut io.Writer) *Editor {
	if errOut == nil {
		errOut = io.Discard
	}
	return &Editor{
		host:   host,
		regs:   newRegisters(),
		errOut: errOut,
	}
}

// Mode reports the editor's current input mode.
func (e *Editor) Mode() Mode { return e.mode }

// Scrolling reports whether a ^E/^Y/^D/^U scroll action is in progress, so
// a host's render loop can skip a Window.Edge() recenter it would
// otherwise do after every processed command (§6's "scroll-lock flag").
func (e *Editor) Scrolling() bool { return e.scrolling }

func (e *Editor) win() Window     { return e.host.CurrentWindow() }
func (e *Editor) buf() Buffer     { return e.win().Buffer() }
func (e *Editor) cursor() int     { return e.win().Cursor() }
func (e *Editor) setCursor(o int) { e.win().SetCursor(o) }

// Feed is the core's single entry point (§4.1): one rune per call, mode
// dispatched between the command parser and the insertion interpreter.
func (e *Editor) Feed(r rune) {
	if e.mode == ModeInsert {
		e.feedInsert(r)
		return
	}
	e.feedCommand(r)
}

// resetParser returns the parser to its idle state (§3 invariant: phase ==
// BufferDQuote iff no partial command is in flight).
func (e *Editor) resetParser() {
	e.phase = phaseBufferDQuote
	e.target = targetMain
	e.bufReg = 0
	e.cur = Cmd{}
	e.mot = Cmd{}
}

func (e *Editor) fail() {
	_, _ = io.WriteString(e.errOut, invalidCommandMessage)
	e.resetParser()
}

// runMotion invokes fn, applying the caller-side contract described in
// §4.2: seed Beg at the cursor, and when the motion is used as an operand,
// swap Beg/End so Beg <= End.
func (e *Editor) runMotion(fn motionFunc, asOperand bool, c Cmd) (MotionResult, bool) {
	m := MotionResult{Beg: e.cursor(), End: 0}
	if !fn(e, asOperand, c, &m) {
		return MotionResult{}, false
	}
	if asOperand && m.End < m.Beg {
		m.Beg, m.End = m.End, m.Beg
	}
	return m, true
}

// lineExtend applies the line-wise extension described in §4.2 to m,
// treating its current Beg/End as the span to widen to whole lines.
func lineExtend(e *Editor, m *MotionResult) {
	m.Linewise = true
	m.Beg = e.buf().BOL(m.Beg)
	m.End = e.buf().EOL(m.End) + 1
}

func isControlChr(c byte) bool { return c >= 1 && c <= 26 }

// dispatch runs a fully-parsed (buf, cur, mot) triple: a standalone motion,
// or an action (possibly consuming mot, including '.' and 'u'). It is the
// single funnel every completed command passes through, including replays
// from repeatLast.
func (e *Editor) dispatch(buf rune, c, mc Cmd) {
	// Cleared here rather than at the end of the scroll actions themselves,
	// so the flag set by ^E/^Y/^D/^U survives past this call and the host
	// can see it before it re-centers the window; it only clears once the
	// next dispatch turns out not to be a scroll.
	e.scrolling = false

	entry := keysTable[c.Chr]

	if entry.motion != nil {
		m, ok := e.runMotion(entry.motion, false, c)
		if !ok {
			return
		}
		e.setCursor(m.End)
		return
	}

	if entry.action == nil {
		return
	}
	if !entry.action(e, buf, c, mc) {
		return
	}
	// '.' never becomes itself repeatable (§9 Repeat recursion); control
	// characters are excluded from repeat memory by the dispatcher's own
	// rule (§4.3).
	if c.Chr == '.' || isControlChr(c.Chr) {
		return
	}
	e.repeat.have = true
	e.repeat.lastBuf = buf
	e.repeat.lastCmd = c
	e.repeat.lastMot = mc
}

// repeatLast implements '.' (§4.3). A non-zero c.Count overrides the
// stored command's count (and forces the stored motion's count to 1).
func (e *Editor) repeatLast(c Cmd) bool {
	if !e.repeat.have || e.repeat.lastCmd.Chr == '.' {
		return false
	}

	lastBuf, lastCmd, lastMot := e.repeat.lastBuf, e.repeat.lastCmd, e.repeat.lastMot
	if lastCmd.Chr == 'u' {
		// undoStep toggles redo itself; pre-flipping here cancels that
		// toggle out, so repeating 'u' via '.' continues undoing (or
		// redoing) in the same direction instead of alternating the way
		// pressing 'u' twice directly does.
		e.repeat.redo = !e.repeat.redo
	}

	if c.Count != 0 {
		lastCmd.Count = c.Count
		lastMot.Count = 1
	}

	// enterInsert (reached through dispatch below, for i/I/a/A/o/O) wipes
	// insLog, so the log from the session being repeated has to be saved
	// before re-dispatching.
	savedLog := append([]rune(nil), e.insLog...)
	savedSkipFirst := e.insSkipFirst

	e.find.locked = true
	defer func() { e.find.locked = false }()

	before := e.mode
	e.dispatch(lastBuf, lastCmd, lastMot)

	if before == ModeCommand && e.mode == ModeInsert {
		start := 0
		if savedSkipFirst && len(savedLog) > 0 {
			start = 1
		}
		for _, r := range savedLog[start:] {
			e.feedInsert(r)
		}
		e.Feed(key.GKEsc)
	}
	return true
}

// undoStep implements 'u' (§4.3): one step through the host buffer's undo
// log, alternating direction on successive presses.
func (e *Editor) undoStep() bool {
	cursor, ok := e.buf().Undo(e.repeat.redo)
	if !ok {
		return false
	}
	e.setCursor(cursor)
	e.repeat.redo = !e.repeat.redo
	return true
}

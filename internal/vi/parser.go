package vi

import "github.com/vicore-editor/vicore/internal/key"

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isRegisterNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func (e *Editor) curCmdPtr() *Cmd {
	if e.target == targetMotion {
		return &e.mot
	}
	return &e.cur
}

// feedCommand implements feed() in command mode (§4.1): the persistent
// 5-phase state machine. GKEsc resets silently from any phase.
func (e *Editor) feedCommand(r rune) {
	if r == key.GKEsc {
		e.resetParser()
		return
	}

	switch e.phase {
	case phaseBufferDQuote:
		if r == '"' {
			e.phase = phaseBufferName
			return
		}
		e.handleCmdChar(r)
	case phaseBufferName:
		if !isRegisterNameChar(r) {
			e.fail()
			return
		}
		e.bufReg = r
		e.phase = phaseCmdChar
	case phaseCmdChar:
		e.handleCmdChar(r)
	case phaseCmdDouble:
		e.handleCmdDouble(r)
	case phaseCmdArg:
		e.handleCmdArg(r)
	}
}

// handleCmdChar is the CmdChar phase body, also tail-called directly from
// BufferDQuote when no register prefix was given.
func (e *Editor) handleCmdChar(r rune) {
	e.phase = phaseCmdChar
	cmdPtr := e.curCmdPtr()

	if isASCIIDigit(r) && (r != '0' || cmdPtr.Count != 0) {
		d := uint32(cmdPtr.Count)*10 + uint32(r-'0')
		if d > 0xFFFF {
			d = 0xFFFF
		}
		cmdPtr.Count = uint16(d)
		return
	}

	if r < 0 || r > 127 {
		e.fail()
		return
	}
	b := byte(r)
	entry := keysTable[b]
	if !entry.bound() {
		e.fail()
		return
	}

	if cmdPtr.Count == 0 && !entry.flags.has(flagZeroCount) {
		cmdPtr.Count = 1
	}
	cmdPtr.Chr = b

	switch {
	case entry.flags.has(flagIsDouble):
		e.phase = phaseCmdDouble
	case entry.flags.has(flagHasArg):
		e.phase = phaseCmdArg
	default:
		e.finalizeCmd(entry)
	}
}

// handleCmdDouble confirms a doubled operator (dd, yy, cc) and synthesizes
// the whole-current-line motion ('_') it stands for. A non-matching rune
// means the operator wasn't doubled after all — r is its motion's first
// character instead, so control falls through to the motion-filling phase
// exactly as finalizeCmd would have done for any other HasMotion entry.
func (e *Editor) handleCmdDouble(r rune) {
	cmdPtr := e.curCmdPtr()
	if byte(r) == cmdPtr.Chr {
		buf, cur := e.bufReg, e.cur
		// Count: 0 here, not cur.Count — yank() already multiplies this
		// motion's count by cur's, so the synthesized motion stands for
		// one line and the outer command's count supplies the "N" in
		// "Ndd".
		mot := Cmd{Count: 0, Chr: '_'}
		e.resetParser()
		e.dispatch(buf, cur, mot)
		return
	}
	e.target = targetMotion
	e.phase = phaseCmdChar
	e.handleCmdChar(r)
}

func (e *Editor) handleCmdArg(r rune) {
	cmdPtr := e.curCmdPtr()
	cmdPtr.Arg = r
	entry := keysTable[cmdPtr.Chr]
	e.finalizeCmd(entry)
}

// finalizeCmd applies the CmdChar finalization rules (§4.1): an entry
// reached while filling the motion slot must itself be a motion; an entry
// with HasMotion switches the parser to fill the motion slot instead of
// dispatching; anything else dispatches immediately.
func (e *Editor) finalizeCmd(entry keyEntry) {
	if e.target == targetMotion && !entry.flags.has(flagIsMotion) {
		e.fail()
		return
	}
	if entry.flags.has(flagHasMotion) {
		e.target = targetMotion
		e.phase = phaseCmdChar
		return
	}
	buf, cur, mot := e.bufReg, e.cur, e.mot
	e.resetParser()
	e.dispatch(buf, cur, mot)
}

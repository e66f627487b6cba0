package vi

// motionFunc is a motion primitive (§4.2). m arrives seeded with
// Beg == cursor, End == 0, Linewise == false; the function reports ok and,
// on success, fills in m.
type motionFunc func(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool

// actionFunc is an action primitive (§4.3). mc is the parsed motion, valid
// only when the bound entry has the HasMotion flag.
type actionFunc func(e *Editor, buf rune, c Cmd, mc Cmd) bool

// keyFlag is a bit in a keys-table entry's flags (§3).
type keyFlag uint8

const (
	flagIsMotion keyFlag = 1 << iota
	flagHasMotion
	flagIsDouble
	flagHasArg
	flagZeroCount
)

func (f keyFlag) has(bit keyFlag) bool { return f&bit != 0 }

// keyEntry is one slot of the 128-entry keys table: a flag set plus
// exactly one handler, discriminated by flagIsMotion (§3 invariant:
// IsMotion and HasMotion are mutually exclusive within one entry).
type keyEntry struct {
	flags  keyFlag
	motion motionFunc
	action actionFunc
}

func (k keyEntry) bound() bool { return k.motion != nil || k.action != nil }

var keysTable [128]keyEntry

func bindMotion(r byte, flags keyFlag, fn motionFunc) {
	keysTable[r] = keyEntry{flags: flags | flagIsMotion, motion: fn}
}

func bindAction(r byte, flags keyFlag, fn actionFunc) {
	keysTable[r] = keyEntry{flags: flags, action: fn}
}

func init() {
	registerMotions()
	registerActions()
}

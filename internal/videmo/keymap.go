package videmo

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vicore-editor/vicore/internal/key"
)

// TranslateKey turns a tcell key event into the rune the core's Feed
// expects: a decoded Unicode scalar for plain text, a C0 control code for
// a Ctrl-letter chord, or one of internal/key's sentinels for everything
// else. Mirrors the teacher's backend.convertEvent/convertKey tables, but
// maps directly into this repository's own rune vocabulary instead of an
// intermediate Key enum, since the core consumes runes one at a time.
func TranslateKey(ev *tcell.EventKey) (rune, bool) {
	if ev.Key() == tcell.KeyRune {
		return ev.Rune(), true
	}

	// Named keys are matched before the Ctrl-letter range: tcell's KeyEnter
	// and KeyBackspace share their codes with KeyCtrlM and KeyCtrlH.
	switch ev.Key() {
	case tcell.KeyEscape:
		return key.GKEsc, true
	case tcell.KeyEnter:
		return '\n', true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.GKBackspace, true
	case tcell.KeyUp:
		return key.GKUp, true
	case tcell.KeyDown:
		return key.GKDown, true
	case tcell.KeyLeft:
		return key.GKLeft, true
	case tcell.KeyRight:
		return key.GKRight, true
	case tcell.KeyPgUp:
		return key.GKPageUp, true
	case tcell.KeyPgDn:
		return key.GKPageDown, true
	case tcell.KeyF1:
		return key.GKF1, true
	case tcell.KeyF2:
		return key.GKF2, true
	case tcell.KeyF3:
		return key.GKF3, true
	case tcell.KeyF4:
		return key.GKF4, true
	case tcell.KeyF5:
		return key.GKF5, true
	case tcell.KeyF6:
		return key.GKF6, true
	case tcell.KeyF7:
		return key.GKF7, true
	case tcell.KeyF8:
		return key.GKF8, true
	case tcell.KeyF9:
		return key.GKF9, true
	case tcell.KeyF10:
		return key.GKF10, true
	case tcell.KeyF11:
		return key.GKF11, true
	case tcell.KeyF12:
		return key.GKF12, true
	}

	if letter, ok := ctrlLetterFromTcellKey(ev.Key()); ok {
		return key.Ctrl(letter), true
	}

	return 0, false
}

// ctrlLetterFromTcellKey maps tcell's KeyCtrlA..KeyCtrlZ constants to the
// lowercase letter key.Ctrl expects.
func ctrlLetterFromTcellKey(k tcell.Key) (rune, bool) {
	if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
		return 0, false
	}
	return 'a' + rune(k-tcell.KeyCtrlA), true
}

package vi

import "github.com/vicore-editor/vicore/internal/key"

// enterInsert switches to insert mode with a fresh, unlocked log. count is
// how many times the whole insertion session replays itself at Esc (§4.4's
// cnti).
func (e *Editor) enterInsert(count int) {
	e.mode = ModeInsert
	e.cntI = count
	e.insLog = e.insLog[:0]
	e.insLocked = false
	e.insSkipFirst = false
}

// feedInsert implements insert() (§4.4): one rune through the insertion
// interpreter.
func (e *Editor) feedInsert(r rune) {
	if !e.insLocked && r != key.GKEsc {
		if len(e.insLog) >= maxInsertLog {
			e.insLog = e.insLog[:0]
			e.insLocked = true
		} else {
			e.insLog = append(e.insLog, r)
		}
	}

	switch r {
	case key.GKEsc:
		e.finishInsert()
	case key.GKBackspace:
		if e.cursor() > 0 {
			cur := e.cursor()
			e.buf().Delete(cur-1, cur)
			e.setCursor(cur - 1)
		}
	case '\n':
		e.insertNewline()
	default:
		cur := e.cursor()
		e.buf().Insert(cur, r)
		e.setCursor(cur + 1)
	}
}

// insertNewline implements the indent-preserving newline handler (§4.4):
// split the line at the cursor, then copy the old line's leading blank
// runes onto the new line.
func (e *Editor) insertNewline() {
	b := e.buf()
	cur := e.cursor()
	oldBOL := b.BOL(cur)
	b.Insert(cur, '\n')
	cur++
	p := oldBOL
	steps := 0
	for steps < maxMotionScan && isBlank(b.Rune(p)) {
		b.Insert(cur, b.Rune(p))
		cur++
		p++
		steps++
	}
	e.setCursor(cur)
}

// finishInsert implements the Esc branch of insert() (§4.4): replay the
// log cntI-1 further times under lock, then land the cursor and commit.
func (e *Editor) finishInsert() {
	e.insLocked = true
	log := append([]rune(nil), e.insLog...)
	for i := 1; i < e.cntI; i++ {
		for _, r := range log {
			e.feedInsert(r)
		}
	}
	e.insLocked = false

	b := e.buf()
	cur := e.cursor()
	if b.Rune(cur-1) != '\n' {
		e.setCursor(cur - 1)
	}
	b.Commit()
	e.mode = ModeCommand
}

package vi

import "github.com/vicore-editor/vicore/internal/key"

func registerActions() {
	bindAction('y', flagHasMotion|flagIsDouble, a_y)
	bindAction('d', flagHasMotion|flagIsDouble, a_d)
	bindAction('x', 0, a_d)
	bindAction('c', flagHasMotion|flagIsDouble, a_c)
	bindAction('p', 0, a_pP)
	bindAction('P', 0, a_pP)
	bindAction('m', flagHasArg, a_m)

	bindAction('i', 0, a_ins)
	bindAction('I', 0, a_ins)
	bindAction('a', 0, a_ins)
	bindAction('A', 0, a_ins)
	bindAction('o', 0, a_ins)
	bindAction('O', 0, a_ins)

	bindAction('u', 0, func(e *Editor, buf rune, c, mc Cmd) bool { return e.undoStep() })
	bindAction('.', 0, func(e *Editor, buf rune, c, mc Cmd) bool { return e.repeatLast(c) })

	bindAction(ctrl('e'), 0, makeScrollCount(1))
	bindAction(ctrl('y'), 0, makeScrollCount(-1))
	bindAction(ctrl('d'), 0, makeScrollSticky(1))
	bindAction(ctrl('u'), 0, makeScrollSticky(-1))

	bindAction(ctrl('t'), 0, func(e *Editor, buf rune, c, mc Cmd) bool {
		e.win().ToggleTag()
		return true
	})
	bindAction(ctrl('i'), 0, func(e *Editor, buf rune, c, mc Cmd) bool {
		e.host.Search().Run(e.win(), e.buf().BOL(e.cursor()))
		return true
	})
	bindAction(ctrl('l'), flagHasArg, a_focus)
	bindAction(ctrl('w'), 0, func(e *Editor, buf rune, c, mc Cmd) bool {
		return e.host.Persist(e.buf()) == nil
	})
	bindAction(ctrl('q'), 0, func(e *Editor, buf rune, c, mc Cmd) bool {
		e.host.RequestExit()
		return true
	})
}

// ctrl adapts key.Ctrl's rune result to the keys table's byte address space.
func ctrl(letter rune) byte { return byte(key.Ctrl(letter)) }

// yank is the helper described in §4.3: it scales mc's count by count, runs
// mc as an operand motion from the cursor, and on success stores the
// selected span into buf's register (and the anonymous/numeric-ring slots
// per the usual rules).
func (e *Editor) yank(buf rune, count int, mc Cmd) (MotionResult, bool) {
	entry := keysTable[mc.Chr]
	if entry.motion == nil {
		return MotionResult{}, false
	}
	eff := mc.GetCount() * count
	if eff < 1 {
		eff = 1
	}
	if eff > 0xFFFF {
		eff = 0xFFFF
	}
	mc.Count = uint16(eff)

	m, ok := e.runMotion(entry.motion, true, mc)
	if !ok {
		return MotionResult{}, false
	}
	e.regs.store(buf, e.copyRange(m.Beg, m.End), m.Linewise)
	return m, true
}

func (e *Editor) copyRange(beg, end int) []rune {
	b := e.buf()
	out := make([]rune, 0, end-beg)
	for p := beg; p < end; p++ {
		out = append(out, b.Rune(p))
	}
	return out
}

// a_y implements y (§4.3): yank, and record the span as the selection.
func a_y(e *Editor, buf rune, c, mc Cmd) bool {
	m, ok := e.yank(buf, c.GetCount(), mc)
	if !ok {
		return false
	}
	b := e.buf()
	b.SetMark(selBegMark, m.Beg)
	b.SetMark(selEndMark, m.End)
	return true
}

// a_d implements d and x (§4.3): x synthesizes a single-char motion.
func a_d(e *Editor, buf rune, c, mc Cmd) bool {
	if c.Chr == 'x' {
		mc = Cmd{Count: 1, Chr: 'l'}
	}
	m, ok := e.yank(buf, c.GetCount(), mc)
	if !ok {
		return false
	}
	b := e.buf()
	b.Delete(m.Beg, m.End)
	e.setCursor(m.Beg)
	b.Commit()
	return true
}

// a_c implements c (§4.3): like d, but a line-wise span keeps its trailing
// newline and is shrunk to start at the first non-blank, and the editor
// ends in insert mode rather than command mode.
func a_c(e *Editor, buf rune, c, mc Cmd) bool {
	m, ok := e.yank(buf, c.GetCount(), mc)
	if !ok {
		return false
	}
	b := e.buf()
	beg, end := m.Beg, m.End
	if m.Linewise {
		p := b.BOL(beg)
		scanWhile(b, &p, 1, isBlank)
		beg = p
		end--
	}
	b.Delete(beg, end)
	e.setCursor(beg)
	e.enterInsert(1)
	return true
}

// a_pP implements p and P (§4.3): put the named (or anonymous) register's
// contents count times, positioning the cursor per the slot's mode and the
// command variant before inserting.
func a_pP(e *Editor, buf rune, c, mc Cmd) bool {
	slot, ok := e.regs.get(buf)
	if !ok || len(slot.runes) == 0 {
		return false
	}
	b := e.buf()
	cur := e.cursor()

	var pos int
	switch {
	case slot.linemode && c.Chr == 'P':
		pos = b.BOL(cur)
	case slot.linemode:
		pos = b.EOL(cur) + 1
	case c.Chr == 'p' && b.Rune(cur) != '\n':
		pos = cur + 1
	default:
		pos = cur
	}

	insertPos := pos
	for i := 0; i < c.GetCount(); i++ {
		for _, r := range slot.runes {
			b.Insert(insertPos, r)
			insertPos++
		}
	}
	e.setCursor(pos)
	b.Commit()
	return true
}

// a_m implements m (§4.3): set a buffer mark at the cursor.
func a_m(e *Editor, buf rune, c, mc Cmd) bool {
	e.buf().SetMark(c.Arg, e.cursor())
	return true
}

// a_ins implements i, I, a, A, o and O (§4.3): position the cursor per the
// variant and enter insert mode. o/O additionally drive the
// indent-preserving newline handler immediately, through the same
// feedInsert path a typed Enter uses, so the opened line's leading
// whitespace and the insertion log stay consistent with a typed '\n'.
func a_ins(e *Editor, buf rune, c, mc Cmd) bool {
	b := e.buf()
	cur := e.cursor()
	switch c.Chr {
	case 'a':
		if b.Rune(cur) != '\n' {
			cur++
		}
	case 'A':
		cur = b.EOL(cur)
	case 'I', 'O':
		p := b.BOL(cur)
		scanWhile(b, &p, 1, isBlank)
		cur = p
	case 'o':
		cur = b.EOL(cur)
	}
	e.setCursor(cur)
	e.enterInsert(c.GetCount())

	switch c.Chr {
	case 'o':
		e.insSkipFirst = true
		e.feedInsert('\n')
	case 'O':
		saved := cur
		e.insSkipFirst = true
		e.feedInsert('\n')
		e.setCursor(saved)
	}
	return true
}

func makeScrollCount(sign int) actionFunc {
	return func(e *Editor, buf rune, c, mc Cmd) bool {
		e.scrolling = true
		e.win().Scroll(sign * c.GetCount())
		return true
	}
}

// makeScrollSticky implements ^U/^D (§4.3): a non-zero count becomes the
// new sticky scroll count; otherwise the last sticky count is reused, or a
// third of the visible window the first time it's ever needed.
func makeScrollSticky(sign int) actionFunc {
	return func(e *Editor, buf rune, c, mc Cmd) bool {
		if c.Count != 0 {
			e.scrollCount = c.GetCount()
		} else if e.scrollCount == 0 {
			e.scrollCount = e.win().VisibleLines() / 3
			if e.scrollCount == 0 {
				e.scrollCount = 1
			}
		}
		e.scrolling = true
		e.win().Scroll(sign * e.scrollCount)
		return true
	}
}

// a_focus implements ^L followed by h/j/k/l (§4.3): ^L is bound with
// flagHasArg so the parser captures the direction key as c.Arg the same
// way it captures f/F/t/T's target.
func a_focus(e *Editor, buf rune, c, mc Cmd) bool {
	switch c.Arg {
	case 'h', 'j', 'k', 'l':
	default:
		return false
	}
	return e.host.MoveFocus(c.Arg)
}

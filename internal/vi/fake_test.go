package vi

import "github.com/vicore-editor/vicore/internal/key"

// fakeBuffer is a minimal rune-slice Buffer for exercising the core without
// pulling in a real terminal host, the same narrow-fake approach the
// teacher's own parser tests use instead of a full buffer implementation.
type fakeBuffer struct {
	text      []rune
	marks     map[rune]int
	undoStack [][]rune
	redoStack [][]rune
	pending   bool
	preEdit   []rune
}

func newFakeBuffer(s string) *fakeBuffer {
	return &fakeBuffer{text: []rune(s), marks: make(map[rune]int)}
}

func (b *fakeBuffer) Rune(offset int) rune {
	if offset < 0 || offset >= len(b.text) {
		return '\n'
	}
	return b.text[offset]
}

// snapshotBeforeEdit records the pre-mutation text once per edit group, the
// first time Insert or Delete touches it since the last Commit.
func (b *fakeBuffer) snapshotBeforeEdit() {
	if !b.pending {
		b.preEdit = append([]rune(nil), b.text...)
	}
}

func (b *fakeBuffer) Insert(offset int, r rune) {
	b.snapshotBeforeEdit()
	out := make([]rune, 0, len(b.text)+1)
	out = append(out, b.text[:offset]...)
	out = append(out, r)
	out = append(out, b.text[offset:]...)
	b.text = out
	b.pending = true
}

func (b *fakeBuffer) Delete(beg, end int) {
	if beg < 0 {
		beg = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if beg >= end {
		return
	}
	b.snapshotBeforeEdit()
	b.text = append(b.text[:beg], b.text[end:]...)
	b.pending = true
}

func (b *fakeBuffer) BOL(offset int) int {
	p := offset
	for p > 0 && b.Rune(p-1) != '\n' {
		p--
	}
	return p
}

func (b *fakeBuffer) EOL(offset int) int {
	p := offset
	if p < 0 {
		p = 0
	}
	for b.Rune(p) != '\n' {
		p++
	}
	return p
}

func (b *fakeBuffer) lineStarts() []int {
	starts := []int{0}
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (b *fakeBuffer) LineCol(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	starts := b.lineStarts()
	idx := 0
	for i, s := range starts {
		if s <= offset {
			idx = i
		}
	}
	return idx, offset - starts[idx]
}

func (b *fakeBuffer) Offset(line, col int) int {
	starts := b.lineStarts()
	if line < 0 {
		line = 0
	}
	if line >= len(starts) {
		line = len(starts) - 1
	}
	base := starts[line]
	end := base
	for b.Rune(end) != '\n' {
		end++
	}
	lineLen := end - base
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		col = lineLen
	}
	return base + col
}

func (b *fakeBuffer) Mark(name rune) (int, bool) {
	off, ok := b.marks[name]
	return off, ok
}

func (b *fakeBuffer) SetMark(name rune, offset int) { b.marks[name] = offset }

func (b *fakeBuffer) Commit() {
	if !b.pending {
		return
	}
	b.undoStack = append(b.undoStack, b.preEdit)
	b.preEdit = nil
	b.pending = false
	b.redoStack = nil
}

func (b *fakeBuffer) Undo(redo bool) (int, bool) {
	if redo {
		if len(b.redoStack) == 0 {
			return 0, false
		}
		snap := b.redoStack[len(b.redoStack)-1]
		b.redoStack = b.redoStack[:len(b.redoStack)-1]
		b.undoStack = append(b.undoStack, append([]rune(nil), b.text...))
		b.text = snap
		return len(b.text), true
	}
	if len(b.undoStack) == 0 {
		return 0, false
	}
	snap := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.redoStack = append(b.redoStack, append([]rune(nil), b.text...))
	b.text = snap
	return len(b.text), true
}

var _ Buffer = (*fakeBuffer)(nil)

// fakeWindow is a single-viewport Window over a fakeBuffer.
type fakeWindow struct {
	buf     *fakeBuffer
	cursor  int
	topLine int
	lines   int
	tag     bool
}

func newFakeWindow(buf *fakeBuffer, lines int) *fakeWindow {
	return &fakeWindow{buf: buf, lines: lines}
}

func (w *fakeWindow) Buffer() Buffer { return w.buf }
func (w *fakeWindow) Cursor() int    { return w.cursor }
func (w *fakeWindow) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	w.cursor = offset
}
func (w *fakeWindow) VisibleLines() int      { return w.lines }
func (w *fakeWindow) LineStart(i int) int    { return w.buf.Offset(w.topLine+i, 0) }
func (w *fakeWindow) Scroll(delta int)       { w.topLine += delta }
func (w *fakeWindow) Edge()                  {}
func (w *fakeWindow) ToggleTag()             { w.tag = !w.tag }

var _ Window = (*fakeWindow)(nil)

// fakeSearcher is a literal, wraparound Searcher, plus recorders for Run/Put
// so tests can assert on what the core asked the host to do.
type fakeSearcher struct {
	runCalls []int
	putCalls []int
	failLook bool
}

func (s *fakeSearcher) Look(win Window, runes []rune, reverse bool) error {
	if s.failLook || len(runes) == 0 {
		return errFakeNoMatch
	}
	b := win.Buffer().(*fakeBuffer)
	needle := runes
	cur := win.Cursor()

	find := func(from, to, step int) int {
		for i := from; i != to; i += step {
			match := true
			for j, r := range needle {
				if b.Rune(i+j) != r {
					match = false
					break
				}
			}
			if match {
				return i
			}
		}
		return -1
	}

	if reverse {
		if idx := find(cur-1, -1, -1); idx >= 0 {
			win.SetCursor(idx)
			return nil
		}
		if idx := find(len(b.text)-len(needle), cur, -1); idx >= 0 {
			win.SetCursor(idx)
			return nil
		}
		return errFakeNoMatch
	}

	if idx := find(cur+1, len(b.text)-len(needle)+1, 1); idx >= 0 {
		win.SetCursor(idx)
		return nil
	}
	if idx := find(0, cur+1, 1); idx >= 0 {
		win.SetCursor(idx)
		return nil
	}
	return errFakeNoMatch
}

func (s *fakeSearcher) Run(win Window, offset int) { s.runCalls = append(s.runCalls, offset) }

func (s *fakeSearcher) Put(buf Buffer, flags int) error {
	s.putCalls = append(s.putCalls, flags)
	return nil
}

var _ Searcher = (*fakeSearcher)(nil)

type fakeNoMatchErr struct{}

func (fakeNoMatchErr) Error() string { return "no match" }

var errFakeNoMatch = fakeNoMatchErr{}

// fakeHost is a single-window Host wired to a fakeSearcher, recording
// Persist/RequestExit/MoveFocus calls for assertions.
type fakeHost struct {
	win          *fakeWindow
	search       *fakeSearcher
	persisted    int
	exitRequest  bool
	focusDir     rune
	focusResult  bool
	persistErr   error
}

func newFakeHost(win *fakeWindow) *fakeHost {
	return &fakeHost{win: win, search: &fakeSearcher{}, focusResult: true}
}

func (h *fakeHost) CurrentWindow() Window { return h.win }
func (h *fakeHost) Search() Searcher      { return h.search }
func (h *fakeHost) MoveFocus(dir rune) bool {
	h.focusDir = dir
	return h.focusResult
}
func (h *fakeHost) Persist(buf Buffer) error {
	h.persisted++
	return h.persistErr
}
func (h *fakeHost) RequestExit() { h.exitRequest = true }

var _ Host = (*fakeHost)(nil)

// harness bundles an Editor with its fake collaborators for a test, plus a
// feed helper to drive Feed one rune at a time.
type harness struct {
	buf  *fakeBuffer
	win  *fakeWindow
	host *fakeHost
	ed   *Editor
	errs *stringWriter
}

func newHarness(text string) *harness {
	buf := newFakeBuffer(text)
	win := newFakeWindow(buf, 10)
	host := newFakeHost(win)
	errs := &stringWriter{}
	return &harness{buf: buf, win: win, host: host, ed: NewEditor(host, errs), errs: errs}
}

func (h *harness) feed(s string) {
	for _, r := range s {
		h.ed.Feed(r)
	}
}

// feedKeys drives Feed with explicit runes, for sequences that include a
// key.* sentinel (Esc, Backspace, ...) a plain string can't carry.
func (h *harness) feedKeys(rs ...rune) {
	for _, r := range rs {
		h.ed.Feed(r)
	}
}

// feedThenEsc is shorthand for the common case of a literal sequence followed by
// the Esc sentinel.
func (h *harness) feedThenEsc(s string) {
	h.feed(s)
	h.ed.Feed(key.GKEsc)
}

func (h *harness) text() string { return string(h.buf.text) }

// stringWriter is a tiny io.Writer collecting everything written to it, for
// asserting on the core's one diagnostic line.
type stringWriter struct{ s string }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.s += string(p)
	return len(p), nil
}

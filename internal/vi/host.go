package vi

// SelBegMark and SelEndMark are the mark names Buffer.Mark reports the
// current selection under. They sit outside the a-z/'/'`'/m address range a
// user-set mark can ever occupy, so a host's Buffer implementation can key
// its mark map on these directly instead of guessing the core's convention.
const (
	SelBegMark rune = -1
	SelEndMark rune = -2
)

// selBegMark and selEndMark are kept as package-local names for the core's
// own call sites below.
const (
	selBegMark = SelBegMark
	selEndMark = SelEndMark
)

// Buffer is the host-owned rune sequence the core edits. It owns storage
// and the undo log; the core only ever reads and mutates it through this
// interface.
//
// Limbo: offsets before 0 and at-or-past the end of the real text are
// "limbo" and read back as '\n' forever. Several motions (%, G, n/N) rely
// on this contract to terminate cleanly instead of special-casing the
// buffer boundary.
type Buffer interface {
	// Rune returns the rune at offset, or '\n' if offset is in limbo.
	Rune(offset int) rune
	// Insert places r at offset, shifting runes at and after offset
	// right by one.
	Insert(offset int, r rune)
	// Delete removes the half-open range [beg, end).
	Delete(beg, end int)
	// BOL returns the offset of the first rune of the line containing
	// offset.
	BOL(offset int) int
	// EOL returns the offset of the trailing newline of the line
	// containing offset.
	EOL(offset int) int
	// LineCol converts offset to a 0-based (line, column) pair. A
	// column past a line's last real column clamps to that line's
	// newline column.
	LineCol(offset int) (line, col int)
	// Offset is the inverse of LineCol. Out-of-range columns clamp to
	// the line's first or last column; out-of-range lines clamp to the
	// first or last line.
	Offset(line, col int) int
	// Mark returns the offset recorded under name and whether it is
	// set. The names SelBeg and SelEnd hold the current selection.
	Mark(name rune) (offset int, ok bool)
	// SetMark records offset under name.
	SetMark(name rune, offset int)
	// Commit finalizes the edits made since the previous Commit into a
	// single undo record.
	Commit()
	// Undo steps the undo log backward (redo == false) or forward
	// (redo == true) by one record and returns the cursor position that
	// record leaves behind. ok is false if there is nothing further in
	// that direction.
	Undo(redo bool) (cursor int, ok bool)
}

// Window is the focused editing window (§6's curwin).
type Window interface {
	// Buffer returns the window's buffer handle (eb).
	Buffer() Buffer
	// Cursor returns the window's cursor offset (cu).
	Cursor() int
	// SetCursor moves the window's cursor.
	SetCursor(offset int)
	// VisibleLines returns the number of lines currently on screen (nl).
	VisibleLines() int
	// LineStart returns the buffer offset of the start of the i-th
	// visible line (l[i]), 0-indexed from the top of the window.
	LineStart(i int) int
	// Scroll shifts the viewport by delta lines (win_scroll).
	Scroll(delta int)
	// Edge recenters the viewport on the cursor if it has scrolled off
	// screen (win_edge). The core never calls it; a host's render loop
	// skips it while Editor.Scrolling() reports true.
	Edge()
	// ToggleTag shows or hides the tag (command) window (win_tag_toggle).
	ToggleTag()
}

// Searcher is the host's search/exec subsystem.
type Searcher interface {
	// Look runs a literal, non-regexp search for runes starting at the
	// window's cursor and wrapping through limbo; reverse searches
	// backward. It returns an error of its own choosing on a miss (the
	// core only checks err != nil).
	Look(win Window, runes []rune, reverse bool) error
	// Run executes the line at offset as an external command.
	Run(win Window, offset int)
	// Put writes buf out via the host; flags are host-defined.
	Put(buf Buffer, flags int) error
}

// Host is every external collaborator the core depends on (§6): the window
// manager, the search/exec subsystem, and the handful of whole-editor
// operations (focus switching, persistence, graceful exit) that don't
// belong to any one buffer or window.
type Host interface {
	// CurrentWindow returns the focused window.
	CurrentWindow() Window
	// Search returns the search/exec subsystem.
	Search() Searcher
	// MoveFocus switches focus to the window neighboring the current
	// one in direction dir ('h', 'j', 'k', or 'l'). ok is false if there
	// is no neighbor in that direction.
	MoveFocus(dir rune) (ok bool)
	// Persist writes buf's contents to stable storage (^W).
	Persist(buf Buffer) error
	// RequestExit asks the host to begin a graceful shutdown (^Q).
	RequestExit()
}

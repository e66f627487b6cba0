package videmo

import "github.com/vicore-editor/vicore/internal/vi"

// Window is a single-viewport implementation of vi.Window over a Buffer.
type Window struct {
	buf     *Buffer
	cursor  int
	topLine int
	height  int
	tag     bool
}

// NewWindow returns a window of height visible lines over buf.
func NewWindow(buf *Buffer, height int) *Window {
	if height < 1 {
		height = 1
	}
	return &Window{buf: buf, height: height}
}

// Buffer implements vi.Window.
func (w *Window) Buffer() vi.Buffer { return w.buf }

// Cursor implements vi.Window.
func (w *Window) Cursor() int { return w.cursor }

// SetCursor implements vi.Window.
func (w *Window) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	w.cursor = offset
}

// VisibleLines implements vi.Window.
func (w *Window) VisibleLines() int { return w.height }

// LineStart implements vi.Window: the buffer offset of the i-th visible
// line, 0-indexed from the top of the viewport.
func (w *Window) LineStart(i int) int {
	return w.buf.Offset(w.topLine+i, 0)
}

// Scroll implements vi.Window.
func (w *Window) Scroll(delta int) {
	w.topLine += delta
	if w.topLine < 0 {
		w.topLine = 0
	}
}

// Edge implements vi.Window: recenter the viewport if the cursor has
// scrolled off screen. Callers should skip this while Editor.Scrolling()
// is true, per the interface's scroll-lock note.
func (w *Window) Edge() {
	line, _ := w.buf.LineCol(w.cursor)
	switch {
	case line < w.topLine:
		w.topLine = line
	case line >= w.topLine+w.height:
		w.topLine = line - w.height + 1
	}
	if w.topLine < 0 {
		w.topLine = 0
	}
}

// ToggleTag implements vi.Window.
func (w *Window) ToggleTag() { w.tag = !w.tag }

// TagVisible reports whether the tag (command) window is shown.
func (w *Window) TagVisible() bool { return w.tag }

// TopLine reports the buffer line currently at the top of the viewport,
// for the renderer.
func (w *Window) TopLine() int { return w.topLine }

// Resize changes the window's visible-line count, e.g. on a terminal
// resize event.
func (w *Window) Resize(height int) {
	if height < 1 {
		height = 1
	}
	w.height = height
}

var _ vi.Window = (*Window)(nil)

package videmo

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/vicore-editor/vicore/internal/vi"
)

// Searcher is a literal, wraparound implementation of vi.Searcher. Run
// executes the addressed line as a shell command, the way the original
// editor's ! mechanism does; Put writes a buffer to an arbitrary sink
// rather than a fixed file, for whatever a caller wants to do with it.
type Searcher struct {
	out        io.Writer
	lastOutput string
}

// NewSearcher returns a Searcher that discards Run's command output
// unless SetOutput is called.
func NewSearcher() *Searcher {
	return &Searcher{out: io.Discard}
}

// SetOutput redirects Run's captured command output.
func (s *Searcher) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.out = w
}

// LastOutput returns the most recent Run's captured output, for a
// renderer's status line.
func (s *Searcher) LastOutput() string { return s.lastOutput }

// Look implements vi.Searcher: literal forward or backward search from
// the cursor, wrapping once around the buffer's real text.
func (s *Searcher) Look(win vi.Window, runes []rune, reverse bool) error {
	buf, ok := win.Buffer().(*Buffer)
	if !ok || len(runes) == 0 {
		return errNoMatch
	}
	text := []rune(buf.Text())
	needle := string(runes)
	cur := win.Cursor()

	if reverse {
		idx := lastIndexBefore(string(text), needle, cur)
		if idx < 0 {
			idx = lastIndexBefore(string(text), needle, len(text))
		}
		if idx < 0 {
			return errNoMatch
		}
		win.SetCursor(idx)
		return nil
	}

	idx := firstIndexAfter(string(text), needle, cur+1)
	if idx < 0 {
		idx = firstIndexAfter(string(text), needle, 0)
	}
	if idx < 0 {
		return errNoMatch
	}
	win.SetCursor(idx)
	return nil
}

func firstIndexAfter(text, needle string, from int) int {
	r, n := []rune(text), []rune(needle)
	if from < 0 {
		from = 0
	}
	for i := from; i+len(n) <= len(r); i++ {
		if runesEqual(r[i:i+len(n)], n) {
			return i
		}
	}
	return -1
}

func lastIndexBefore(text, needle string, before int) int {
	r, n := []rune(text), []rune(needle)
	if before > len(r) {
		before = len(r)
	}
	for i := before - len(n); i >= 0; i-- {
		if runesEqual(r[i:i+len(n)], n) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var errNoMatch = errNoMatchErr{}

type errNoMatchErr struct{}

func (errNoMatchErr) Error() string { return "no match" }

// Run implements vi.Searcher: runs the line at offset as a shell command
// and captures its combined output.
func (s *Searcher) Run(win vi.Window, offset int) {
	buf, ok := win.Buffer().(*Buffer)
	if !ok {
		return
	}
	eol := buf.EOL(offset)
	line := string([]rune(buf.Text())[offset:eol])
	if strings.TrimSpace(line) == "" {
		return
	}

	out, _ := exec.Command("sh", "-c", line).CombinedOutput()
	s.lastOutput = strings.TrimRight(string(out), "\n")
	io.WriteString(s.out, s.lastOutput)
}

// Put implements vi.Searcher.
func (s *Searcher) Put(buf vi.Buffer, flags int) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return errNoMatch
	}
	_, err := io.WriteString(s.out, b.Text())
	return err
}

var _ vi.Searcher = (*Searcher)(nil)

// Host is a single-window implementation of vi.Host: one buffer, one
// window, a literal Searcher, and a file it persists to.
type Host struct {
	path     string
	win      *Window
	search   *Searcher
	exitChan chan struct{}
}

// NewHost returns a Host editing win's buffer through win, persisting to
// path.
func NewHost(path string, win *Window) *Host {
	return &Host{
		path:     path,
		win:      win,
		search:   NewSearcher(),
		exitChan: make(chan struct{}),
	}
}

// CurrentWindow implements vi.Host.
func (h *Host) CurrentWindow() vi.Window { return h.win }

// Search implements vi.Host.
func (h *Host) Search() vi.Searcher { return h.search }

// MoveFocus implements vi.Host: this demo has exactly one window, so
// there is never a neighbor to move to.
func (h *Host) MoveFocus(dir rune) bool { return false }

// Persist implements vi.Host.
func (h *Host) Persist(buf vi.Buffer) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return errNoMatch
	}
	return os.WriteFile(h.path, []byte(b.Text()), 0o644)
}

// RequestExit implements vi.Host.
func (h *Host) RequestExit() {
	select {
	case <-h.exitChan:
	default:
		close(h.exitChan)
	}
}

// ExitRequested reports whether RequestExit has been called, for the
// demo's event loop.
func (h *Host) ExitRequested() bool {
	select {
	case <-h.exitChan:
		return true
	default:
		return false
	}
}

var _ vi.Host = (*Host)(nil)

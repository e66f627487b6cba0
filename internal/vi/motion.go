package vi

// maxMotionScan bounds the otherwise-open-ended rune/line scans below
// (word, paragraph, search-adjacent motions) against a host buffer whose
// limbo region — '\n' forever past the real end of text, per §9 — would
// otherwise make a malformed or pathological Buffer implementation spin
// forever. No real document needs anywhere close to this many steps for a
// single motion.
const maxMotionScan = 1 << 16

func registerMotions() {
	bindMotion('h', 0, motLeft)
	bindMotion('l', 0, motRight)
	bindMotion('j', 0, motDown)
	bindMotion('k', 0, motUp)

	bindMotion('f', flagHasArg, motFindChar)
	bindMotion('F', flagHasArg, motFindChar)
	bindMotion('t', flagHasArg, motFindChar)
	bindMotion('T', flagHasArg, motFindChar)
	bindMotion(';', 0, motRepeatFind)
	bindMotion(',', 0, motRepeatFind)

	bindMotion('0', 0, motBOL)
	bindMotion('^', 0, motFirstNonBlank)
	bindMotion('$', 0, motLineEnd)
	bindMotion('_', 0, motSelectLine)

	bindMotion('w', 0, motWordFwd)
	bindMotion('W', 0, motWordFwd)
	bindMotion('e', 0, motWordEnd)
	bindMotion('E', 0, motWordEnd)
	bindMotion('b', 0, motWordBack)
	bindMotion('B', 0, motWordBack)

	bindMotion('{', 0, motParagraph)
	bindMotion('}', 0, motParagraph)

	bindMotion('%', 0, motBracketMatch)

	bindMotion('G', flagZeroCount, motGotoLine)

	bindMotion('H', 0, motScreenRel)
	bindMotion('M', 0, motScreenRel)
	bindMotion('L', 0, motScreenRel)

	bindMotion('\'', flagHasArg, motMark)
	bindMotion('`', flagHasArg, motMark)

	bindMotion('n', 0, motSearch)
	bindMotion('N', 0, motSearch)

	bindMotion('/', 0, motSelectionRegion)
}

// isBlank is the narrow "horizontal whitespace" predicate used by ^, $
// and the paragraph line classifier.
func isBlank(r rune) bool { return r == ' ' || r == '\t' }

// isSpaceC mirrors C's isspace(), the word predicate for the uppercase
// (WORD) motion variants.
func isSpaceC(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isWordLower is the lowercase word predicate (§4.2, §9): ASCII alpha,
// digit, underscore, or the 0xC0-0xFF Latin-1 block. The block covers a
// few non-letters (×, ÷); that is a documented approximation inherited
// unchanged from the source, not a bug to quietly fix here.
func isWordLower(r rune) bool {
	switch {
	case r == '_':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0xC0 && r <= 0xFF:
		return true
	}
	return false
}

func isWord(r rune, upper bool) bool {
	if upper {
		return !isSpaceC(r)
	}
	return isWordLower(r)
}

// scanWhile advances pos by step while pred holds, bounded by
// maxMotionScan. It reports how many steps were taken.
func scanWhile(buf Buffer, pos *int, step int, pred func(rune) bool) int {
	n := 0
	for n < maxMotionScan && pred(buf.Rune(*pos)) {
		*pos += step
		n++
	}
	return n
}

func atOrBeforeFirstNonBlank(buf Buffer, pos int) bool {
	bol := buf.BOL(pos)
	fnb := bol
	scanWhile(buf, &fnb, 1, isBlank)
	_, posCol := buf.LineCol(pos)
	_, fnbCol := buf.LineCol(fnb)
	return posCol <= fnbCol
}

func motLeft(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	line, col := buf.LineCol(e.cursor())
	if col == 0 {
		return false
	}
	target := col - c.GetCount()
	if target < 0 {
		target = 0
	}
	m.End = buf.Offset(line, target)
	return true
}

func motRight(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	line, col := buf.LineCol(e.cursor())
	off := buf.Offset(line, col+c.GetCount())
	if !asOperand && buf.Rune(off) == '\n' {
		return false
	}
	m.End = off
	return true
}

func motUp(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	line, col := buf.LineCol(e.cursor())
	n := c.GetCount()
	if n > line {
		return false
	}
	m.End = buf.Offset(line-n, col)
	if asOperand {
		lineExtend(e, m)
	}
	return true
}

func motDown(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	line, col := buf.LineCol(e.cursor())
	m.End = buf.Offset(line+c.GetCount(), col)
	if asOperand {
		lineExtend(e, m)
	}
	return true
}

// motFindChar implements f, F, t and T: a char search within the current
// line (§4.2). Lowercase searches forward, uppercase backward; f/F land on
// the target, t/T stop one short of it.
func motFindChar(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	forward := c.Chr == 'f' || c.Chr == 't'
	till := c.Chr == 't' || c.Chr == 'T'
	dir := 1
	if !forward {
		dir = -1
	}
	buf := e.buf()
	n := c.GetCount()
	pos := e.cursor()
	found := 0
	for found < n {
		pos += dir
		r := buf.Rune(pos)
		if r == '\n' {
			return false
		}
		if r == c.Arg {
			found++
		}
	}
	end := pos
	if till {
		end = pos - dir
	}
	if asOperand && forward {
		end++
	}
	m.End = end
	if !e.find.locked {
		e.find.chr = rune(c.Chr)
		e.find.arg = c.Arg
	}
	return true
}

func flipFindCase(r rune) rune {
	switch r {
	case 'f':
		return 'F'
	case 'F':
		return 'f'
	case 't':
		return 'T'
	case 'T':
		return 't'
	}
	return r
}

// motRepeatFind implements ; and , (§4.2): replay the last t/T/f/F target,
// ',' with direction flipped.
func motRepeatFind(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	if e.find.chr == 0 {
		return false
	}
	chr := e.find.chr
	if c.Chr == ',' {
		chr = flipFindCase(chr)
	}
	sub := Cmd{Count: c.Count, Chr: byte(chr), Arg: e.find.arg}
	e.find.locked = true
	defer func() { e.find.locked = false }()
	return motFindChar(e, asOperand, sub, m)
}

func motBOL(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	bol := e.buf().BOL(e.cursor())
	if !asOperand && bol == e.cursor() {
		return false
	}
	m.End = bol
	return true
}

func motFirstNonBlank(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	p := buf.BOL(e.cursor())
	scanWhile(buf, &p, 1, isBlank)
	if !asOperand && p == e.cursor() {
		return false
	}
	m.End = p
	return true
}

// motLineEnd implements $ (§4.2): count moves to the end of the N-th
// following line; becomes line-wise when count > 1 and the cursor started
// at-or-before its line's first non-blank.
func motLineEnd(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	cur := e.cursor()
	n := c.GetCount()
	startAtOrBefore := atOrBeforeFirstNonBlank(buf, cur)

	target := cur
	for i := 1; i < n; i++ {
		target = buf.EOL(target) + 1
	}
	eol := buf.EOL(target)

	end := eol
	if asOperand || buf.Rune(cur) == '\n' {
		end++
	}
	m.End = end

	if n > 1 && startAtOrBefore {
		m.Linewise = true
		m.Beg = buf.BOL(cur)
		m.End = eol + 1
	}
	return true
}

// motSelectLine implements _ (§4.2): delegate to j with count-1, then land
// on the target line's first non-blank; always line-wise as an operand.
func motSelectLine(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	cur := e.cursor()
	line, col := buf.LineCol(cur)
	off := buf.Offset(line+c.GetCount()-1, col)

	if asOperand {
		m.Linewise = true
		m.Beg = buf.BOL(cur)
		m.End = buf.EOL(off) + 1
		return true
	}
	p := buf.BOL(off)
	scanWhile(buf, &p, 1, isBlank)
	m.End = p
	return true
}

// motWordFwd implements w and W (§4.2): the forward word-start two-state
// DFA (skip the current word run if on one, then skip the following
// non-word run). As an operand, the final iteration will not cross a
// trailing newline.
func motWordFwd(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	upper := c.Chr == 'W'
	n := c.GetCount()
	pos := e.cursor()
	for i := 0; i < n; i++ {
		last := i == n-1
		if isWord(buf.Rune(pos), upper) {
			scanWhile(buf, &pos, 1, func(r rune) bool { return isWord(r, upper) })
		}
		steps := 0
		for steps < maxMotionScan && !isWord(buf.Rune(pos), upper) {
			if asOperand && last && buf.Rune(pos) == '\n' {
				break
			}
			pos++
			steps++
		}
	}
	m.End = pos
	return true
}

// motWordEnd implements e and E (§4.2): forward to the end of a word. As
// an operand, the landing rune is included.
func motWordEnd(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	upper := c.Chr == 'E'
	n := c.GetCount()
	pos := e.cursor()
	for i := 0; i < n; i++ {
		pos++
		scanWhile(buf, &pos, 1, func(r rune) bool { return !isWord(r, upper) })
		scanWhile(buf, &pos, 1, func(r rune) bool { return isWord(r, upper) })
		pos--
	}
	end := pos
	if asOperand {
		end++
	}
	m.End = end
	return true
}

// motWordBack implements b and B (§4.2): the symmetric backward DFA.
func motWordBack(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	upper := c.Chr == 'B'
	n := c.GetCount()
	pos := e.cursor()
	for i := 0; i < n; i++ {
		pos--
		scanWhile(buf, &pos, -1, func(r rune) bool { return !isWord(r, upper) })
		scanWhile(buf, &pos, -1, func(r rune) bool { return isWord(r, upper) })
		pos++
	}
	m.End = pos
	return true
}

type lineKind uint8

const (
	lineText lineKind = iota
	lineBlank
	lineFormFeed
)

func classifyLine(buf Buffer, line int) lineKind {
	p := buf.Offset(line, 0)
	bol := buf.BOL(p)
	scanWhile(buf, &bol, 1, isBlank)
	switch buf.Rune(bol) {
	case '\n':
		return lineBlank
	case '\f':
		return lineFormFeed
	default:
		return lineText
	}
}

// motParagraph implements { and } (§4.2): a two-phase scan over line
// kinds (text vs. the blank/form-feed boundary kinds), skipping a leading
// run of boundary lines when starting on one, then scanning to the next
// boundary line.
func motParagraph(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	cur := e.cursor()
	line, _ := buf.LineCol(cur)
	step := 1
	if c.Chr == '{' {
		step = -1
	}
	n := c.GetCount()
	for i := 0; i < n; i++ {
		steps := 0
		for steps < maxMotionScan && classifyLine(buf, line) != lineText {
			line += step
			steps++
		}
		steps = 0
		for steps < maxMotionScan && classifyLine(buf, line) == lineText {
			line += step
			steps++
		}
	}
	target := buf.Offset(line, 0)
	m.End = target
	if asOperand && atOrBeforeFirstNonBlank(buf, cur) {
		m.Linewise = true
		m.Beg = buf.BOL(cur)
	}
	return true
}

var bracketOpen = map[rune]rune{'<': '>', '{': '}', '(': ')', '[': ']'}
var bracketClose = map[rune]rune{'>': '<', '}': '{', ')': '(', ']': '['}

// motBracketMatch implements % (§4.2, §9): find the first bracket
// delimiter at-or-after the cursor on the current line, then scan for its
// match with a signed depth counter. '<' and '>' participate as a
// delimiter pair even though matching them is of dubious value, because
// the source allows it (§9 open question, resolved as "keep allowing it").
func motBracketMatch(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	cur := e.cursor()
	eol := buf.EOL(cur)

	pos := cur
	for !isOpenDelim(buf.Rune(pos)) && !isCloseDelim(buf.Rune(pos)) {
		if pos >= eol {
			return false
		}
		pos++
	}

	start := buf.Rune(pos)
	var dir int
	var open, close rune
	if isOpenDelim(start) {
		dir = 1
		open, close = start, bracketOpen[start]
	} else {
		dir = -1
		close, open = start, bracketClose[start]
	}

	depth := 1
	end := pos
	steps := 0
	for steps < maxMotionScan {
		end += dir
		if end < 0 {
			return false
		}
		r := buf.Rune(end)
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				goto found
			}
		}
		steps++
	}
	return false

found:
	beg, fin := pos, end
	if fin < beg {
		beg, fin = fin, beg
	}
	m.Beg, m.End = beg, fin+1
	if !asOperand {
		m.End = end
		return true
	}
	if delimAloneOnLine(buf, pos) && delimAloneOnLine(buf, end) {
		lineExtend(e, m)
	}
	return true
}

// delimAloneOnLine reports whether pos's line has nothing but blanks
// before and after the delimiter at pos, i.e. the delimiter is the only
// non-blank rune on its line.
func delimAloneOnLine(buf Buffer, pos int) bool {
	bol, eol := buf.BOL(pos), buf.EOL(pos)
	for i := bol; i < pos; i++ {
		if !isBlank(buf.Rune(i)) {
			return false
		}
	}
	for i := pos + 1; i < eol; i++ {
		if !isBlank(buf.Rune(i)) {
			return false
		}
	}
	return true
}

func isOpenDelim(r rune) bool  { _, ok := bracketOpen[r]; return ok }
func isCloseDelim(r rune) bool { _, ok := bracketClose[r]; return ok }

// motGotoLine implements G (§4.2): go to line count-1, or, when no count
// was given, to the buffer's last line as Offset clamps it (the empty line
// in limbo when the text ends in '\n', the last real line otherwise).
func motGotoLine(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	var target int
	if c.Count == 0 {
		_, col := buf.LineCol(e.cursor())
		target = buf.Offset(1<<30, col)
	} else {
		_, col := buf.LineCol(e.cursor())
		target = buf.Offset(int(c.Count)-1, col)
	}
	m.End = target
	if asOperand {
		lineExtend(e, m)
	}
	return true
}

// motScreenRel implements H, M and L (§4.2): jump to the top, middle, or
// bottom visible line of the window.
func motScreenRel(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	win := e.win()
	nl := win.VisibleLines()
	n := c.GetCount()

	var idx int
	switch c.Chr {
	case 'H':
		if n > nl {
			return false
		}
		idx = n - 1
	case 'L':
		if n > nl {
			return false
		}
		idx = nl - n
	default: // 'M'
		idx = nl / 2
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= nl {
		idx = nl - 1
	}
	m.End = win.LineStart(idx)
	if asOperand {
		lineExtend(e, m)
	}
	return true
}

// motMark implements ' and ` (§4.2): jump to the mark named by c.Arg.
// ' lands on the mark's line's first non-blank (line-wise); ` lands on the
// mark's exact offset.
func motMark(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	off, ok := e.buf().Mark(c.Arg)
	if !ok {
		return false
	}
	if c.Chr == '\'' {
		buf := e.buf()
		p := buf.BOL(off)
		scanWhile(buf, &p, 1, isBlank)
		m.End = p
		if asOperand {
			lineExtend(e, m)
		}
		return true
	}
	m.End = off
	return true
}

// motSearch implements n and N (§4.2): invoke the host search on the
// current selection, or the anonymous yank if there is no selection.
func motSearch(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	buf := e.buf()
	runes := e.searchText(buf)
	if len(runes) == 0 {
		return false
	}
	reverse := c.Chr == 'N'
	if err := e.host.Search().Look(e.win(), runes, reverse); err != nil {
		return false
	}
	m.End = e.win().Cursor()
	if asOperand {
		lineExtend(e, m)
	}
	return true
}

// searchText returns the selection's text, or the anonymous yank slot's
// text if there is no selection.
func (e *Editor) searchText(buf Buffer) []rune {
	beg, ok1 := buf.Mark(selBegMark)
	end, ok2 := buf.Mark(selEndMark)
	if ok1 && ok2 && end > beg {
		out := make([]rune, 0, end-beg)
		for p := beg; p < end; p++ {
			out = append(out, buf.Rune(p))
		}
		return out
	}
	slot, _ := e.regs.get(0)
	return slot.runes
}

// motSelectionRegion implements / (§4.2): operand-only, uses the
// SelBeg/SelEnd marks as the region.
func motSelectionRegion(e *Editor, asOperand bool, c Cmd, m *MotionResult) bool {
	if !asOperand || c.GetCount() != 1 {
		return false
	}
	buf := e.buf()
	beg, ok1 := buf.Mark(selBegMark)
	end, ok2 := buf.Mark(selEndMark)
	if !ok1 || !ok2 || end <= beg {
		return false
	}
	m.Beg = beg
	m.End = end
	return true
}

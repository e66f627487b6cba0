package videmo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/vicore-editor/vicore/internal/vi"
)

// Renderer draws an Editor's window onto a tcell.Screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer wraps screen with theme.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Draw paints win's visible lines, the cursor, and a status line naming
// the editor's mode.
func (r *Renderer) Draw(ed *vi.Editor, win *Window, statusExtra string) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	textRows := rows - 1
	if textRows < 0 {
		textRows = 0
	}

	mode := ed.Mode().String()
	style := tcell.StyleDefault.Foreground(toTcell(r.theme.Foreground)).Background(toTcell(r.theme.Background))
	selStyle := style.Background(r.theme.Selection(mode))

	buf := win.Buffer()
	selBeg, hasSel1 := buf.Mark(vi.SelBegMark)
	selEnd, hasSel2 := buf.Mark(vi.SelEndMark)
	hasSelection := hasSel1 && hasSel2 && selEnd > selBeg

	cursorLine, cursorCol := -1, -1
	for row := 0; row < textRows; row++ {
		lineStart := win.LineStart(row)
		r.drawLine(row, cols, lineStart, buf, win.Cursor(), style, selStyle, hasSelection, selBeg, selEnd, &cursorLine, &cursorCol)
	}

	status := fmt.Sprintf(" %-6s %s", mode, statusExtra)
	r.drawText(rows-1, 0, cols, status, style.Background(r.theme.ModeColor(mode)).Foreground(toTcell(r.theme.Background)))

	if cursorLine >= 0 {
		r.screen.ShowCursor(cursorCol, cursorLine)
	}
	r.screen.Show()
}

// drawLine renders one buffer line starting at lineStart into screen row,
// tracking grapheme-cluster display width via uniseg and narrow/wide/
// ambiguous classification via x/text/width, so multi-cell runes don't
// desync the column cursor from the buffer offset it represents.
func (r *Renderer) drawLine(row, cols int, lineStart int, buf vi.Buffer, cursor int, style, selStyle tcell.Style, hasSelection bool, selBeg, selEnd int, outLine, outCol *int) {
	text := lineText(buf, lineStart)
	gr := uniseg.NewGraphemes(text)

	col := 0
	offset := lineStart
	for gr.Next() {
		if offset == cursor {
			*outLine, *outCol = row, col
		}
		if col >= cols {
			break
		}

		runes := gr.Runes()
		w := runeDisplayWidth(runes[0])
		st := style
		if hasSelection && offset >= selBeg && offset < selEnd {
			st = selStyle
		}

		r.screen.SetContent(col, row, runes[0], runes[1:], st)
		col += w
		offset += len(runes)
	}
	if offset == cursor {
		*outLine, *outCol = row, col
	}
}

// runeDisplayWidth classifies r's terminal column width: East Asian wide
// and fullwidth runes take two cells, everything else (including the
// "ambiguous" class, which most terminals render narrow) takes one.
func runeDisplayWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func lineText(buf vi.Buffer, lineStart int) string {
	eol := buf.EOL(lineStart)
	out := make([]rune, 0, eol-lineStart)
	for p := lineStart; p < eol; p++ {
		out = append(out, buf.Rune(p))
	}
	return string(out)
}

func (r *Renderer) drawText(row, col, maxCols int, s string, style tcell.Style) {
	c := col
	for _, ru := range s {
		if c >= maxCols {
			return
		}
		r.screen.SetContent(c, row, ru, nil, style)
		c++
	}
}

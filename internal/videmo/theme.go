package videmo

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the demo's small palette: a base background/foreground and
// the two mode-indicator colors, plus a derived selection highlight.
type Theme struct {
	Background colorful.Color
	Foreground colorful.Color
	Command    colorful.Color
	Insert     colorful.Color
}

// DefaultTheme is a dark background with a blue command-mode indicator
// and an orange insert-mode indicator.
func DefaultTheme() Theme {
	return Theme{
		Background: colorful.Color{R: 0.11, G: 0.11, B: 0.13},
		Foreground: colorful.Color{R: 0.86, G: 0.86, B: 0.86},
		Command:    colorful.Color{R: 0.30, G: 0.55, B: 0.95},
		Insert:     colorful.Color{R: 0.95, G: 0.55, B: 0.20},
	}
}

// ModeColor returns the status-line color for the given mode name
// ("command" or "insert").
func (t Theme) ModeColor(mode string) tcell.Color {
	if mode == "insert" {
		return toTcell(t.Insert)
	}
	return toTcell(t.Command)
}

// Selection blends the background and the active mode color to get a
// selection-highlight background, the way a theme derives a muted
// highlight from a saturated accent color rather than hardcoding one.
func (t Theme) Selection(mode string) tcell.Color {
	accent := t.Command
	if mode == "insert" {
		accent = t.Insert
	}
	return toTcell(t.Background.BlendLuv(accent, 0.35))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

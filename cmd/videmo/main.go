// Package main is the entry point for the videmo terminal demo, a
// reference host for the command core in internal/vi.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"

	"github.com/vicore-editor/vicore/internal/hostcfg"
	"github.com/vicore-editor/vicore/internal/vi"
	"github.com/vicore-editor/vicore/internal/videmo"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath string
	File       string
}

func run() int {
	opts := parseFlags()

	cfg, err := hostcfg.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	initial := ""
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", opts.File, err)
			return 1
		}
		initial = string(data)
	}

	// Registers the encodings tcell can't derive from the Go standard
	// library's charmap tables, so a terminal reporting a legacy locale
	// (e.g. GBK, Big5) still gets a usable encoding instead of falling
	// back to ASCII.
	encoding.Register()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	_, rows := screen.Size()
	textRows := rows - 1
	if textRows < 1 {
		textRows = 1
	}

	buf := videmo.NewBuffer(initial)
	win := videmo.NewWindow(buf, textRows)
	host := videmo.NewHost(opts.File, win)
	renderer := videmo.NewRenderer(screen, videmo.DefaultTheme())

	errOut := newStatusWriter()
	editor := vi.NewEditor(host, errOut)

	renderer.Draw(editor, win, statusExtra(cfg, errOut))

	for !host.ExitRequested() {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			_, rows = screen.Size()
			textRows = rows - 1
			if textRows < 1 {
				textRows = 1
			}
			win.Resize(textRows)
		case *tcell.EventKey:
			if r, ok := videmo.TranslateKey(ev); ok {
				errOut.clear()
				editor.Feed(r)
				if !editor.Scrolling() {
					win.Edge()
				}
			}
		}
		renderer.Draw(editor, win, statusExtra(cfg, errOut))
	}

	return 0
}

// statusExtra reports the last diagnostic line the core wrote as the demo's
// status-line filler, falling back to the loaded font when there is none.
func statusExtra(cfg hostcfg.Config, errOut *statusWriter) string {
	if msg := errOut.String(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%s %dpt", cfg.FontPath, cfg.FontSize)
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "videmo.json", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "videmo.json", "Path to configuration file (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "videmo - terminal demo for the vicore command core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: videmo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err == nil {
			opts.File = abs
		} else {
			opts.File = args[0]
		}
	}

	return opts
}

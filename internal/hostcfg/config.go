// Package hostcfg loads the small set of host-level settings the core
// itself treats as "outside the core" (§6): the default font, a
// scroll-window size and an input sequence timeout. Only the font is read
// by cmd/videmo; the core's own first ^U/^D scroll uses a third of the
// window's visible lines, not ScrollWindow.
package hostcfg

import (
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config is the host's font and scroll-window defaults.
type Config struct {
	FontPath     string
	FontSize     int
	ScrollWindow int
	SequenceMs   int
}

// defaultConfig mirrors the original source's hardcoded constants, used
// whenever a document is silent on a given path.
func defaultConfig() Config {
	return Config{
		FontPath:     "fixed",
		FontSize:     13,
		ScrollWindow: 0,
		SequenceMs:   1000,
	}
}

// Load reads path as a JSON document and overlays it onto the defaults
// using dot-path lookups, the same "dot.path -> config field" mapping the
// teacher's environment loader uses for its own settings. A missing file
// is not an error: Load returns the defaults.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	doc := string(data)
	if v := gjson.Get(doc, "font.path"); v.Exists() {
		cfg.FontPath = v.String()
	}
	if v := gjson.Get(doc, "font.size"); v.Exists() {
		cfg.FontSize = int(v.Int())
	}
	if v := gjson.Get(doc, "scroll.window"); v.Exists() {
		cfg.ScrollWindow = int(v.Int())
	}
	if v := gjson.Get(doc, "input.sequenceMs"); v.Exists() {
		cfg.SequenceMs = int(v.Int())
	}
	return cfg, nil
}

// Save writes cfg to path as JSON, building a fresh document up one
// dot-path set at a time. Any existing file at path is replaced; keys it
// held that Config does not cover are not kept.
func Save(path string, cfg Config) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "font.path", cfg.FontPath); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "font.size", cfg.FontSize); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "scroll.window", cfg.ScrollWindow); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "input.sequenceMs", cfg.SequenceMs); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

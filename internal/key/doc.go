// Package key defines the rune/keycode vocabulary consumed by the command
// core: ordinary Unicode scalars plus a handful of special-key sentinels
// encoded as values above the valid Unicode range (U+10FFFF). Control
// letters are not a separate sentinel space — by convention the host
// encodes Ctrl+A..Ctrl+Z as the ASCII C0 codes 1..26, exactly as a raw
// terminal or the GSdl* input driver this vocabulary was lifted from does.
package key

package main

import "strings"

// statusWriter captures the one diagnostic line Editor.Feed can write
// (§7's "! invalid command") so the render loop can show it on the status
// line for one frame instead of letting it scroll past on stderr.
type statusWriter struct {
	msg string
}

func newStatusWriter() *statusWriter { return &statusWriter{} }

func (w *statusWriter) Write(p []byte) (int, error) {
	w.msg = strings.TrimRight(string(p), "\n")
	return len(p), nil
}

func (w *statusWriter) String() string { return w.msg }

func (w *statusWriter) clear() { w.msg = "" }

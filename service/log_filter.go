package service

import (
	"io"
	"strings"
)

// warningFilter is an io.Writer that drops log lines containing any of
// the configured substrings. PDF libraries log a "CropBox missing from
// /Page, defaulting to MediaBox" diagnostic for nearly every page of
// these reports; the filter sits on the log output so the console stays
// usable in directory mode.
type warningFilter struct {
	out      io.Writer
	suppress []string
}

// NewWarningFilter wraps out, suppressing writes that contain any of
// the given substrings. Empty substrings are ignored.
func NewWarningFilter(out io.Writer, suppress []string) io.Writer {
	var active []string
	for _, s := range suppress {
		if s != "" {
			active = append(active, s)
		}
	}
	return &warningFilter{out: out, suppress: active}
}

func (w *warningFilter) Write(p []byte) (int, error) {
	line := string(p)
	for _, s := range w.suppress {
		if strings.Contains(line, s) {
			return len(p), nil
		}
	}
	return w.out.Write(p)
}

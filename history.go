package codextest

import (
	"errors"
	"os"
	"strings"
)

// History appends invocations to a plain-text log, one per line.
type History struct {
	Path string
}

// NewHistory returns a History writing to path.
func NewHistory(path string) *History {
	return &History{Path: path}
}

// Record appends args, space-joined, as a single line. The file is created
// on first use and never truncated.
//
// Callers treat recording as best-effort: the returned error is meant to be
// logged or dropped, never to stop the program.
func (h *History) Record(args []string) error {
	if h == nil || strings.TrimSpace(h.Path) == "" {
		return errors.New("history path is empty")
	}
	f, err := os.OpenFile(h.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strings.Join(args, " ") + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

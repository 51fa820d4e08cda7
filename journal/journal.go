// Package journal collects runner events as formatted log lines and
// writes them to a file once a run completes. It implements
// mission.Sink; events are buffered in order and durability happens in
// one flush, so a crash mid-run loses the log but never reorders it.
package journal

import (
	"bufio"
	"fmt"
	"os"
)

// Writer buffers event lines in chronological order.
// The zero value is ready to use.
type Writer struct {
	lines []string
}

// NewWriter returns an empty journal.
func NewWriter() *Writer {
	return &Writer{}
}

// Move records arrival at (x, y).
func (w *Writer) Move(x, y int) {
	w.lines = append(w.lines, fmt.Sprintf("Moving to %d-%d", x, y))
}

// PathImpassable records a voided plan.
func (w *Writer) PathImpassable() {
	w.lines = append(w.lines, "Path is impassable!")
}

// ObjectiveReached records mission completion; ordinal is 1-based.
func (w *Writer) ObjectiveReached(ordinal int) {
	w.lines = append(w.lines, fmt.Sprintf("Objective %d reached!", ordinal))
}

// WizardChoice records the unlock decision, sentinel included.
func (w *Writer) WizardChoice(code int) {
	w.lines = append(w.lines, fmt.Sprintf("Number %d is chosen!", code))
}

// Lines returns a copy of the buffered lines.
func (w *Writer) Lines() []string {
	out := make([]string, len(w.lines))
	copy(out, w.lines)

	return out
}

// WriteFile flushes the buffered lines to path, one per line,
// truncating any existing file.
func (w *Writer) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("journal: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	for _, line := range w.lines {
		if _, err = bw.WriteString(line + "\n"); err != nil {
			f.Close()

			return fmt.Errorf("journal: write %s: %w", path, err)
		}
	}
	if err = bw.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("journal: flush %s: %w", path, err)
	}

	return f.Close()
}

package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// TextSink writes a human-readable summary, one line per check.
type TextSink struct {
	w io.Writer
}

// NewTextSink creates a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Name() string { return "text" }

// Write renders r.
func (s *TextSink) Write(_ context.Context, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s against %s\n", r.Name, r.BaseURL)
	fmt.Fprintf(&b, "  iterations: %d, duration: %s\n\n", r.Iterations, r.Duration().Round(time.Millisecond))

	for _, c := range r.Summary.Checks {
		if c.Fails == 0 {
			fmt.Fprintf(&b, "    ✓ %s\n", c.Name)
			continue
		}
		fmt.Fprintf(&b, "    ✗ %s\n", c.Name)
		total := c.Passes + c.Fails
		fmt.Fprintf(&b, "     ↳  %d%% ✓ %d / ✗ %d\n", c.Passes*100/total, c.Passes, c.Fails)
	}

	fmt.Fprintf(&b, "\n  checks: %.2f%% ✓ %d ✗ %d\n", r.Summary.Rate()*100, r.Summary.Passes, r.Summary.Fails)

	_, err := io.WriteString(s.w, b.String())
	return err
}

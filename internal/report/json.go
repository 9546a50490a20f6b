package report

import (
	"context"
	"io"
	"os"
)

// JSONSink writes the encoded report to a writer or, when built with
// NewJSONFileSink, replaces a file.
type JSONSink struct {
	w    io.Writer
	path string
}

// NewJSONSink creates a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// NewJSONFileSink creates a JSONSink writing to the file at path.
func NewJSONFileSink(path string) *JSONSink {
	return &JSONSink{path: path}
}

func (s *JSONSink) Name() string {
	if s.path != "" {
		return "json:" + s.path
	}
	return "json"
}

// Write encodes r.
func (s *JSONSink) Write(_ context.Context, r *Report) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if s.path != "" {
		return os.WriteFile(s.path, data, 0o644)
	}
	_, err = s.w.Write(data)
	return err
}

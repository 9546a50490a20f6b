// Package report renders a finished run and publishes it to one or more sinks.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"audiocheck/internal/check"
	apperrors "audiocheck/internal/errors"
)

// Report is the outcome of one run.
type Report struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	BaseURL    string        `json:"base_url"`
	Seed       uint64        `json:"seed,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Iterations int           `json:"iterations"`
	Summary    check.Summary `json:"summary"`
}

// NewID derives a sortable run identifier from the start time.
func NewID(startedAt time.Time) string {
	return startedAt.UTC().Format("20060102T150405.000Z")
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return r.Summary.Passed()
}

// Encode returns the indented JSON form of r.
func Encode(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrReportEncode, err)
	}
	return append(data, '\n'), nil
}

// Sink receives a finished report.
type Sink interface {
	Name() string
	Write(ctx context.Context, r *Report) error
}

// Publish writes r to every sink. A failing sink does not stop the others;
// the failures are logged and returned joined.
func Publish(ctx context.Context, r *Report, sinks ...Sink) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Write(ctx, r); err != nil {
			log.Printf("Report sink %s failed: %v", s.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Package check records named pass/fail assertions.
//
// A failed check never stops the caller; it is counted and the run goes on.
package check

import "sync"

// Result aggregates every evaluation of one named check.
type Result struct {
	Name   string `json:"name"`
	Passes int    `json:"passes"`
	Fails  int    `json:"fails"`
}

// Summary is a point-in-time copy of a Recorder.
type Summary struct {
	Checks []Result `json:"checks"`
	Passes int      `json:"passes"`
	Fails  int      `json:"fails"`
}

// Passed reports whether no check has failed.
func (s Summary) Passed() bool {
	return s.Fails == 0
}

// Total returns the number of check evaluations.
func (s Summary) Total() int {
	return s.Passes + s.Fails
}

// Rate returns the fraction of passing evaluations, or 0 with none recorded.
func (s Summary) Rate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Passes) / float64(s.Total())
}

// Recorder collects check outcomes. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	order   []string
	results map[string]*Result
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{results: make(map[string]*Result)}
}

// Check records ok under name and returns ok.
func (r *Recorder) Check(name string, ok bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, exists := r.results[name]
	if !exists {
		res = &Result{Name: name}
		r.results[name] = res
		r.order = append(r.order, name)
	}
	if ok {
		res.Passes++
	} else {
		res.Fails++
	}
	return ok
}

// Summary returns results in first-recorded order.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{Checks: make([]Result, 0, len(r.order))}
	for _, name := range r.order {
		res := *r.results[name]
		s.Checks = append(s.Checks, res)
		s.Passes += res.Passes
		s.Fails += res.Fails
	}
	return s
}

// Package scenario runs the upload/download conformance iteration against
// the audio storage API and records a check for every response.
package scenario

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"time"

	"audiocheck/internal/check"
	"audiocheck/internal/client"
	apperrors "audiocheck/internal/errors"
	"audiocheck/internal/fixture"

	"golang.org/x/time/rate"
)

// Check names, in the order an iteration records them.
const (
	CheckUploadStatus      = "Upload status is 200"
	CheckUploadFilename    = "Upload contains filename"
	CheckDownloadStatus    = "Download status is 200"
	CheckDownloadHash      = "Download matches fixture hash"
	CheckInvalidFormat     = "Invalid format returns 400"
	CheckMissingFile       = "Missing file returns 404"
	CheckUploadWithoutFile = "Upload without file returns 400"
)

const idLength = 6

// AudioAPI is the subset of the audio storage API the scenario drives.
type AudioAPI interface {
	UploadAudio(ctx context.Context, userID, phraseID string, audio fixture.AudioFixture) *client.Response
	UploadWithoutFile(ctx context.Context, userID, phraseID string) *client.Response
	DownloadAudio(ctx context.Context, userID, phraseID, format string) *client.Response
}

// Options configures a Runner. There is always exactly one virtual user.
type Options struct {
	Iterations int
	// IterationRate caps iterations per second; 0 runs them back to back.
	IterationRate float64
	// VerifyRoundTrip hashes wav downloads against the uploaded fixture.
	VerifyRoundTrip bool
	Seed            uint64
}

// Trace describes what one iteration did.
type Trace struct {
	UserID       string
	PhraseID     string
	Format       Format
	Fixture      string
	UploadStatus int
	// StoredAs is the filename the service reported for the upload.
	StoredAs        string
	MissingUserID   string
	MissingPhraseID string
	// Continued is false when the upload failed and the download checks were skipped.
	Continued bool
}

// Runner executes scenario iterations. It is not safe for concurrent use.
type Runner struct {
	api      AudioAPI
	fixtures []fixture.AudioFixture
	opts     Options
	rng      *rand.Rand
	limiter  *rate.Limiter
	checks   *check.Recorder

	completed int
}

// NewRunner creates a Runner. fixtures must be non-empty.
func NewRunner(api AudioAPI, fixtures []fixture.AudioFixture, opts Options) (*Runner, error) {
	if len(fixtures) == 0 {
		return nil, apperrors.ErrNoFixtures
	}
	if opts.Iterations < 1 {
		opts.Iterations = 1
	}

	r := &Runner{
		api:      api,
		fixtures: fixtures,
		opts:     opts,
		rng:      NewRand(opts.Seed),
		checks:   check.NewRecorder(),
	}
	if opts.IterationRate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(opts.IterationRate), 1)
	}
	return r, nil
}

// Checks returns the recorder holding every check outcome so far.
func (r *Runner) Checks() *check.Recorder {
	return r.checks
}

// Completed returns how many iterations Run has finished.
func (r *Runner) Completed() int {
	return r.completed
}

// Run executes the configured iterations one after another and returns the
// check summary. It stops early, returning ctx.Err(), if ctx is done
// between iterations.
func (r *Runner) Run(ctx context.Context) (check.Summary, error) {
	start := time.Now()
	for i := 0; i < r.opts.Iterations; i++ {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return r.checks.Summary(), err
			}
		}
		if err := ctx.Err(); err != nil {
			return r.checks.Summary(), err
		}

		trace := r.Iteration(ctx)
		r.completed++
		log.Printf("Iteration %d: %s upload=%d stored=%q", i, trace, trace.UploadStatus, trace.StoredAs)
	}

	summary := r.checks.Summary()
	log.Printf("Completed %d iteration(s) in %s: %d/%d checks passed",
		r.opts.Iterations, time.Since(start).Round(time.Millisecond), summary.Passes, summary.Total())
	return summary, nil
}

// Iteration runs one upload-then-download sequence. Every check is
// recorded independently; only a non-200 upload skips the rest.
func (r *Runner) Iteration(ctx context.Context) Trace {
	trace := Trace{
		UserID:   "user-" + RandomString(r.rng, idLength),
		PhraseID: "phrase-" + RandomString(r.rng, idLength),
		Format:   RandomFormat(r.rng),
	}
	audio := RandomFixture(r.rng, r.fixtures)
	trace.Fixture = audio.Path

	uploadRes := r.api.UploadAudio(ctx, trace.UserID, trace.PhraseID, audio)
	trace.UploadStatus = uploadRes.Status
	trace.StoredAs = uploadRes.StringField("filename")
	uploaded := r.checks.Check(CheckUploadStatus, uploadRes.Status == http.StatusOK)
	r.checks.Check(CheckUploadFilename, uploadRes.HasField("filename"))
	if !uploaded {
		if uploadRes.Err != nil {
			log.Printf("Upload for %s/%s failed: %v", trace.UserID, trace.PhraseID, uploadRes.Err)
		}
		return trace
	}
	trace.Continued = true

	downloadRes := r.api.DownloadAudio(ctx, trace.UserID, trace.PhraseID, string(trace.Format))
	r.checks.Check(CheckDownloadStatus, downloadRes.Status == http.StatusOK)
	if r.opts.VerifyRoundTrip && trace.Format == "wav" && downloadRes.Status == http.StatusOK {
		r.checks.Check(CheckDownloadHash, fixture.VerifyHash(downloadRes.Body, audio.Hash))
	}

	invalidRes := r.api.DownloadAudio(ctx, trace.UserID, trace.PhraseID, string(InvalidFormat))
	r.checks.Check(CheckInvalidFormat, invalidRes.Status == http.StatusBadRequest)

	trace.MissingUserID, trace.MissingPhraseID = r.freshPair(trace.UserID, trace.PhraseID)
	missingRes := r.api.DownloadAudio(ctx, trace.MissingUserID, trace.MissingPhraseID, string(trace.Format))
	r.checks.Check(CheckMissingFile, missingRes.Status == http.StatusNotFound)

	noFileRes := r.api.UploadWithoutFile(ctx, trace.UserID, trace.PhraseID)
	r.checks.Check(CheckUploadWithoutFile, noFileRes.Status == http.StatusBadRequest)

	return trace
}

// freshPair draws an identifier pair that differs from the uploaded one.
func (r *Runner) freshPair(userID, phraseID string) (string, string) {
	for {
		u, p := RandomString(r.rng, idLength), RandomString(r.rng, idLength)
		if u != userID || p != phraseID {
			return u, p
		}
	}
}

// String describes the trace for logs.
func (t Trace) String() string {
	return fmt.Sprintf("%s/%s (%s, %s)", t.UserID, t.PhraseID, t.Format, t.Fixture)
}

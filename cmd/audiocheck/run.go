package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"
	"time"

	"audiocheck/internal/cache"
	"audiocheck/internal/client"
	"audiocheck/internal/config"
	apperrors "audiocheck/internal/errors"
	"audiocheck/internal/fixture"
	"audiocheck/internal/report"
	"audiocheck/internal/scenario"
	"audiocheck/internal/storage"

	"github.com/spf13/cobra"
)

const publishTimeout = 30 * time.Second

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the upload/download scenario",
		Long: `Run executes the scenario with a single virtual user for the configured
number of iterations and prints a summary of every check.

The exit status is 1 when fixtures or configuration cannot be loaded, or
when any check fails.`,
		Args: cobra.NoArgs,
		RunE: runScenario,
	}

	f := cmd.Flags()
	f.String("base-url", "", "base URL of the audio storage API (BASE_URL)")
	f.Int("iterations", 0, "number of iterations (ITERATIONS)")
	f.Float64("rate", 0, "maximum iterations per second, 0 for unpaced (ITERATION_RATE)")
	f.String("fixtures-dir", "", "directory containing testdata/ (FIXTURES_DIR)")
	f.Uint64("seed", 0, "random seed, 0 for a random one (SEED)")
	f.Bool("verify-round-trip", false, "hash wav downloads against the uploaded fixture (VERIFY_ROUND_TRIP)")
	f.String("report-file", "", "also write the JSON report to this file (REPORT_FILE)")
	f.Duration("timeout", 0, "per-request timeout (REQUEST_TIMEOUT)")

	return cmd
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("base-url") {
		cfg.BaseURL, _ = f.GetString("base-url")
	}
	if f.Changed("iterations") {
		cfg.Iterations, _ = f.GetInt("iterations")
	}
	if f.Changed("rate") {
		cfg.IterationRate, _ = f.GetFloat64("rate")
	}
	if f.Changed("fixtures-dir") {
		cfg.FixturesDir, _ = f.GetString("fixtures-dir")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("verify-round-trip") {
		cfg.VerifyRoundTrip, _ = f.GetBool("verify-round-trip")
	}
	if f.Changed("report-file") {
		cfg.ReportFile, _ = f.GetString("report-file")
	}
	if f.Changed("timeout") {
		cfg.RequestTimeout, _ = f.GetDuration("timeout")
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fixtures, err := fixture.LoadFrom(cfg.FixturesDir, fixture.DefaultPaths)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d fixture(s) from %s", len(fixtures), cfg.FixturesDir)

	api := client.New(client.Config{BaseURL: cfg.BaseURL, Timeout: cfg.RequestTimeout})
	runner, err := scenario.NewRunner(api, fixtures, scenario.Options{
		Iterations:      cfg.Iterations,
		IterationRate:   cfg.IterationRate,
		VerifyRoundTrip: cfg.VerifyRoundTrip,
		Seed:            cfg.Seed,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startedAt := time.Now()
	summary, runErr := runner.Run(ctx)
	r := &report.Report{
		ID:         report.NewID(startedAt),
		Name:       cfg.RunName,
		BaseURL:    api.BaseURL(),
		Seed:       cfg.Seed,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Iterations: runner.Completed(),
		Summary:    summary,
	}

	// Reports are still published after an interrupt.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), publishTimeout)
	defer cancel()

	sinks, closeSinks := buildSinks(publishCtx, cfg, cmd.OutOrStdout())
	defer closeSinks()
	_ = report.Publish(publishCtx, r, sinks...)

	if runErr != nil {
		return fmt.Errorf("run interrupted: %w", runErr)
	}
	if !summary.Passed() {
		return fmt.Errorf("%w: %d of %d", apperrors.ErrChecksFailed, summary.Fails, summary.Total())
	}
	return nil
}

// buildSinks returns the configured report sinks. A backend that cannot be
// reached is logged and left out; it never fails the run.
func buildSinks(ctx context.Context, cfg *config.Config, out io.Writer) ([]report.Sink, func()) {
	sinks := []report.Sink{report.NewTextSink(out)}
	closers := []func(){}

	if cfg.ReportFile != "" {
		sinks = append(sinks, report.NewJSONFileSink(cfg.ReportFile))
	}

	if cfg.S3Enabled() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			log.Printf("S3 report sink disabled: %v", err)
		} else {
			sinks = append(sinks, report.NewS3Sink(s3Client, cfg.S3Prefix))
		}
	}

	if cfg.RedisEnabled() {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Printf("Redis report sink disabled: %v", err)
		} else {
			sinks = append(sinks, report.NewRedisSink(redisCache, cfg.ReportTTL))
			closers = append(closers, redisCache.Close)
		}
	}

	return sinks, func() {
		for _, c := range closers {
			c()
		}
	}
}

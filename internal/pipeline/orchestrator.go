// Package pipeline wraps one generation unit (build prompt, call the model,
// repair the response) behind a bounded retry loop.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"manna/internal/catalog"
	"manna/internal/devotional"
	"manna/internal/exclusion"
	"manna/internal/logging"
	"manna/internal/prompt"
	"manna/internal/repair"
	"manna/internal/services/gemini"
)

const (
	defaultAttempts    = 3
	defaultBackoffBase = 4 * time.Second
	defaultBackoffCap  = 10 * time.Second
)

// Client is the slice of the generation service the orchestrator needs.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Unit identifies one (date, language, version) generation call.
type Unit struct {
	Date     string
	Language string
	Version  string
	Citation catalog.Citation
	Topic    string
	Excluded *exclusion.Set
}

// Orchestrator retries a generation unit on retryable failures with
// exponential backoff.
type Orchestrator struct {
	client Client
	logger *slog.Logger
	parse  repair.Options

	attempts    int
	backoffBase time.Duration
	backoffCap  time.Duration
	sleeper     func(time.Duration)
}

// Option customizes the orchestrator.
type Option func(*Orchestrator)

// WithAttempts overrides the retry bound (defaults to 3).
func WithAttempts(attempts int) Option {
	return func(o *Orchestrator) {
		if attempts > 0 {
			o.attempts = attempts
		}
	}
}

// WithBackoff overrides the backoff delays.
func WithBackoff(base, cap time.Duration) Option {
	return func(o *Orchestrator) {
		o.backoffBase = base
		o.backoffCap = cap
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(o *Orchestrator) {
		o.sleeper = sleeper
	}
}

// WithStrictParsing disables lenient book-name normalization.
func WithStrictParsing(strict bool) Option {
	return func(o *Orchestrator) {
		o.parse.Strict = strict
	}
}

// NewOrchestrator constructs an orchestrator around the generation client.
func NewOrchestrator(client Client, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	o := &Orchestrator{
		client:      client,
		logger:      logger,
		attempts:    defaultAttempts,
		backoffBase: defaultBackoffBase,
		backoffCap:  defaultBackoffCap,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate runs the unit to completion or returns the last failure after the
// retry bound. Only retryable parse failures and transient service errors
// trigger another attempt.
func (o *Orchestrator) Generate(ctx context.Context, unit Unit) (*devotional.Record, error) {
	builder := prompt.Builder{
		Language: unit.Language,
		Version:  unit.Version,
		Date:     unit.Date,
		Topic:    unit.Topic,
		Excluded: unit.Excluded,
	}
	doc := builder.Build(unit.Citation)

	parseOpts := o.parse
	parseOpts.Language = unit.Language
	parseOpts.Version = unit.Version
	parseOpts.Date = unit.Date
	parseOpts.Logger = o.logger
	citation := unit.Citation
	parseOpts.Expected = &citation

	var lastErr error
	for attempt := 1; attempt <= o.attempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		record, err := o.generateOnce(ctx, doc, unit, parseOpts)
		if err == nil {
			if attempt > 1 {
				o.logger.Info("generation recovered after retry",
					logging.String(logging.FieldDate, unit.Date),
					logging.String(logging.FieldLanguage, unit.Language),
					logging.String(logging.FieldVersion, unit.Version),
					logging.Int(logging.FieldAttempt, attempt))
			}
			return record, nil
		}
		if !retryableUnitError(err) {
			return nil, err
		}
		lastErr = err
		if attempt == o.attempts {
			break
		}
		delay := o.backoffDelay(attempt)
		o.logger.Warn("generation attempt failed, backing off",
			logging.String(logging.FieldDate, unit.Date),
			logging.String(logging.FieldLanguage, unit.Language),
			logging.String(logging.FieldVersion, unit.Version),
			logging.Int(logging.FieldAttempt, attempt),
			logging.Duration("delay", delay),
			logging.Error(err))
		if err := o.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("generate %s %s/%s: failed after %d attempts: %w",
		unit.Date, unit.Language, unit.Version, o.attempts, lastErr)
}

func (o *Orchestrator) generateOnce(ctx context.Context, doc string, unit Unit, parseOpts repair.Options) (*devotional.Record, error) {
	raw, err := o.client.GenerateText(ctx, doc)
	if err != nil {
		return nil, err
	}
	return repair.Parse(raw, unit.Excluded, parseOpts)
}

// retryableUnitError reports whether another attempt is worthwhile.
func retryableUnitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return repair.IsRetryable(err) || gemini.IsRetryable(err)
}

// backoffDelay doubles from the base up to the cap: 4s, 8s, 10s with the
// defaults.
func (o *Orchestrator) backoffDelay(attempt int) time.Duration {
	delay := o.backoffBase
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	if o.backoffCap > 0 && delay > o.backoffCap {
		delay = o.backoffCap
	}
	return delay
}

func (o *Orchestrator) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if o.sleeper != nil {
		o.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Package batch drives day-by-day devotional generation over a date range
// with checkpointed resume and per-slot error isolation.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"manna/internal/catalog"
	"manna/internal/checkpoint"
	"manna/internal/config"
	"manna/internal/devotional"
	"manna/internal/exclusion"
	"manna/internal/logging"
	"manna/internal/pipeline"
	"manna/internal/selection"
)

// ErrBatchInProgress is returned when another run already holds the batch
// lock.
var ErrBatchInProgress = errors.New("another generation batch is already running")

// Generator is the slice of the pipeline the controller needs.
type Generator interface {
	Generate(ctx context.Context, unit pipeline.Unit) (*devotional.Record, error)
}

// Archiver receives successfully generated records, best-effort.
type Archiver interface {
	Put(ctx context.Context, rec devotional.Record) error
}

// Controller owns the durable state of a run: the exclusion store, the
// checkpoint store, and the batch lock serializing runs over one data
// directory.
type Controller struct {
	cfg         *config.Config
	logger      *slog.Logger
	generator   Generator
	selector    *selection.Selector
	exclusions  *exclusion.Store
	checkpoints *checkpoint.Store
	archive     Archiver

	lock    *flock.Flock
	running atomic.Bool
}

// Option customizes the controller.
type Option func(*Controller)

// WithArchive attaches a history store for successful records.
func WithArchive(a Archiver) Option {
	return func(c *Controller) {
		c.archive = a
	}
}

// WithSelector overrides the verse selector (useful for deterministic tests).
func WithSelector(s *selection.Selector) Option {
	return func(c *Controller) {
		if s != nil {
			c.selector = s
		}
	}
}

// New constructs a controller over the configured data directory.
func New(cfg *config.Config, logger *slog.Logger, generator Generator, opts ...Option) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Controller{
		cfg:         cfg,
		logger:      logging.NewComponentLogger(logger, "batch"),
		generator:   generator,
		selector:    selection.NewSelector(logger),
		exclusions:  exclusion.NewStore(cfg.Paths.ExclusionFile, logger),
		checkpoints: checkpoint.NewStore(cfg.Paths.CheckpointFile, logger),
		lock:        flock.New(filepath.Join(cfg.Paths.DataDir, "manna.lock")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Running reports whether a batch is currently executing in this process.
func (c *Controller) Running() bool {
	return c.running.Load()
}

// Run executes the batch. Every requested (date, language, version) slot
// yields exactly one record in the response, genuine or placeholder. The
// only hard failures are an invalid request and lock contention; generation
// trouble degrades to placeholders instead.
func (c *Controller) Run(ctx context.Context, req Request) (*Response, error) {
	spec, err := req.normalize()
	if err != nil {
		return nil, err
	}

	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrBatchInProgress
	}
	defer c.running.Store(false)

	if err := c.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	ok, err := c.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}
	if !ok {
		return nil, ErrBatchInProgress
	}
	defer func() { _ = c.lock.Unlock() }()

	logger := c.logger.With(logging.String(logging.FieldCorrelationID, uuid.NewString()))
	logger.Info("batch started",
		logging.String("start", spec.Start.Format(devotional.DateFormat)),
		logging.String("end", spec.End.Format(devotional.DateFormat)),
		logging.String(logging.FieldLanguage, spec.Master.Language),
		logging.String(logging.FieldVersion, spec.Master.Version),
		logging.Int("other_slots", len(spec.Others)))

	// Exclusions are read once per run; the controller is the single writer
	// for its lifetime.
	excluded := c.exclusions.Load()

	results := devotional.NewResultTree()
	day := spec.Start
	if cp, found := c.checkpoints.Load(); found {
		next, parseErr := time.Parse(devotional.DateFormat, cp.NextDate)
		if parseErr == nil && next.After(spec.Start) && !next.After(spec.End.AddDate(0, 0, 1)) {
			results = cp.Results
			day = next
			logger.Info("resuming from checkpoint",
				logging.String("next_date", cp.NextDate),
				logging.Int("records", results.Len()))
		} else {
			logger.Warn("checkpoint does not match request, ignoring",
				logging.String("next_date", cp.NextDate))
		}
	}

	for ; !day.After(spec.End); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			// Leave the checkpoint in place so the run can resume.
			return nil, err
		}
		c.processDay(ctx, logger, spec, day, excluded, results)
		c.checkpoints.Save(&checkpoint.Checkpoint{
			Results:  results,
			NextDate: day.AddDate(0, 0, 1).Format(devotional.DateFormat),
		})
	}

	c.exclusions.Save(excluded)
	c.checkpoints.Clear()

	total := results.Len()
	failed := results.ErrorCount()
	logger.Info("batch finished",
		logging.Int("records", total),
		logging.Int("placeholders", failed))
	return &Response{
		Status:  "success",
		Message: fmt.Sprintf("generated %d records (%d placeholders)", total, failed),
		Data:    results,
	}, nil
}

// processDay runs the per-day algorithm: pick one citation, generate the
// master, then every sibling slot against the same citation. Failures never
// leave a slot empty.
func (c *Controller) processDay(ctx context.Context, logger *slog.Logger, spec *normalized, day time.Time, excluded *exclusion.Set, results devotional.ResultTree) {
	date := day.Format(devotional.DateFormat)
	dayLogger := logger.With(logging.String(logging.FieldDate, date))

	corpus := catalog.ForLanguage(spec.Master.Language)
	citation, err := c.selector.Select(corpus, excluded, spec.Hint)
	if err != nil {
		dayLogger.Error("verse selection failed, writing placeholders", logging.Error(err))
		c.fillPlaceholders(day, spec, results, err.Error())
		return
	}
	dayLogger.Info("citation selected", logging.String(logging.FieldCitation, citation.String()))

	master, err := c.generator.Generate(ctx, pipeline.Unit{
		Date:     date,
		Language: spec.Master.Language,
		Version:  spec.Master.Version,
		Citation: citation,
		Topic:    spec.Topic,
		Excluded: excluded,
	})
	if err != nil {
		// Sibling versions are adaptations of the day's passage; without a
		// master there is nothing coherent to generate, so every slot for
		// the date degrades together.
		dayLogger.Error("master generation failed, writing placeholders for the date", logging.Error(err))
		c.fillPlaceholders(day, spec, results, err.Error())
		return
	}

	excluded.Add(citation)
	c.exclusions.Save(excluded)
	results.Append(*master)
	c.archivePut(ctx, dayLogger, *master)

	for _, other := range spec.Others {
		rec, err := c.generator.Generate(ctx, pipeline.Unit{
			Date:     date,
			Language: other.Language,
			Version:  other.Version,
			Citation: citation,
			Topic:    spec.Topic,
			Excluded: excluded,
		})
		if err != nil {
			dayLogger.Error("sibling generation failed, writing placeholder",
				logging.String(logging.FieldLanguage, other.Language),
				logging.String(logging.FieldVersion, other.Version),
				logging.Error(err))
			results.Append(devotional.NewErrorRecord(day, other.Language, other.Version, err.Error()))
			continue
		}
		results.Append(*rec)
		c.archivePut(ctx, dayLogger, *rec)
	}
}

// fillPlaceholders appends an error record for the master and every sibling
// slot of the date.
func (c *Controller) fillPlaceholders(day time.Time, spec *normalized, results devotional.ResultTree, cause string) {
	for _, s := range append([]slot{spec.Master}, spec.Others...) {
		results.Append(devotional.NewErrorRecord(day, s.Language, s.Version, cause))
	}
}

func (c *Controller) archivePut(ctx context.Context, logger *slog.Logger, rec devotional.Record) {
	if c.archive == nil {
		return
	}
	if err := c.archive.Put(ctx, rec); err != nil {
		logger.Warn("archive write failed", logging.String("id", rec.ID), logging.Error(err))
	}
}

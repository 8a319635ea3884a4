// Package jobs runs the recurring league maintenance tasks.
package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

const FinalizeJobName = "finalize_due_tournaments"

var ErrNotStarted = errors.New("scheduler not initialized")

// Finalizer finalizes every tournament that has ended.
type Finalizer interface {
	FinalizeDue(ctx context.Context, now time.Time) ([]usecase.FinalizeResult, error)
}

type Observer interface {
	ObserveJob(job, outcome string)
}

// Scheduler wraps a gocron scheduler for the service's background jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger
	now       func() time.Time

	stopOnce sync.Once
	stopErr  error
}

func NewScheduler(logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("jobs")

	sched, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: sched, logger: logger, now: time.Now}, nil
}

// FinalizeJobConfig controls the finalize job cadence. Timeout bounds a
// single run; zero means the run is bounded only by the interval.
type FinalizeJobConfig struct {
	Interval       time.Duration
	Timeout        time.Duration
	StartImmediate bool
}

// RegisterFinalize schedules FinalizeDue every cfg.Interval. A run that is
// still going when the next one is due causes that next run to be skipped.
func (s *Scheduler) RegisterFinalize(finalizer Finalizer, observer Observer, cfg FinalizeJobConfig) (gocron.Job, error) {
	if s == nil {
		return nil, ErrNotStarted
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("finalize job interval must be > 0")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = cfg.Interval
	}

	opts := []gocron.JobOption{
		gocron.WithName(FinalizeJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if cfg.StartImmediate {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(cfg.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			RunFinalize(ctx, finalizer, observer, s.logger, s.now())
		}),
		opts...,
	)
	if err != nil {
		s.logger.Error("register job failed", "job_name", FinalizeJobName, "error", err)
		return nil, err
	}
	s.logger.Info("job registered", "job_name", FinalizeJobName, "interval", cfg.Interval.String())
	return job, nil
}

func (s *Scheduler) Start() {
	if s == nil {
		return
	}
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop waits for running jobs and prevents new ones from starting.
func (s *Scheduler) Stop() error {
	if s == nil {
		return ErrNotStarted
	}
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// RunFinalize performs one finalize pass and reports its outcome.
func RunFinalize(ctx context.Context, finalizer Finalizer, observer Observer, logger *logging.Logger, now time.Time) {
	if logger == nil {
		logger = logging.Default()
	}

	started := time.Now()
	results, err := finalizer.FinalizeDue(ctx, now)
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case len(results) == 0:
		outcome = "idle"
	}
	if observer != nil {
		observer.ObserveJob(FinalizeJobName, outcome)
	}

	if err != nil {
		logger.ErrorContext(ctx, "finalize job failed",
			"finalized", len(results),
			"elapsed", time.Since(started),
			"error", err,
		)
		return
	}
	for _, r := range results {
		logger.InfoContext(ctx, "tournament finalized",
			"tournament_id", r.TournamentID,
			"teams", r.Teams,
			"cards", r.Cards,
		)
	}
	logger.DebugContext(ctx, "finalize job completed", "finalized", len(results), "elapsed", time.Since(started))
}

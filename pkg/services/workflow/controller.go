package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const jobName = "weekly-boxoffice"

type Job interface {
	Run(ctx context.Context) error
}

type SchedulerConfig struct {
	Schedule   string // five-field cron expression, local time
	RunOnStart bool
	Clock      clockwork.Clock
}

// Scheduler runs a Job on a cron schedule. A tick that fires while the
// previous run is still going is deferred, never run concurrently.
type Scheduler struct {
	job    Job
	config SchedulerConfig
}

func NewScheduler(job Job, config SchedulerConfig) *Scheduler {
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	return &Scheduler{job: job, config: config}
}

// Start blocks until ctx is cancelled. Failed runs are logged and the
// schedule continues.
func (s *Scheduler) Start(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
		gocron.WithClock(s.config.Clock),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	jobOpts := []gocron.JobOption{
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if s.config.RunOnStart {
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	j, err := scheduler.NewJob(
		gocron.CronJob(s.config.Schedule, false),
		gocron.NewTask(func() { s.tick(ctx) }),
		jobOpts...,
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("invalid schedule %q: %w", s.config.Schedule, err)
	}

	scheduler.Start()

	event := logger.Info().Str("schedule", s.config.Schedule)
	if next, err := j.NextRun(); err == nil {
		event = event.Time("next_run", next)
	}
	event.Msg("scheduler started")

	<-ctx.Done()
	logger.Info().Msg("scheduler stopping")

	if err := scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}
	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.job.Run(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("scheduled run failed")
	}
}

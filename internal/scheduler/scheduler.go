package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"aqi-notifier/internal/services/digest"
	"aqi-notifier/pkg/logger"
)

// Runner runs one digest job.
type Runner interface {
	Run(ctx context.Context, dryRun bool) (digest.Result, error)
}

// Scheduler triggers a delivering digest run on a cron expression.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	expr      string
	timeout   time.Duration
	l         *logger.Logger
}

// New creates a Scheduler. An empty expr disables scheduling.
func New(expr string, timeout time.Duration, runner Runner, l *logger.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &Scheduler{
		scheduler: s,
		runner:    runner,
		expr:      expr,
		timeout:   timeout,
		l:         l,
	}
}

// Start registers the job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.expr == "" {
		s.l.Info("scheduler: no schedule configured; relying on the HTTP trigger")
		return nil
	}

	job, err := s.scheduler.Cron(s.expr).Do(s.run)
	if err != nil {
		return errors.Wrapf(err, "schedule %q", s.expr)
	}

	s.scheduler.StartAsync()

	s.l.Info("scheduler started", map[string]any{
		"schedule": s.expr,
		"next_run": job.NextRun().Format(time.RFC3339),
	})

	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runner.Run(ctx, false)
	if err != nil {
		s.l.Error(err, map[string]any{
			"run_id":  result.RunID,
			"trigger": "schedule",
		})
		return
	}

	s.l.Info("scheduled digest completed", map[string]any{
		"run_id": result.RunID,
	})
}

package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Pruner is anything that can drop expired entries.
type Pruner interface {
	Prune() int
	Len() int
}

// Scheduler periodically prunes idle session cards.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pruner    Pruner
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler.
func New(pruner Pruner, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		pruner:    pruner,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: prune interval disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce performs a single prune pass.
func (s *Scheduler) RunOnce() {
	removed := s.pruner.Prune()
	s.logger.Debug("scheduler: pruned idle sessions", "removed", removed, "remaining", s.pruner.Len())
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one poll cycle. A non-nil error stops the scheduler.
type Job func(ctx context.Context) error

// PollScheduler runs a job, then waits for the next activation of its cron
// schedule, forever. Jobs never overlap: the wait starts after the job returns.
type PollScheduler struct {
	schedule cron.Schedule
	spec     string
	logger   logrus.FieldLogger

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewPollScheduler parses spec with the standard cron parser, so both
// "@every 10m" and five-field expressions like "*/10 * * * *" are accepted.
func NewPollScheduler(spec string, logger logrus.FieldLogger) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		schedule: schedule,
		spec:     spec,
		logger:   logger.WithField("component", "scheduler"),
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Run executes job immediately and then once per schedule activation until ctx
// is cancelled or job returns an error.
func (s *PollScheduler) Run(ctx context.Context, job Job) error {
	s.logger.WithField("schedule", s.spec).Info("Starting poll scheduler...")
	for {
		if err := job(ctx); err != nil {
			return err
		}
		if err := s.Wait(ctx); err != nil {
			return err
		}
	}
}

// Wait blocks until the next activation of the schedule.
func (s *PollScheduler) Wait(ctx context.Context) error {
	now := s.now()
	delay := s.schedule.Next(now).Sub(now)
	s.logger.Debugf("Waiting %s before next poll cycle", delay)

	select {
	case <-ctx.Done():
		s.logger.Info("Poll scheduler stopped.")
		return ctx.Err()
	case <-s.after(delay):
		return nil
	}
}

// Package scheduler runs the cleanup jobs on a cron schedule inside the API process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers cleanup.JobAll on a cron schedule
type Scheduler struct {
	cron    *cron.Cron
	service cleanup.Service
	timeout time.Duration
	logger  logger.Logger
}

// cronLogger adapts logger.Logger to cron.Logger
type cronLogger struct {
	logger logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(append([]interface{}{"cron: " + msg}, keysAndValues...)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(append([]interface{}{"cron: " + msg, "error", err}, keysAndValues...)...)
}

// New parses schedule (five-field cron or a descriptor such as @daily) and
// prepares a Scheduler. Overlapping runs are skipped.
func New(schedule string, service cleanup.Service, timeout time.Duration, log logger.Logger) (*Scheduler, error) {
	adapter := cronLogger{logger: log}
	c := cron.New(
		cron.WithLogger(adapter),
		cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
	)

	s := &Scheduler{cron: c, service: service, timeout: timeout, logger: log}

	if _, err := c.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.service.Run(ctx, cleanup.JobAll)
	if err != nil {
		s.logger.Error("scheduled cleanup failed", "error", err)
		return
	}
	s.logger.Info("scheduled cleanup finished", "report", report.String())
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cleanup scheduler started", "entries", len(s.cron.Entries()))
}

// Stop stops scheduling and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("cleanup scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("cleanup still running at shutdown: %w", ctx.Err())
	}
}

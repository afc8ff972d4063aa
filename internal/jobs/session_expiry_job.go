package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep once a minute.
const DefaultSweepSchedule = "@every 1m"

// SessionEvicter removes idle sessions and reports how many went.
type SessionEvicter interface {
	EvictIdle(ttl time.Duration) int
}

// SessionExpiryJob drops sessions nobody touched for longer than the TTL.
type SessionExpiryJob struct {
	evicter  SessionEvicter
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the sweep. schedule is a cron spec or a
// descriptor such as "@every 1m"; an empty schedule means DefaultSweepSchedule.
func NewSessionExpiryJob(
	evicter SessionEvicter,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionExpiryJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &SessionExpiryJob{
		evicter:  evicter,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start schedules the sweep.
func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Run performs one sweep.
func (j *SessionExpiryJob) Run() {
	if n := j.evicter.EvictIdle(j.ttl); n > 0 {
		j.logger.InfoContext(context.Background(), "Idle sessions evicted", "count", n)
	}
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}

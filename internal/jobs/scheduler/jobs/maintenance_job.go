package jobs

import (
	"context"
	"fmt"
	"time"

	"guild-bot/internal/router"
)

// Submitter queues events onto the event loop
type Submitter interface {
	Submit(ctx context.Context, event router.Event) error
}

// MaintenanceJob submits a maintenance event into the event loop on a schedule so
// the work runs sequentially with every other handler.
type MaintenanceJob struct {
	name     string
	event    router.Event
	loop     Submitter
	interval time.Duration
}

// NewCodeExpiryJob sweeps expired reward and discount codes
func NewCodeExpiryJob(loop Submitter, interval time.Duration) *MaintenanceJob {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	return &MaintenanceJob{name: "code_expiry_sweep", event: router.SweepExpiredCodes{}, loop: loop, interval: interval}
}

// NewRateWindowPruneJob drops rate limit timestamps that left their window
func NewRateWindowPruneJob(loop Submitter, interval time.Duration) *MaintenanceJob {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &MaintenanceJob{name: "rate_window_prune", event: router.PruneRateWindows{}, loop: loop, interval: interval}
}

// Name returns the job name
func (j *MaintenanceJob) Name() string {
	return j.name
}

// Schedule returns how often the job should run
func (j *MaintenanceJob) Schedule() time.Duration {
	return j.interval
}

// Run queues the maintenance event
func (j *MaintenanceJob) Run(ctx context.Context) error {
	if err := j.loop.Submit(ctx, j.event); err != nil {
		return fmt.Errorf("failed to submit %s: %w", j.name, err)
	}
	return nil
}

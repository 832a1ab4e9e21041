package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"guild-bot/internal/observability"
)

// Job is periodic maintenance work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
	// Schedule is the interval between runs and also bounds a single run.
	Schedule() time.Duration
}

// Scheduler runs registered jobs on their own tickers until its context ends.
type Scheduler struct {
	jobs   []Job
	logger *observability.Logger
	wg     sync.WaitGroup
}

func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Register adds a job. Jobs must be registered before Start.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start blocks until ctx is cancelled and every job goroutine has returned.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, job := range s.jobs {
		s.logger.Info(ctx, "scheduling maintenance job",
			observability.Field{Key: "scheduled_job", Value: job.Name()},
			observability.Field{Key: "interval", Value: job.Schedule().String()},
		)
		s.wg.Add(1)
		go s.loop(ctx, job)
	}

	<-ctx.Done()
	s.wg.Wait()
	s.logger.Info(ctx, "scheduler stopped")
	return ctx.Err()
}

// loop waits a full interval before the first run; state is already restored by then.
func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.runOnce(ctx, job); err != nil {
				s.logger.Error(ctx, "scheduled job failed", err)
			}
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) (err error) {
	runCtx, cancel := context.WithTimeout(ctx, job.Schedule())
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name(), r)
		}
	}()

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		return fmt.Errorf("job %s: %w", job.Name(), err)
	}
	s.logger.Debug(ctx, "scheduled job completed", observability.Field{Key: "duration", Value: time.Since(start).String()})
	return nil
}

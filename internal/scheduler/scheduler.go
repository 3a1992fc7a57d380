package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/handshou/rainmap-go/internal/service"
)

// Scheduler periodically refreshes rainfall readings from the upstream
// provider and prunes batches past the retention window.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *service.RainfallService
	interval  time.Duration
	retention time.Duration
}

// New creates a new Scheduler.
func New(svc *service.RainfallService, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   svc,
		interval:  interval,
		retention: retention,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler. The first run fires immediately so the heatmap has data as soon
// as the upstream answers.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.Refresh(ctx); err != nil {
			// Keep serving the last good batch.
			log.Printf("scheduler: rainfall refresh failed: %v", err)
		}

		if s.retention > 0 {
			if pruned, err := s.service.Prune(s.retention); err != nil {
				log.Printf("scheduler: prune failed: %v", err)
			} else if pruned > 0 {
				log.Printf("scheduler: pruned %d expired readings", pruned)
			}
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

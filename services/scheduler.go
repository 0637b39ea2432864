// services/scheduler.go
package services

import (
	"fmt"
	"sync"
	"time"

	"celebratemate-backend/config"

	"github.com/robfig/cron/v3"
)

// Job is one named entry in the scheduler: a cron spec and the handler it
// fires.
type Job struct {
	Name string
	Spec string
	Run  func()
}

// Scheduler owns the process cron. Jobs are registered once at startup and
// torn down on shutdown; a job still running when its next tick arrives is
// skipped, not overlapped.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

func (s *Scheduler) Register(job Job) error {
	var mu sync.Mutex
	_, err := s.cron.AddFunc(job.Spec, func() {
		if !mu.TryLock() {
			config.Logger.Warnw("Previous run still in flight, skipping", "job", job.Name)
			return
		}
		defer mu.Unlock()

		config.Logger.Infow("Job triggered", "job", job.Name)
		job.Run()
	})
	if err != nil {
		return fmt.Errorf("register job %s (%q): %w", job.Name, job.Spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	config.Logger.Info("Scheduler started")
}

// Stop halts scheduling; a run already in flight is not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	config.Logger.Info("Scheduler stopped")
}

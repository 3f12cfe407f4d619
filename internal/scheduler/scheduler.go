package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the planning pass on a cron schedule in daemon mode.
type Scheduler struct {
	Cron *cron.Cron
	run  func() error
}

// New creates a Scheduler around a planning pass.
func New(run func() error) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		run:  run,
	}
}

// Register registers the periodic planning task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.task); err != nil {
		return fmt.Errorf("register plan task: %w", err)
	}
	return nil
}

func (s *Scheduler) task() {
	log.Println("[INFO] scheduled planning pass starting")
	if err := s.run(); err != nil {
		log.Printf("[ERROR] scheduled planning pass failed: %v", err)
		return
	}
	log.Println("[INFO] scheduled planning pass finished")
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one planning pass immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.task()
}

package workers

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs periodic housekeeping tasks.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// Every registers task under a cron spec such as "@every 5m".
func (s *Scheduler) Every(spec, name string, task func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		logrus.WithField("task", name).Debug("[SCHEDULER] running task")
		task()
	})
	if err != nil {
		return fmt.Errorf("scheduler: invalid spec for %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	logrus.WithField("tasks", s.Len()).Info("[SCHEDULER] started")

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		logrus.Info("[SCHEDULER] stopped")
	}()
}

package workers

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/insights"
)

type EntryRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.JournalEntry, error)
	UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error
}

// StreakJob asks for the stored streaks of a user to be refreshed from Since
// onwards.
type StreakJob struct {
	UserID string
	Since  calendar.Day
}

// StreakWorker keeps the advisory streak column of journal entries in sync
// after writes. It runs off the request path.
type StreakWorker struct {
	entryRepo EntryRepository
	jobs      chan StreakJob
}

func NewStreakWorker(eRepo EntryRepository) *StreakWorker {
	return &StreakWorker{
		entryRepo: eRepo,
		jobs:      make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		logrus.Info("[WORKER] streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				logrus.Info("[WORKER] streak worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks. Jobs are dropped when the queue is full.
func (w *StreakWorker) Enqueue(userID string, since calendar.Day) {
	select {
	case w.jobs <- StreakJob{UserID: userID, Since: since}:
	default:
		logrus.WithField("user_id", userID).Warn("[WORKER] streak queue full, dropping job")
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	entries, err := w.entryRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", job.UserID).Error("[WORKER] failed to fetch entries")
		return
	}

	for _, u := range staleStreaks(entries, job.Since) {
		if err := w.entryRepo.UpdateStreak(ctx, job.UserID, u.date, u.streak); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": job.UserID,
				"date":    u.date.String(),
			}).Error("[WORKER] failed to update streak")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"user_id": job.UserID,
			"date":    u.date.String(),
			"streak":  u.streak,
		}).Debug("[WORKER] streak updated")
	}
}

type streakUpdate struct {
	date   calendar.Day
	streak int
}

// staleStreaks recomputes the streak ending on each entry dated on or after
// since and returns the ones whose stored value differs, oldest first.
func staleStreaks(entries []*domain.JournalEntry, since calendar.Day) []streakUpdate {
	filled := make(map[calendar.Day]struct{})
	for _, e := range entries {
		if e != nil && e.HasContent() {
			filled[e.EntryDate] = struct{}{}
		}
	}

	var updates []streakUpdate
	for _, e := range entries {
		if e == nil || e.EntryDate.Before(since) {
			continue
		}
		streak := 0
		if e.HasContent() {
			streak = insights.CurrentStreak(filled, e.EntryDate)
		}
		if streak != e.Streak {
			updates = append(updates, streakUpdate{date: e.EntryDate, streak: streak})
		}
	}

	sort.Slice(updates, func(i, j int) bool {
		return updates[i].date.Before(updates[j].date)
	})

	return updates
}

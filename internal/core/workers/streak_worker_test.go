package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

type MockEntryRepo struct {
	mock.Mock
}

func (m *MockEntryRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepo) UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error {
	return m.Called(ctx, userID, date, streak).Error(0)
}

var base = calendar.MustParse("2024-03-10")

func filled(offset, stored int) *domain.JournalEntry {
	return &domain.JournalEntry{UserID: "u1", EntryDate: base.AddDays(offset), Gratitude: "sun", Streak: stored}
}

func TestStaleStreaks(t *testing.T) {
	tests := []struct {
		name    string
		entries []*domain.JournalEntry
		since   calendar.Day
		want    []streakUpdate
	}{
		{
			name:    "Empty entries",
			entries: nil,
			since:   base,
			want:    nil,
		},
		{
			name:    "Runs shorter than three stay at zero",
			entries: []*domain.JournalEntry{filled(0, 0), filled(1, 0)},
			since:   base,
			want:    nil,
		},
		{
			name:    "Third consecutive day activates",
			entries: []*domain.JournalEntry{filled(0, 0), filled(1, 0), filled(2, 0)},
			since:   base,
			want:    []streakUpdate{{date: base.AddDays(2), streak: 3}},
		},
		{
			name:    "Unsorted input is handled",
			entries: []*domain.JournalEntry{filled(3, 0), filled(1, 0), filled(0, 0), filled(2, 0)},
			since:   base,
			want: []streakUpdate{
				{date: base.AddDays(2), streak: 3},
				{date: base.AddDays(3), streak: 4},
			},
		},
		{
			name:    "Gap resets a stale stored value",
			entries: []*domain.JournalEntry{filled(0, 0), filled(1, 0), filled(2, 3), filled(4, 4)},
			since:   base,
			want:    []streakUpdate{{date: base.AddDays(4), streak: 0}},
		},
		{
			name:    "Entries before since are left alone",
			entries: []*domain.JournalEntry{filled(0, 9), filled(1, 0), filled(2, 0)},
			since:   base.AddDays(1),
			want:    []streakUpdate{{date: base.AddDays(2), streak: 3}},
		},
		{
			name: "Blank entry never holds a streak",
			entries: []*domain.JournalEntry{
				filled(0, 0), filled(1, 0),
				{UserID: "u1", EntryDate: base.AddDays(2), Mood: "  ", Streak: 3},
			},
			since: base,
			want:  []streakUpdate{{date: base.AddDays(2), streak: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staleStreaks(tt.entries, tt.since))
		})
	}
}

func TestStreakWorker_ProcessJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes only changed streaks", func(t *testing.T) {
		repo := new(MockEntryRepo)
		w := NewStreakWorker(repo)

		repo.On("ListByUserID", ctx, "u1").Return([]*domain.JournalEntry{filled(0, 0), filled(1, 0), filled(2, 0)}, nil)
		repo.On("UpdateStreak", ctx, "u1", base.AddDays(2), 3).Return(nil)

		w.processJob(ctx, StreakJob{UserID: "u1", Since: base})

		repo.AssertExpectations(t)
	})

	t.Run("Fetch failure is logged and skipped", func(t *testing.T) {
		repo := new(MockEntryRepo)
		w := NewStreakWorker(repo)

		repo.On("ListByUserID", ctx, "u1").Return(nil, errors.New("db down"))

		w.processJob(ctx, StreakJob{UserID: "u1", Since: base})

		repo.AssertNotCalled(t, "UpdateStreak", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStreakWorker_EnqueueDropsWhenFull(t *testing.T) {
	w := NewStreakWorker(nil)

	for i := 0; i < cap(w.jobs)+10; i++ {
		w.Enqueue("u1", base)
	}

	assert.Len(t, w.jobs, cap(w.jobs))
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

var (
	ErrEntryInvalidUserID = errors.New("invalid user id")
	ErrEntryDateRequired  = errors.New("entry_date is required")
	ErrEntryFieldTooLong  = errors.New("entry field is too long (max 5000 chars)")
	ErrEntryTooManyTasks  = errors.New("too many tasks (max 20)")
	ErrEntryInFuture      = errors.New("entry_date cannot be in the future")
)

const (
	MaxEntryFieldLen = 5000
	MaxEntryTasks    = 20
)

type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Tasks decodes leniently: anything that is not a JSON array of objects
// yields no tasks instead of an error.
type Tasks []Task

func parseTasks(raw []byte) Tasks {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil
	}

	result := gjson.ParseBytes(raw)
	if !result.IsArray() {
		return nil
	}

	var tasks Tasks
	result.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		tasks = append(tasks, Task{
			Text:      item.Get("text").String(),
			Completed: item.Get("completed").Bool(),
		})
		return true
	})
	return tasks
}

func (t *Tasks) UnmarshalJSON(data []byte) error {
	*t = parseTasks(data)
	return nil
}

func (t *Tasks) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case []byte:
		*t = parseTasks(v)
	case string:
		*t = parseTasks([]byte(v))
	default:
		return fmt.Errorf("domain: cannot scan %T into Tasks", src)
	}
	return nil
}

func (t Tasks) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Task(t))
}

// Value encodes as text so the JSONB column accepts it from pgx and lib/pq.
func (t Tasks) Value() (driver.Value, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type JournalEntry struct {
	ID        string       `json:"id" db:"id"`
	UserID    string       `json:"user_id" db:"user_id"`
	EntryDate calendar.Day `json:"entry_date" db:"entry_date"`

	// Streak is the last value computed in the background. Advisory only.
	Streak int `json:"streak" db:"streak"`

	Gratitude  string `json:"gratitude" db:"gratitude"`
	Priority1  string `json:"priority_1" db:"priority_1"`
	Priority2  string `json:"priority_2" db:"priority_2"`
	Priority3  string `json:"priority_3" db:"priority_3"`
	Tasks      Tasks  `json:"tasks" db:"tasks"`
	Reflection string `json:"reflection" db:"reflection"`
	Mood       string `json:"mood" db:"mood"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewJournalEntry(userID string, date calendar.Day) *JournalEntry {
	now := time.Now().UTC()
	return &JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		EntryDate: date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (e *JournalEntry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrEntryInvalidUserID
	}
	if e.EntryDate.IsZero() {
		return ErrEntryDateRequired
	}
	for _, field := range []string{e.Gratitude, e.Priority1, e.Priority2, e.Priority3, e.Reflection, e.Mood} {
		if utf8.RuneCountInString(field) > MaxEntryFieldLen {
			return ErrEntryFieldTooLong
		}
	}
	if len(e.Tasks) > MaxEntryTasks {
		return ErrEntryTooManyTasks
	}
	for _, task := range e.Tasks {
		if utf8.RuneCountInString(task.Text) > MaxEntryFieldLen {
			return ErrEntryFieldTooLong
		}
	}
	return nil
}

// HasContent decides whether the entry counts as a journaled day. It is the
// only definition of "completed entry" used anywhere.
func (e *JournalEntry) HasContent() bool {
	if e == nil {
		return false
	}
	if notBlank(e.Gratitude) || e.HasPriority() || notBlank(e.Reflection) || notBlank(e.Mood) {
		return true
	}
	for _, task := range e.Tasks {
		if notBlank(task.Text) {
			return true
		}
	}
	return false
}

func (e *JournalEntry) HasPriority() bool {
	return notBlank(e.Priority1) || notBlank(e.Priority2) || notBlank(e.Priority3)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

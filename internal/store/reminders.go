package store

import (
	"strings"
	"sync"
	"time"

	"github.com/arnavgoel/remindme/internal/timeutil"
)

const maxTitleLength = 100

// Reminder is a stored reminder record. Immutable once stored except for
// Completed, which is reserved for a future toggle.
type Reminder struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`           // YYYY-MM-DD
	Time        string    `json:"time,omitempty"` // HH:MM 24h, empty when absent
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Reminders is a process-wide, append-only reminder collection. IDs start at
// 1 and increase strictly with no gaps, including under concurrent appends.
// Records are returned by value; the store never shares references.
type Reminders struct {
	mu     sync.Mutex
	items  []Reminder
	nextID int
}

// NewReminders creates an empty reminder store.
func NewReminders() *Reminders {
	return &Reminders{nextID: 1}
}

// Create appends a reminder with the next id. The title is trimmed, defaulted
// and truncated; date and time are expected already normalized.
func (s *Reminders) Create(title, date, clock, description string) Reminder {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Reminder"
	}
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := Reminder{
		ID:          s.nextID,
		Title:       title,
		Date:        date,
		Time:        clock,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.items = append(s.items, r)
	return r
}

// List returns every stored reminder in insertion order.
func (s *Reminders) List() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reminder, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of stored reminders.
func (s *Reminders) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// UpcomingReminders groups open reminders for the listing query.
type UpcomingReminders struct {
	Today    []Reminder `json:"today_reminders"`
	Upcoming []Reminder `json:"upcoming_reminders"`
	All      []Reminder `json:"all_reminders"`
}

// Upcoming returns open (not completed) reminders bucketed relative to the
// reference date: due today, due within today..+7 days inclusive, and all.
func (s *Reminders) Upcoming(ref timeutil.Reference) UpcomingReminders {
	out := UpcomingReminders{
		Today:    []Reminder{},
		Upcoming: []Reminder{},
		All:      []Reminder{},
	}

	today, err := time.Parse(timeutil.ISODate, ref.Date)
	haveToday := err == nil
	weekOut := today.AddDate(0, 0, 7)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.items {
		if r.Completed {
			continue
		}
		out.All = append(out.All, r)

		if !haveToday {
			continue
		}
		due, err := time.Parse(timeutil.ISODate, r.Date)
		if err != nil {
			continue
		}
		if due.Equal(today) {
			out.Today = append(out.Today, r)
		}
		if !due.Before(today) && !due.After(weekOut) {
			out.Upcoming = append(out.Upcoming, r)
		}
	}
	return out
}

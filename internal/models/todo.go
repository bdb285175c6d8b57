package models

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a single task record as the server returns it. The server is
// the system of record; the client never persists these.
type Todo struct {
	ID          string     `json:"todo_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	IsComplete  bool       `json:"is_complete"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TodoDraft is an in-progress task held in view-local state before
// submission. DueDate stays a string until the draft is normalized for
// the wire.
type TodoDraft struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD or YYYY-MM-DD HH:MM
	Priority    Priority
}

// NewTodoDraft returns a draft with the default priority applied.
func NewTodoDraft() TodoDraft {
	return TodoDraft{Priority: PriorityMedium}
}

// DueDateTime resolves the draft's due date string to an absolute
// instant in the local timezone. A date without a time component is
// due at midnight.
func (d TodoDraft) DueDateTime() (time.Time, error) {
	s := strings.TrimSpace(d.DueDate)
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// DraftFromTodo copies a fetched record into an editable draft,
// reducing the due date to its date component the way the edit form
// presents it.
func DraftFromTodo(t Todo) TodoDraft {
	d := TodoDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
	}
	if t.DueDate != nil {
		d.DueDate = t.DueDate.Format("2006-01-02")
	}
	return d
}

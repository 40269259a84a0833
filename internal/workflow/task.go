// Package workflow holds the task model for a PR production workflow:
// ordered task rows, dependency warnings, progress rollups, and the
// change history. All state is in-memory; persistence lives elsewhere.
package workflow

import (
	"time"

	"github.com/rs/xid"
)

// Status is a workflow task status.
type Status string

const (
	StatusTodo   Status = "todo"
	StatusDoing  Status = "doing"
	StatusReview Status = "review"
	StatusBack   Status = "back"
	StatusDone   Status = "done"
)

// AllStatuses lists the valid statuses in display order.
var AllStatuses = []Status{StatusTodo, StatusDoing, StatusReview, StatusBack, StatusDone}

// NormalizeStatus maps arbitrary stored strings to a valid status.
// Unknown values become StatusTodo.
func NormalizeStatus(s string) Status {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st
		}
	}
	return StatusTodo
}

// DateLayout is the calendar-date format used everywhere in the model.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string. Empty or malformed strings
// return ok=false and are treated as "date not set".
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Task is one row of the workflow table. Name is the canonical
// (Japanese) task label used for guidance and dependency lookups;
// identity is the ID, assigned once at creation.
type Task struct {
	ID        string `json:"id"`
	Phase     string `json:"phase"`
	Name      string `json:"name"`
	Assignee  string `json:"assignee"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    Status `json:"status"`
	Notes     string `json:"notes"`
}

// NewTask creates a task with a fresh ID and todo status.
func NewTask(phase, name string) *Task {
	return &Task{
		ID:     xid.New().String(),
		Phase:  phase,
		Name:   name,
		Status: StatusTodo,
	}
}

// HasDates reports whether either date is set.
func (t *Task) HasDates() bool {
	return t.StartDate != "" || t.EndDate != ""
}

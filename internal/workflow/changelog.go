package workflow

import "time"

// changeLogCap bounds the retained history; the display layer shows at
// most changeLogShow entries.
const (
	changeLogCap  = 100
	changeLogShow = 50
)

// ChangeEntry is one recorded field transition, newest first in the log.
type ChangeEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Task      string    `json:"task"`
	Field     string    `json:"field"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// ChangeLog is a bounded most-recent-first history of field changes.
// It is independent of the task store and survives a data clear only if
// the caller chooses to keep it.
type ChangeLog struct {
	entries []ChangeEntry
}

// NewChangeLog creates an empty log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// RestoreChangeLog rebuilds a log from persisted entries, enforcing the
// cap on the way in.
func RestoreChangeLog(entries []ChangeEntry) *ChangeLog {
	if len(entries) > changeLogCap {
		entries = entries[:changeLogCap]
	}
	return &ChangeLog{entries: entries}
}

// Record prepends an entry. Equal from/to values are a no-op. Entries
// past the cap fall off the old end.
func (l *ChangeLog) Record(task, field, from, to string) {
	if from == to {
		return
	}
	entry := ChangeEntry{
		Timestamp: time.Now(),
		Task:      task,
		Field:     field,
		From:      from,
		To:        to,
	}
	l.entries = append([]ChangeEntry{entry}, l.entries...)
	if len(l.entries) > changeLogCap {
		l.entries = l.entries[:changeLogCap]
	}
}

// Entries returns the full retained history, newest first.
func (l *ChangeLog) Entries() []ChangeEntry {
	return l.entries
}

// Recent returns the newest entries for display, capped at 50.
func (l *ChangeLog) Recent() []ChangeEntry {
	if len(l.entries) > changeLogShow {
		return l.entries[:changeLogShow]
	}
	return l.entries
}

// Len returns the number of retained entries.
func (l *ChangeLog) Len() int {
	return len(l.entries)
}

// Clear drops the history.
func (l *ChangeLog) Clear() {
	l.entries = nil
}

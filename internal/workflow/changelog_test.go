package workflow

import (
	"fmt"
	"testing"
)

func TestChangeLog_Record(t *testing.T) {
	l := NewChangeLog()

	l.Record("初稿執筆", "status", "todo", "doing")
	if l.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", l.Len())
	}
	e := l.Entries()[0]
	if e.Task != "初稿執筆" || e.From != "todo" || e.To != "doing" {
		t.Errorf("unexpected entry %+v", e)
	}

	// Equal from/to is a no-op.
	l.Record("初稿執筆", "status", "doing", "doing")
	if l.Len() != 1 {
		t.Errorf("equal values must not be recorded, got %d entries", l.Len())
	}
}

func TestChangeLog_NewestFirst(t *testing.T) {
	l := NewChangeLog()
	l.Record("a", "status", "todo", "doing")
	l.Record("b", "status", "todo", "doing")
	if l.Entries()[0].Task != "b" {
		t.Errorf("newest entry should be first, got %q", l.Entries()[0].Task)
	}
}

func TestChangeLog_Cap(t *testing.T) {
	l := NewChangeLog()
	for i := 0; i < 120; i++ {
		l.Record(fmt.Sprintf("task-%d", i), "status", "todo", "doing")
	}
	if l.Len() != 100 {
		t.Errorf("log should cap at 100, got %d", l.Len())
	}
	if l.Entries()[0].Task != "task-119" {
		t.Errorf("latest entry should survive the cap, got %q", l.Entries()[0].Task)
	}
	// The oldest entries fell off.
	last := l.Entries()[l.Len()-1]
	if last.Task != "task-20" {
		t.Errorf("expected oldest retained entry task-20, got %q", last.Task)
	}
}

func TestChangeLog_Recent(t *testing.T) {
	l := NewChangeLog()
	for i := 0; i < 80; i++ {
		l.Record(fmt.Sprintf("task-%d", i), "status", "todo", "doing")
	}
	recent := l.Recent()
	if len(recent) != 50 {
		t.Errorf("Recent() should return at most 50 entries, got %d", len(recent))
	}
	if recent[0].Task != "task-79" {
		t.Errorf("Recent() should start with the newest entry, got %q", recent[0].Task)
	}
}

func TestRestoreChangeLog_EnforcesCap(t *testing.T) {
	entries := make([]ChangeEntry, 150)
	l := RestoreChangeLog(entries)
	if l.Len() != 100 {
		t.Errorf("restore should clamp to 100, got %d", l.Len())
	}
}

func TestChangeLog_Clear(t *testing.T) {
	l := NewChangeLog()
	l.Record("a", "status", "todo", "done")
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty log after clear, got %d", l.Len())
	}
}

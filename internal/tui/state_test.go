package tui

import (
	"strings"
	"testing"

	"github.com/mark3labs/pubflow/internal/workflow"
)

func TestChangeStatus(t *testing.T) {
	t.Run("records change and marks dirty", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		needsReason, changed := s.ChangeStatus(task.ID, workflow.StatusDoing)
		if !changed {
			t.Fatal("expected status change")
		}
		if needsReason {
			t.Error("doing must not ask for a reason")
		}
		if task.Status != workflow.StatusDoing {
			t.Errorf("status = %q, want doing", task.Status)
		}
		if !s.Dirty {
			t.Error("state should be dirty after a change")
		}
		if s.ChangeLog.Len() != 1 {
			t.Errorf("log length = %d, want 1", s.ChangeLog.Len())
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		_, changed := s.ChangeStatus(task.ID, task.Status)
		if changed {
			t.Error("setting the current status should not count as a change")
		}
		if s.Dirty {
			t.Error("no-op must not mark dirty")
		}
	})

	t.Run("back asks for a reason", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		needsReason, changed := s.ChangeStatus(task.ID, workflow.StatusBack)
		if !changed || !needsReason {
			t.Fatalf("changed=%v needsReason=%v, want true/true", changed, needsReason)
		}
	})

	t.Run("unknown task id", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		_, changed := s.ChangeStatus("missing", workflow.StatusDone)
		if changed {
			t.Error("unknown id must not report a change")
		}
	})

	t.Run("done updates progress summary", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)
		s.ChangeStatus(task.ID, workflow.StatusDone)
		if s.Summary.Completed != 1 {
			t.Errorf("completed = %d, want 1", s.Summary.Completed)
		}
	})
}

func TestRecordBackReason(t *testing.T) {
	t.Run("prepends timestamped reason", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)
		task.Notes = "existing note"

		s.RecordBackReason(task.ID, "wrong tone")

		if !strings.Contains(task.Notes, "wrong tone") {
			t.Fatalf("notes missing reason: %q", task.Notes)
		}
		if !strings.HasPrefix(task.Notes, "[") {
			t.Errorf("reason should be timestamp-prefixed: %q", task.Notes)
		}
		if !strings.HasSuffix(task.Notes, "existing note") {
			t.Errorf("existing note should follow the reason: %q", task.Notes)
		}
	})

	t.Run("empty reason leaves notes alone", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)
		task.Notes = "keep me"

		s.RecordBackReason(task.ID, "")
		if task.Notes != "keep me" {
			t.Errorf("notes = %q, want unchanged", task.Notes)
		}
	})
}

func TestSetField(t *testing.T) {
	t.Run("date change recomputes deadlines", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		s.SetField(task.ID, "end", "2000-01-01")
		if s.Deadlines[task.ID] != workflow.FlagOverdue {
			t.Errorf("deadline flag = %v, want overdue", s.Deadlines[task.ID])
		}
	})

	t.Run("unchanged value records nothing", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		s.SetField(task.ID, "assignee", task.Assignee)
		if s.ChangeLog.Len() != 0 {
			t.Errorf("log length = %d, want 0", s.ChangeLog.Len())
		}
	})

	t.Run("unknown field ignored", func(t *testing.T) {
		s := NewState(workflow.LangJA)
		task := s.Store.At(0)

		s.SetField(task.ID, "priority", "high")
		if s.ChangeLog.Len() != 0 {
			t.Error("unknown field must not record a change")
		}
	})
}

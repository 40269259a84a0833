package tui

import (
	"time"

	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/workflow"
)

// State is the single application state all views render from. Views
// never mutate it directly; every mutation goes through App methods
// that call Refresh afterwards.
type State struct {
	Lang      workflow.Lang
	Form      *form.Form
	Store     *workflow.Store
	ChangeLog *workflow.ChangeLog

	// Derived data, recomputed by Refresh after every mutation.
	Warnings  map[string][]string
	Summary   workflow.Summary
	Phases    []workflow.PhaseProgress
	Assignees []workflow.AssigneeLoad
	Deadlines map[string]workflow.DeadlineFlag

	// Dirty is set by mutations and cleared by an explicit save.
	Dirty bool
}

// NewState builds the initial state with the default workflow rows.
func NewState(lang workflow.Lang) *State {
	s := &State{
		Lang:      lang,
		Form:      form.New(lang),
		Store:     workflow.DefaultStore(),
		ChangeLog: workflow.NewChangeLog(),
	}
	s.Refresh()
	return s
}

// Refresh recomputes all derived data from the task rows. Callers
// re-render afterwards.
func (s *State) Refresh() {
	tasks := s.Store.Tasks()
	s.Warnings = workflow.ComputeWarnings(tasks)
	s.Summary = workflow.ComputeSummary(tasks)
	s.Phases = workflow.ComputePhaseProgress(tasks)
	s.Assignees = workflow.ComputeAssigneeLoad(tasks)
	s.Deadlines = workflow.ComputeDeadlines(tasks, workflow.Today())
}

// ChangeStatus is the one status-change path used by every view. It
// normalizes the status, records the change and marks the state
// dirty. It reports whether the task now needs a back reason.
func (s *State) ChangeStatus(taskID string, status workflow.Status) (needsReason bool, changed bool) {
	t, err := s.Store.Get(taskID)
	if err != nil {
		return false, false
	}
	from := t.Status
	if from == status {
		return false, false
	}
	t.Status = status
	s.ChangeLog.Record(t.Name, "status", string(from), string(status))
	s.Dirty = true
	s.Refresh()
	return status == workflow.StatusBack, true
}

// RecordBackReason prepends the timestamped reason to the task notes.
// An empty reason leaves the notes alone; the status change stands
// either way.
func (s *State) RecordBackReason(taskID, reason string) {
	if reason == "" {
		return
	}
	t, err := s.Store.Get(taskID)
	if err != nil {
		return
	}
	stamp := time.Now().Format("2006-01-02 15:04")
	t.PrependNote("[" + stamp + "] " + reason)
	s.Dirty = true
	s.Refresh()
}

// SetField updates a text field on a task, recording date and
// assignee changes in the change log.
func (s *State) SetField(taskID, field, value string) {
	t, err := s.Store.Get(taskID)
	if err != nil {
		return
	}
	var from string
	switch field {
	case "name":
		from, t.Name = t.Name, value
	case "assignee":
		from, t.Assignee = t.Assignee, value
	case "start":
		from, t.StartDate = t.StartDate, value
	case "end":
		from, t.EndDate = t.EndDate, value
	case "notes":
		from, t.Notes = t.Notes, value
	default:
		return
	}
	if from != value {
		s.ChangeLog.Record(t.Name, field, from, value)
		s.Dirty = true
	}
	s.Refresh()
}

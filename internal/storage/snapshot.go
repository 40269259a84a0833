package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/workflow"
)

// SnapshotVersion is the format written by Capture.
const SnapshotVersion = 3

// fieldsPerRow is how many field states one workflow row contributes
// to the combined enumeration: name, assignee, start, end, status,
// notes.
const fieldsPerRow = 6

// Snapshot is the persisted briefing document. Version 3 carries
// structural counts plus a positional field list covering the form and
// every workflow row.
type Snapshot struct {
	Version              int               `json:"version"`
	InterviewType        string            `json:"interviewType"`
	IntervieweeCount     int               `json:"intervieweeCount"`
	DirectQuestionCount  int               `json:"directQuestionCount"`
	RequestQuestionCount int               `json:"requestQuestionCount"`
	WorkflowRowCount     int               `json:"workflowRowCount,omitempty"`
	Fields               []form.FieldState `json:"fields"`

	// restoreRows is false for version 2 snapshots, which replay field
	// values onto whatever rows already exist.
	restoreRows bool
	// legacy holds a version 1 document, which has no field list.
	legacy *legacySnapshot
}

// legacySnapshot is the version 1 shape: flat named project fields and
// two positional checkbox arrays.
type legacySnapshot struct {
	ProjectName    string `json:"projectName"`
	PublishDate    string `json:"publishDate"`
	Purpose        string `json:"purpose"`
	TargetAudience string `json:"targetAudience"`
	CoreMessage    string `json:"coreMessage"`
	Person         string `json:"person"`
	Approver       string `json:"approver"`
	Tasks          []bool `json:"tasks"`
	Checklists     []bool `json:"checklists"`
}

type migration struct {
	min    int
	decode func([]byte) (*Snapshot, error)
}

// migrations is consulted newest-first; the first entry whose minimum
// version the document meets decodes it. Documents without a version
// tag fall through to the version 1 decoder.
var migrations = []migration{
	{min: 3, decode: decodeV3},
	{min: 2, decode: decodeV2},
	{min: 0, decode: decodeV1},
}

// DecodeSnapshot parses a stored document of any supported version.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	for _, m := range migrations {
		if probe.Version >= m.min {
			return m.decode(data)
		}
	}
	return decodeV1(data)
}

func decodeV3(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing v3 snapshot: %w", err)
	}
	s.restoreRows = true
	return &s, nil
}

func decodeV2(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing v2 snapshot: %w", err)
	}
	s.restoreRows = false
	return &s, nil
}

func decodeV1(data []byte) (*Snapshot, error) {
	var legacy legacySnapshot
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parsing v1 snapshot: %w", err)
	}
	return &Snapshot{Version: 1, legacy: &legacy}, nil
}

// Capture builds a current-version snapshot from the live form and
// workflow rows.
func Capture(f *form.Form, store *workflow.Store) *Snapshot {
	fields := f.States()
	fields = append(fields, taskStates(store)...)
	return &Snapshot{
		Version:              SnapshotVersion,
		InterviewType:        string(f.InterviewType),
		IntervieweeCount:     len(f.Interviewees),
		DirectQuestionCount:  len(f.DirectQuestions),
		RequestQuestionCount: len(f.RequestQuestions),
		WorkflowRowCount:     store.Len(),
		Fields:               fields,
		restoreRows:          true,
	}
}

// Apply restores the snapshot onto the live form and workflow rows.
// Structural counts are settled first, then field values replay
// positionally; applying the same snapshot twice leaves the same
// state.
func (s *Snapshot) Apply(f *form.Form, store *workflow.Store) {
	if s.legacy != nil {
		s.legacy.apply(f)
		return
	}

	if s.InterviewType != "" {
		f.InterviewType = form.NormalizeInterviewType(s.InterviewType)
	}
	f.SetIntervieweeCount(s.IntervieweeCount)
	f.SetDirectQuestionCount(s.DirectQuestionCount)
	f.SetRequestQuestionCount(s.RequestQuestionCount)
	if s.restoreRows && s.WorkflowRowCount > 0 {
		store.Truncate(s.WorkflowRowCount)
	}

	consumed := f.Restore(s.Fields)
	if consumed < len(s.Fields) {
		applyTaskStates(store, s.Fields[consumed:])
	}
}

func (l *legacySnapshot) apply(f *form.Form) {
	// Named fields only overwrite when the saved value is non-empty.
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&f.Project.Name, l.ProjectName)
	setIf(&f.Project.PublishDate, l.PublishDate)
	setIf(&f.Project.Purpose, l.Purpose)
	setIf(&f.Project.TargetAudience, l.TargetAudience)
	setIf(&f.Project.CoreMessage, l.CoreMessage)
	setIf(&f.Project.Person, l.Person)
	setIf(&f.Project.Approver, l.Approver)

	// Checkbox arrays are positional and only ever set boxes, never
	// clear them.
	for i, checked := range l.Tasks {
		if checked && i < len(f.PlanChecks) {
			f.PlanChecks[i] = true
		}
	}
	for i, checked := range l.Checklists {
		if !checked {
			continue
		}
		if i < len(f.PrepChecks) {
			f.PrepChecks[i] = true
		} else if j := i - len(f.PrepChecks); j < len(f.PublishChecks) {
			f.PublishChecks[j] = true
		}
	}
}

// taskStates enumerates the workflow rows as field states, six per
// row, in display order.
func taskStates(store *workflow.Store) []form.FieldState {
	var states []form.FieldState
	for _, t := range store.Tasks() {
		states = append(states,
			form.FieldState{Type: "text", Value: t.Name},
			form.FieldState{Type: "text", Value: t.Assignee},
			form.FieldState{Type: "date", Value: t.StartDate},
			form.FieldState{Type: "date", Value: t.EndDate},
			form.FieldState{Type: "select-one", Value: string(t.Status)},
			form.FieldState{Type: "textarea", Value: t.Notes},
		)
	}
	return states
}

// applyTaskStates replays row field states positionally onto the
// current rows. Rows past the saved list keep their values.
func applyTaskStates(store *workflow.Store, states []form.FieldState) {
	tasks := store.Tasks()
	for i, t := range tasks {
		base := i * fieldsPerRow
		if base >= len(states) {
			break
		}
		get := func(off int) (form.FieldState, bool) {
			if base+off < len(states) {
				return states[base+off], true
			}
			return form.FieldState{}, false
		}
		if s, ok := get(0); ok {
			t.Name = s.Value
		}
		if s, ok := get(1); ok {
			t.Assignee = s.Value
		}
		if s, ok := get(2); ok {
			t.StartDate = s.Value
		}
		if s, ok := get(3); ok {
			t.EndDate = s.Value
		}
		if s, ok := get(4); ok {
			t.Status = workflow.NormalizeStatus(s.Value)
		}
		if s, ok := get(5); ok {
			t.Notes = s.Value
		}
	}
}

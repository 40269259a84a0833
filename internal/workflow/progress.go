package workflow

import (
	"math"
	"sort"
	"time"
)

// Summary is the overall completion rollup.
type Summary struct {
	Percent   int
	Completed int
	Total     int
}

// ComputeSummary counts done tasks against the total. An empty list
// yields 0 percent, not a division error.
func ComputeSummary(tasks []*Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == StatusDone {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// PhaseProgress is the completion rollup for one phase group.
type PhaseProgress struct {
	Phase   string
	Percent int
	Done    int
	Total   int
}

// ComputePhaseProgress groups tasks by phase, preserving first-seen
// phase order, and computes the percent per group. Tasks with an empty
// phase fall into an unnamed group.
func ComputePhaseProgress(tasks []*Task) []PhaseProgress {
	order := []string{}
	byPhase := map[string]*PhaseProgress{}
	for _, t := range tasks {
		p, ok := byPhase[t.Phase]
		if !ok {
			p = &PhaseProgress{Phase: t.Phase}
			byPhase[t.Phase] = p
			order = append(order, t.Phase)
		}
		p.Total++
		if t.Status == StatusDone {
			p.Done++
		}
	}
	out := make([]PhaseProgress, 0, len(order))
	for _, name := range order {
		p := byPhase[name]
		if p.Total > 0 {
			p.Percent = int(math.Round(float64(p.Done) / float64(p.Total) * 100))
		}
		out = append(out, *p)
	}
	return out
}

// AssigneeLoad is the per-assignee status breakdown. Unassigned rows are
// excluded entirely.
type AssigneeLoad struct {
	Assignee string
	Counts   map[Status]int
	Total    int
}

// ComputeAssigneeLoad groups tasks by non-empty assignee and counts per
// status. Results are sorted descending by total, ties broken by name so
// output is stable.
func ComputeAssigneeLoad(tasks []*Task) []AssigneeLoad {
	byName := map[string]*AssigneeLoad{}
	for _, t := range tasks {
		if t.Assignee == "" {
			continue
		}
		l, ok := byName[t.Assignee]
		if !ok {
			l = &AssigneeLoad{Assignee: t.Assignee, Counts: map[Status]int{}}
			byName[t.Assignee] = l
		}
		l.Counts[t.Status]++
		l.Total++
	}
	out := make([]AssigneeLoad, 0, len(byName))
	for _, l := range byName {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Assignee < out[j].Assignee
	})
	return out
}

// DeadlineFlag marks how close a task's end date is.
type DeadlineFlag int

const (
	FlagNone DeadlineFlag = iota
	FlagDueSoon
	FlagOverdue
)

// dueSoonDays is the lookahead window for the due-soon flag.
const dueSoonDays = 3

// Today returns the local midnight for the current moment.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// DeadlineFor flags a single task against the given "today" (local
// midnight). Done tasks and tasks without a parseable end date never
// flag.
func DeadlineFor(t *Task, today time.Time) DeadlineFlag {
	if t.Status == StatusDone {
		return FlagNone
	}
	end, ok := ParseDate(t.EndDate)
	if !ok {
		return FlagNone
	}
	if end.Before(today) {
		return FlagOverdue
	}
	soon := today.AddDate(0, 0, dueSoonDays)
	if !end.After(soon) {
		return FlagDueSoon
	}
	return FlagNone
}

// ComputeDeadlines flags every task, keyed by task ID. Unflagged tasks
// are omitted.
func ComputeDeadlines(tasks []*Task, today time.Time) map[string]DeadlineFlag {
	out := map[string]DeadlineFlag{}
	for _, t := range tasks {
		if f := DeadlineFor(t, today); f != FlagNone {
			out[t.ID] = f
		}
	}
	return out
}

package workflow

// Warning is the dependency annotation for one task: the canonical
// names of its unfinished prerequisites, in table order.
type Warning struct {
	TaskID   string
	Blockers []string
}

// ComputeWarnings walks the task list and returns blocking-prerequisite
// warnings keyed by task ID.
//
// Rules: a done task never warns. A prerequisite missing from the
// current rows never blocks; only present rows can. With duplicate
// canonical names the first matching row decides. No cycle detection is
// performed; a cyclic dependency configuration simply warns on every
// member until one is marked done.
func ComputeWarnings(tasks []*Task) map[string][]string {
	byName := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byName[t.Name]; !ok {
			byName[t.Name] = t
		}
	}

	warnings := make(map[string][]string)
	for _, t := range tasks {
		if t.Status == StatusDone {
			continue
		}
		// Dependency edges use exact canonical names only; the fuzzy
		// guidance lookup is for the help modal, not the graph.
		deps := guidanceJA[t.Name].Prerequisites
		if len(deps) == 0 {
			continue
		}
		var blockers []string
		for _, dep := range deps {
			row, ok := byName[dep]
			if !ok {
				continue
			}
			if row.Status != StatusDone {
				blockers = append(blockers, dep)
			}
		}
		if len(blockers) > 0 {
			warnings[t.ID] = blockers
		}
	}
	return warnings
}

// FormatBlockers renders blocker names for display, translating them to
// the active language.
func FormatBlockers(lang Lang, blockers []string) []string {
	out := make([]string, len(blockers))
	for i, b := range blockers {
		out[i] = TranslateTask(lang, b)
	}
	return out
}

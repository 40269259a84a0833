package workflow

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"todo", StatusTodo},
		{"doing", StatusDoing},
		{"review", StatusReview},
		{"back", StatusBack},
		{"done", StatusDone},
		{"", StatusTodo},
		{"bogus", StatusTodo},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.input); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := ParseDate("2026/08/30"); ok {
		t.Error("wrong layout should not parse")
	}
	d, ok := ParseDate("2026-08-30")
	if !ok {
		t.Fatal("valid date should parse")
	}
	if FormatDate(d) != "2026-08-30" {
		t.Errorf("round-trip mismatch: %q", FormatDate(d))
	}
}

func TestDefaultStore(t *testing.T) {
	s := DefaultStore()
	if s.Len() != 40 {
		t.Fatalf("expected 40 seeded rows, got %d", s.Len())
	}
	for _, task := range s.Tasks() {
		if task.ID == "" {
			t.Fatal("seeded task missing ID")
		}
		if task.Status != StatusTodo {
			t.Errorf("seeded task %q should start todo", task.Name)
		}
		// Every seeded row has a guidance entry under its exact name.
		if _, ok := guidanceJA[task.Name]; !ok {
			t.Errorf("seeded task %q has no guidance entry", task.Name)
		}
	}
	if s.At(0).Phase != "企画・構成" {
		t.Errorf("first row phase = %q", s.At(0).Phase)
	}
}

func TestStore_AddRemove(t *testing.T) {
	s := NewStore()
	task := NewTask("phase", "name")
	s.Add(task)

	got, err := s.Get(task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != task {
		t.Error("Get returned a different task")
	}

	if err := s.Remove(task.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
	if err := s.Remove(task.ID); err == nil {
		t.Error("removing a missing task should error")
	}
}

func TestStore_Move(t *testing.T) {
	s := NewStore()
	a := NewTask("p", "a")
	b := NewTask("p", "b")
	c := NewTask("p", "c")
	s.Add(a)
	s.Add(b)
	s.Add(c)

	if err := s.Move(c.ID, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if s.At(0) != c || s.At(1) != a || s.At(2) != b {
		t.Errorf("unexpected order after move: %v %v %v", s.At(0).Name, s.At(1).Name, s.At(2).Name)
	}

	// Out-of-range targets clamp.
	if err := s.Move(c.ID, 99); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if s.At(2) != c {
		t.Error("move past end should clamp to last position")
	}

	// Identity survives reordering.
	if got, err := s.Get(c.ID); err != nil || got.Name != "c" {
		t.Error("task identity must be unaffected by reordering")
	}
}

func TestStore_Truncate(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Add(NewTask("p", "t"))
	}

	s.Truncate(3)
	if s.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", s.Len())
	}

	s.Truncate(6)
	if s.Len() != 6 {
		t.Errorf("expected 6 rows, got %d", s.Len())
	}

	// Idempotent on an already-correct structure.
	before := make([]string, s.Len())
	for i, task := range s.Tasks() {
		before[i] = task.ID
	}
	s.Truncate(6)
	for i, task := range s.Tasks() {
		if task.ID != before[i] {
			t.Fatal("truncate to current size must not replace rows")
		}
	}
}

func TestStore_FindByNameFirstWins(t *testing.T) {
	s := NewStore()
	first := NewTask("p", "dup")
	second := NewTask("p", "dup")
	s.Add(first)
	s.Add(second)
	if got := s.FindByName("dup"); got != first {
		t.Error("first matching row should win for name lookups")
	}
	if got := s.FindByName("missing"); got != nil {
		t.Error("missing name should return nil")
	}
}

func TestTask_PrependNote(t *testing.T) {
	task := NewTask("p", "t")
	task.PrependNote("first")
	task.PrependNote("second")
	if task.Notes != "second\nfirst" {
		t.Errorf("notes = %q, want newest first", task.Notes)
	}
	task.PrependNote("   ")
	if task.Notes != "second\nfirst" {
		t.Error("blank note lines should be ignored")
	}
}

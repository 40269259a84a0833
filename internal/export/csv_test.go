package export

import (
	"strings"
	"testing"

	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/workflow"
)

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"comma and quote", `say "hi", bye`, `"say ""hi"", bye"`},
		{"comma only", "a,b", `"a,b"`},
		{"quote only", `a"b`, `"a""b"`},
		{"newline", "a\nb", "\"a\nb\""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeCSV(tt.in); got != tt.want {
				t.Errorf("EscapeCSV(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSV(t *testing.T) {
	f := form.New(workflow.LangJA)
	f.Project.Name = "会社案内, 2026年版"

	store := workflow.NewStore()
	task := workflow.NewTask("企画・構成", "目的/ゴールの明確化")
	task.Assignee = "田中"
	task.Status = workflow.StatusDoing
	store.Add(task)

	out := string(CSV(f, store, "direct", workflow.LangJA))
	lines := strings.Split(out, "\n")

	if lines[0] != "section,label,value" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, `project,制作物名,"会社案内, 2026年版"`) {
		t.Error("project name row missing or unescaped")
	}
	if !strings.Contains(out, "workflow,行1 担当者,田中") {
		t.Error("assignee row missing")
	}
	if !strings.Contains(out, "workflow,行1 ステータス,doing") {
		t.Error("status row missing")
	}

	last := lines[len(lines)-1]
	if last != "meta,interviewType,direct" {
		t.Errorf("last row = %q, want meta row", last)
	}
}

func TestCSVNoMetaWithoutInterviewType(t *testing.T) {
	f := form.New(workflow.LangJA)
	out := string(CSV(f, workflow.NewStore(), "", workflow.LangJA))
	if strings.Contains(out, "meta,interviewType") {
		t.Error("meta row should be absent without a persisted snapshot")
	}
}

func TestCSVEnglishLabels(t *testing.T) {
	f := form.New(workflow.LangEN)
	store := workflow.NewStore()
	store.Add(workflow.NewTask("企画・構成", "目的/ゴールの明確化"))

	out := string(CSV(f, store, "", workflow.LangEN))
	if !strings.Contains(out, "project,Project Name,") {
		t.Error("english project label missing")
	}
	if !strings.Contains(out, "workflow,Row 1 Task,Define purpose/goals") {
		t.Error("english task row missing")
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("", "json"); got != "pr-workflow-data.json" {
		t.Errorf("FileName = %q", got)
	}
	if got := FileName("会社案内 2026", "csv"); !strings.HasPrefix(got, "pr-workflow-data-") || !strings.HasSuffix(got, ".csv") {
		t.Errorf("FileName = %q", got)
	}
}

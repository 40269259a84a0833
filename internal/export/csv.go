// Package export renders the saved briefing document as JSON or CSV
// download files.
package export

import (
	"fmt"
	"strings"

	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/workflow"
)

// CSV renders the live form and workflow rows as section,label,value
// lines. interviewType, when non-empty, is the persisted value and
// gets one trailing meta row.
func CSV(f *form.Form, store *workflow.Store, interviewType string, lang workflow.Lang) []byte {
	var b strings.Builder
	b.WriteString("section,label,value\n")

	for _, field := range f.Fields(lang) {
		value := field.Value
		if field.Type == "checkbox" || field.Type == "radio" {
			value = "false"
			if field.Checked {
				value = "true"
			}
		}
		writeRow(&b, field.Section, field.Label, value)
	}

	cols := columnLabels(lang)
	for i, t := range store.Tasks() {
		values := []string{
			workflow.TranslateTask(lang, t.Name),
			t.Assignee,
			t.StartDate,
			t.EndDate,
			string(t.Status),
			t.Notes,
		}
		for j, v := range values {
			label := fmt.Sprintf("%s%d %s", rowPrefix(lang), i+1, cols[j])
			writeRow(&b, "workflow", label, v)
		}
	}

	if interviewType != "" {
		writeRow(&b, "meta", "interviewType", interviewType)
	}

	return []byte(strings.TrimSuffix(b.String(), "\n"))
}

func writeRow(b *strings.Builder, section, label, value string) {
	b.WriteString(section)
	b.WriteByte(',')
	b.WriteString(EscapeCSV(label))
	b.WriteByte(',')
	b.WriteString(EscapeCSV(value))
	b.WriteByte('\n')
}

// EscapeCSV quote-wraps values containing a comma, quote or newline,
// doubling embedded quotes.
func EscapeCSV(v string) string {
	if strings.ContainsAny(v, "\",\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

func columnLabels(lang workflow.Lang) []string {
	if lang == workflow.LangEN {
		return []string{"Task", "Assignee", "Start", "End", "Status", "Notes"}
	}
	return []string{"タスク", "担当者", "開始日", "終了日", "ステータス", "メモ"}
}

func rowPrefix(lang workflow.Lang) string {
	if lang == workflow.LangEN {
		return "Row "
	}
	return "行"
}

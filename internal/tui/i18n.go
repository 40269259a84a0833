package tui

import "github.com/mark3labs/pubflow/internal/workflow"

// tr picks the label for the current language.
func tr(lang workflow.Lang, ja, en string) string {
	if lang == workflow.LangEN {
		return en
	}
	return ja
}

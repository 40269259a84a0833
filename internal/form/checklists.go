package form

import "github.com/mark3labs/pubflow/internal/workflow"

type checkItem struct {
	ja string
	en string
}

func (c checkItem) label(lang workflow.Lang) string {
	if lang == workflow.LangEN {
		return c.en
	}
	return c.ja
}

// Planning kickoff checklist.
var planChecklist = []checkItem{
	{"企画書の承認を得た", "Project brief approved"},
	{"関係者に役割を共有した", "Roles shared with stakeholders"},
	{"スケジュールに合意した", "Schedule agreed"},
	{"予算の上限を確認した", "Budget ceiling confirmed"},
}

// Interview preparation checklist.
var prepChecklist = []checkItem{
	{"質問リストを事前送付した", "Question list sent in advance"},
	{"録音機材を確認した", "Recording equipment checked"},
	{"同意書を準備した", "Consent form prepared"},
	{"当日の集合場所を共有した", "Meeting point shared"},
}

// Publication checklist.
var publishChecklist = []checkItem{
	{"最終データを入稿した", "Final data submitted"},
	{"公開日時を確定した", "Publication date fixed"},
	{"告知文を準備した", "Announcement copy prepared"},
	{"効果測定の指標を設定した", "Success metrics defined"},
}

// ChecklistLabels returns the localized labels of one checklist group.
func ChecklistLabels(group string, lang workflow.Lang) []string {
	var items []checkItem
	switch group {
	case "plan":
		items = planChecklist
	case "prep":
		items = prepChecklist
	case "publish":
		items = publishChecklist
	default:
		return nil
	}
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.label(lang)
	}
	return labels
}

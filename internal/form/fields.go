package form

import (
	"fmt"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// FieldState is the persisted shape of one editable field. Fields are
// saved and restored positionally, so the enumeration order below is
// part of the storage contract.
type FieldState struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// Field is one enumerated field with its display metadata, used for
// CSV export.
type Field struct {
	Section string
	Label   string
	Type    string
	Value   string
	Checked bool
}

type fieldRef struct {
	section string
	label   func(lang workflow.Lang) string
	typ     string
	get     func() (value string, checked bool)
	set     func(value string, checked bool)
}

func textRef(section string, label func(workflow.Lang) string, typ string, p *string) fieldRef {
	return fieldRef{
		section: section,
		label:   label,
		typ:     typ,
		get:     func() (string, bool) { return *p, false },
		set:     func(v string, _ bool) { *p = v },
	}
}

func checkRef(section string, label func(workflow.Lang) string, p *bool) fieldRef {
	return fieldRef{
		section: section,
		label:   label,
		typ:     "checkbox",
		get:     func() (string, bool) { return "", *p },
		set:     func(_ string, c bool) { *p = c },
	}
}

func bilingual(ja, en string) func(workflow.Lang) string {
	return func(lang workflow.Lang) string {
		if lang == workflow.LangEN {
			return en
		}
		return ja
	}
}

func indexed(ja, en string, i int) func(workflow.Lang) string {
	return func(lang workflow.Lang) string {
		if lang == workflow.LangEN {
			return fmt.Sprintf("%s %d", en, i+1)
		}
		return fmt.Sprintf("%s%d", ja, i+1)
	}
}

// refs enumerates every editable field in document order. Structural
// counts (interviewees, question lists) must be settled before the
// enumeration is consumed.
func (f *Form) refs() []fieldRef {
	var refs []fieldRef

	refs = append(refs,
		textRef("project", bilingual("制作物名", "Project Name"), "text", &f.Project.Name),
		textRef("project", bilingual("発行/公開日", "Publish Date"), "date", &f.Project.PublishDate),
		textRef("project", bilingual("目的", "Purpose"), "textarea", &f.Project.Purpose),
		textRef("project", bilingual("ターゲット", "Target Audience"), "textarea", &f.Project.TargetAudience),
		textRef("project", bilingual("コアメッセージ", "Core Message"), "textarea", &f.Project.CoreMessage),
		textRef("project", bilingual("担当者", "Person in Charge"), "text", &f.Project.Person),
		textRef("project", bilingual("承認者", "Approver"), "text", &f.Project.Approver),
	)

	for _, t := range []InterviewType{InterviewDirect, InterviewRequest} {
		t := t
		label := bilingual("直接取材", "Direct Interview")
		if t == InterviewRequest {
			label = bilingual("執筆依頼", "Writing Request")
		}
		refs = append(refs, fieldRef{
			section: "interview",
			label:   label,
			typ:     "radio",
			get: func() (string, bool) {
				return string(t), f.InterviewType == t
			},
			set: func(_ string, checked bool) {
				if checked {
					f.InterviewType = t
				}
			},
		})
	}

	for i := range f.Interviewees {
		iv := &f.Interviewees[i]
		refs = append(refs,
			textRef("interview", indexed("取材対象者 氏名 ", "Interviewee Name", i), "text", &iv.Name),
			textRef("interview", indexed("取材対象者 役職 ", "Interviewee Role", i), "text", &iv.Role),
			textRef("interview", indexed("取材対象者 所属 ", "Interviewee Organization", i), "text", &iv.Organization),
			textRef("interview", indexed("取材対象者 連絡先 ", "Interviewee Contact", i), "text", &iv.Contact),
			textRef("interview", indexed("取材対象者 メモ ", "Interviewee Notes", i), "textarea", &iv.Notes),
		)
	}

	for i := range f.DirectQuestions {
		q := &f.DirectQuestions[i]
		refs = append(refs,
			textRef("questions", indexed("質問Q", "Question Q", i), "text", &q.Text),
			textRef("questions", indexed("質問メモQ", "Question Notes Q", i), "textarea", &q.Notes),
		)
	}
	refs = append(refs,
		textRef("questions", bilingual("締めくくり質問", "Closing Question"), "text", &f.ClosingQuestion),
	)
	for i := range f.RequestQuestions {
		q := &f.RequestQuestions[i]
		refs = append(refs,
			textRef("questions", indexed("依頼項目R", "Request Item R", i), "text", &q.Text),
			textRef("questions", indexed("依頼項目メモR", "Request Notes R", i), "textarea", &q.Notes),
		)
	}

	for i := range f.PlanChecks {
		item := planChecklist[i%len(planChecklist)]
		refs = append(refs, checkRef("checklist", item.label, &f.PlanChecks[i]))
	}
	for i := range f.PrepChecks {
		item := prepChecklist[i%len(prepChecklist)]
		refs = append(refs, checkRef("checklist", item.label, &f.PrepChecks[i]))
	}
	for i := range f.PublishChecks {
		item := publishChecklist[i%len(publishChecklist)]
		refs = append(refs, checkRef("checklist", item.label, &f.PublishChecks[i]))
	}

	return refs
}

// States returns the ordered field values for persistence.
func (f *Form) States() []FieldState {
	refs := f.refs()
	states := make([]FieldState, len(refs))
	for i, r := range refs {
		v, c := r.get()
		states[i] = FieldState{Type: r.typ, Value: v, Checked: c}
	}
	return states
}

// Restore replays saved field values positionally onto the current
// structure and returns how many entries were consumed. Entries beyond
// the form's own fields are left for the caller (workflow rows follow
// the form in the combined enumeration). Missing entries leave fields
// untouched.
func (f *Form) Restore(states []FieldState) int {
	refs := f.refs()
	for i, r := range refs {
		if i >= len(states) {
			break
		}
		s := states[i]
		switch r.typ {
		case "checkbox", "radio":
			r.set("", s.Checked)
		default:
			r.set(s.Value, false)
		}
	}
	return len(refs)
}

// Fields returns the enumeration with localized labels for export.
func (f *Form) Fields(lang workflow.Lang) []Field {
	refs := f.refs()
	fields := make([]Field, len(refs))
	for i, r := range refs {
		v, c := r.get()
		fields[i] = Field{
			Section: r.section,
			Label:   r.label(lang),
			Type:    r.typ,
			Value:   v,
			Checked: c,
		}
	}
	return fields
}

// Package form models the briefing and interview panels whose values
// ride along in the saved snapshot next to the workflow rows.
package form

import (
	"fmt"
	"strings"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// InterviewType selects which question panel is active.
type InterviewType string

const (
	InterviewDirect  InterviewType = "direct"
	InterviewRequest InterviewType = "request"
)

// NormalizeInterviewType maps anything unrecognized to direct.
func NormalizeInterviewType(s string) InterviewType {
	if InterviewType(s) == InterviewRequest {
		return InterviewRequest
	}
	return InterviewDirect
}

// Project holds the top-level briefing fields.
type Project struct {
	Name           string
	PublishDate    string
	Purpose        string
	TargetAudience string
	CoreMessage    string
	Person         string
	Approver       string
}

// Interviewee is one card on the interviewee list.
type Interviewee struct {
	Name         string
	Role         string
	Organization string
	Contact      string
	Notes        string
}

// Question is one item on a direct or request question list. Text is
// the question itself, Notes holds follow-ups and answers.
type Question struct {
	Text  string
	Notes string
}

// Form is the full briefing document apart from the workflow table.
type Form struct {
	Project          Project
	InterviewType    InterviewType
	Interviewees     []Interviewee
	DirectQuestions  []Question
	ClosingQuestion  string
	RequestQuestions []Question
	PlanChecks       []bool
	PrepChecks       []bool
	PublishChecks    []bool
}

// New returns a form with one empty interviewee card and the default
// closing question for the given language.
func New(lang workflow.Lang) *Form {
	return &Form{
		InterviewType:   InterviewDirect,
		Interviewees:    []Interviewee{{}},
		ClosingQuestion: DefaultClosingQuestion(lang),
		PlanChecks:      make([]bool, len(planChecklist)),
		PrepChecks:      make([]bool, len(prepChecklist)),
		PublishChecks:   make([]bool, len(publishChecklist)),
	}
}

// DefaultClosingQuestion returns the stock final interview question.
func DefaultClosingQuestion(lang workflow.Lang) string {
	if lang == workflow.LangEN {
		return "Is there anything else you would like to share?"
	}
	return "他に伝えておきたいことはありますか？"
}

func (f *Form) AddInterviewee() {
	f.Interviewees = append(f.Interviewees, Interviewee{})
}

func (f *Form) RemoveInterviewee(i int) {
	if i < 0 || i >= len(f.Interviewees) {
		return
	}
	f.Interviewees = append(f.Interviewees[:i], f.Interviewees[i+1:]...)
}

func (f *Form) AddQuestion(t InterviewType) {
	if t == InterviewRequest {
		f.RequestQuestions = append(f.RequestQuestions, Question{})
		return
	}
	f.DirectQuestions = append(f.DirectQuestions, Question{})
}

func (f *Form) RemoveQuestion(t InterviewType, i int) {
	if t == InterviewRequest {
		if i < 0 || i >= len(f.RequestQuestions) {
			return
		}
		f.RequestQuestions = append(f.RequestQuestions[:i], f.RequestQuestions[i+1:]...)
		return
	}
	if i < 0 || i >= len(f.DirectQuestions) {
		return
	}
	f.DirectQuestions = append(f.DirectQuestions[:i], f.DirectQuestions[i+1:]...)
}

// QuestionBadge returns the list marker for the i-th question,
// zero-based: Q1, Q2, ... for direct and R1, R2, ... for requests.
func QuestionBadge(t InterviewType, i int) string {
	if t == InterviewRequest {
		return fmt.Sprintf("R%d", i+1)
	}
	return fmt.Sprintf("Q%d", i+1)
}

// ClosingQuestionBadge numbers the closing question after the direct
// list.
func (f *Form) ClosingQuestionBadge() string {
	return fmt.Sprintf("Q%d", len(f.DirectQuestions)+1)
}

// SetIntervieweeCount pads or truncates the interviewee list to n.
// Existing cards keep their content; a no-op when n already matches.
func (f *Form) SetIntervieweeCount(n int) {
	f.Interviewees = resize(f.Interviewees, n)
}

// SetDirectQuestionCount pads or truncates the direct question list.
func (f *Form) SetDirectQuestionCount(n int) {
	f.DirectQuestions = resize(f.DirectQuestions, n)
}

// SetRequestQuestionCount pads or truncates the request question list.
func (f *Form) SetRequestQuestionCount(n int) {
	f.RequestQuestions = resize(f.RequestQuestions, n)
}

func resize[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	for len(s) < n {
		var zero T
		s = append(s, zero)
	}
	return s[:n]
}

// RequiredRemaining counts required briefing fields that are still
// blank: project name, publish date, purpose, target audience and
// core message.
func (f *Form) RequiredRemaining() int {
	remaining := 0
	for _, v := range []string{
		f.Project.Name,
		f.Project.PublishDate,
		f.Project.Purpose,
		f.Project.TargetAudience,
		f.Project.CoreMessage,
	} {
		if strings.TrimSpace(v) == "" {
			remaining++
		}
	}
	return remaining
}

package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// ViewType identifies the active workflow view.
type ViewType int

const (
	ViewTable ViewType = iota
	ViewKanban
	ViewGantt
)

// FooterAction represents a clickable action in the footer.
type FooterAction string

const (
	FooterActionTable     FooterAction = "table"
	FooterActionKanban    FooterAction = "kanban"
	FooterActionGantt     FooterAction = "gantt"
	FooterActionSave      FooterAction = "save"
	FooterActionExport    FooterAction = "export"
	FooterActionGuide     FooterAction = "guide"
	FooterActionChangeLog FooterAction = "changelog"
	FooterActionProgress  FooterAction = "progress"
	FooterActionLang      FooterAction = "lang"
	FooterActionQuit      FooterAction = "quit"
)

// footerButton tracks the hit region for a clickable footer button.
type footerButton struct {
	action FooterAction
	startX int // inclusive
	endX   int // exclusive
}

// Footer renders the bottom bar with key hints.
type Footer struct {
	width      int
	activeView ViewType
	lang       workflow.Lang
	area       uv.Rectangle
	buttons    []footerButton
}

// NewFooter creates a new Footer component.
func NewFooter() *Footer {
	return &Footer{lang: workflow.LangJA}
}

// SetActiveView highlights the current view's hint.
func (f *Footer) SetActiveView(view ViewType) {
	f.activeView = view
}

// SetLang switches the hint language.
func (f *Footer) SetLang(lang workflow.Lang) {
	f.lang = lang
}

// SetSize updates the component dimensions.
func (f *Footer) SetSize(width, height int) {
	f.width = width
}

// Update handles messages; the footer reacts only to clicks, which the
// app routes through HandleClick.
func (f *Footer) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// Draw renders the footer and records button hit regions.
func (f *Footer) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	f.area = area

	lang := f.lang
	hints := []struct {
		key    string
		label  string
		action FooterAction
		active bool
	}{
		{"1", tr(lang, "工程表", "table"), FooterActionTable, f.activeView == ViewTable},
		{"2", tr(lang, "カンバン", "kanban"), FooterActionKanban, f.activeView == ViewKanban},
		{"3", tr(lang, "ガント", "gantt"), FooterActionGantt, f.activeView == ViewGantt},
		{"s", tr(lang, "保存", "save"), FooterActionSave, false},
		{"e", tr(lang, "書出", "export"), FooterActionExport, false},
		{"g", tr(lang, "ガイド", "guide"), FooterActionGuide, false},
		{"c", tr(lang, "履歴", "log"), FooterActionChangeLog, false},
		{"p", tr(lang, "進捗", "stats"), FooterActionProgress, false},
		{"L", tr(lang, "言語", "lang"), FooterActionLang, false},
		{"q", tr(lang, "終了", "quit"), FooterActionQuit, false},
	}

	f.buttons = f.buttons[:0]
	var b strings.Builder
	x := area.Min.X + 1 // styleFooter pads one cell
	for i, h := range hints {
		if i > 0 {
			b.WriteString("  ")
			x += 2
		}
		labelStyle := styleFooterLabel
		if h.active {
			labelStyle = styleFooterActive
		}
		part := styleFooterKey.Render(h.key) + " " + labelStyle.Render(h.label)
		w := lipgloss.Width(part)
		f.buttons = append(f.buttons, footerButton{
			action: h.action,
			startX: x,
			endX:   x + w,
		})
		b.WriteString(part)
		x += w
	}

	DrawStyled(scr, area, styleFooter, b.String())
	return nil
}

// ActionAt returns the footer action under the given screen position.
func (f *Footer) ActionAt(x, y int) (FooterAction, bool) {
	if y < f.area.Min.Y || y >= f.area.Max.Y {
		return "", false
	}
	for _, btn := range f.buttons {
		if x >= btn.startX && x < btn.endX {
			return btn.action, true
		}
	}
	return "", false
}

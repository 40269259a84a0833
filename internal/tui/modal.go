package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// GuidanceModal shows the reference guidance for a task in a centered
// overlay: description, deliverable, tips, checkpoints and
// prerequisites. Unknown task names get a "not available" body.
type GuidanceModal struct {
	taskName string
	lang     workflow.Lang
	visible  bool
	width    int
	height   int
}

// NewGuidanceModal creates the guidance overlay.
func NewGuidanceModal() *GuidanceModal {
	return &GuidanceModal{
		width:  64,
		height: 22,
	}
}

// Show opens the modal for the given task name.
func (m *GuidanceModal) Show(taskName string, lang workflow.Lang) {
	m.taskName = taskName
	m.lang = lang
	m.visible = true
}

// Close hides the modal.
func (m *GuidanceModal) Close() {
	m.visible = false
	m.taskName = ""
}

// IsVisible returns whether the modal is currently visible.
func (m *GuidanceModal) IsVisible() bool {
	return m.visible
}

// Update handles keyboard input while the modal is open.
func (m *GuidanceModal) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "g", "q":
			m.Close()
		}
	}
	return nil
}

// Draw renders the modal centered on the screen buffer.
func (m *GuidanceModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}

	modalWidth := m.width
	if modalWidth > area.Dx()-4 {
		modalWidth = area.Dx() - 4
	}
	if modalWidth < 30 {
		modalWidth = 30
	}

	content := m.buildContent(modalWidth - 4)

	modalStyle := styleModalContainer.Width(modalWidth)
	rendered := modalStyle.Render(content)

	DrawCentered(scr, area, rendered)
}

func (m *GuidanceModal) buildContent(width int) string {
	lang := m.lang
	var sections []string

	title := styleModalTitle.Width(width).Render(tr(lang, "タスクガイド", "Task Guide"))
	sections = append(sections, title, "")

	g, key, ok := workflow.LookupGuidance(m.taskName)
	if ok && lang == workflow.LangEN {
		if en, found := workflow.GuidanceEN(key); found {
			g = en
		}
	}

	name := workflow.TranslateTask(lang, m.taskName)
	sections = append(sections, styleModalLabel.Render(name), "")

	if !ok {
		sections = append(sections,
			styleModalText.Render(tr(lang,
				"このタスクのガイドはまだ用意されていません。",
				"Guidance for this task is not available yet.")))
		sections = append(sections, "", m.closeHint(width))
		return strings.Join(sections, "\n")
	}

	sep := styleDim.Render(strings.Repeat("─", width))

	sections = append(sections, wrapText(g.Description, width), "")

	if g.Deliverable != "" {
		sections = append(sections,
			styleModalLabel.Render(tr(lang, "成果物: ", "Deliverable: "))+
				styleModalText.Render(g.Deliverable))
		sections = append(sections, "")
	}

	if len(g.Tips) > 0 {
		sections = append(sections, sep)
		sections = append(sections, styleModalLabel.Render(tr(lang, "ヒント", "Tips")))
		for _, tip := range g.Tips {
			sections = append(sections, wrapText("・"+tip, width))
		}
		sections = append(sections, "")
	}

	if len(g.Checkpoints) > 0 {
		sections = append(sections, styleModalLabel.Render(tr(lang, "チェックポイント", "Checkpoints")))
		for _, cp := range g.Checkpoints {
			sections = append(sections, wrapText("□ "+cp, width))
		}
		sections = append(sections, "")
	}

	if prereqs := workflow.Prerequisites(m.taskName); len(prereqs) > 0 {
		var names []string
		for _, p := range prereqs {
			names = append(names, workflow.TranslateTask(lang, p))
		}
		sections = append(sections,
			styleModalLabel.Render(tr(lang, "前提タスク: ", "Prerequisites: "))+
				styleModalText.Render(strings.Join(names, ", ")))
		sections = append(sections, "")
	}

	sections = append(sections, m.closeHint(width))
	return strings.Join(sections, "\n")
}

func (m *GuidanceModal) closeHint(width int) string {
	return styleDim.Width(width).AlignHorizontal(lipgloss.Center).
		Render(tr(m.lang, "[esc で閉じる]", "[esc to close]"))
}

// wrapText wraps text to the given display width, breaking on runes so
// CJK text wraps too.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var lines []string
	var line strings.Builder
	w := 0
	for _, r := range text {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			lines = append(lines, line.String())
			line.Reset()
			w = 0
		}
		line.WriteRune(r)
		w += rw
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

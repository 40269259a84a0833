package tui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// ReasonModal collects the reason for a 差し戻し status change. Submit
// emits a BackReasonMsg; cancel closes without one, and the status
// change stands either way.
type ReasonModal struct {
	visible  bool
	taskID   string
	lang     workflow.Lang
	textarea textarea.Model
	width    int
}

// NewReasonModal creates the back-reason input modal.
func NewReasonModal() *ReasonModal {
	ta := textarea.New()
	ta.CharLimit = 500
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetWidth(50)
	ta.SetHeight(4)

	return &ReasonModal{
		textarea: ta,
		width:    58,
	}
}

// Show opens the modal for the given task.
func (m *ReasonModal) Show(taskID string, lang workflow.Lang) tea.Cmd {
	m.visible = true
	m.taskID = taskID
	m.lang = lang
	m.textarea.SetValue("")
	m.textarea.Placeholder = tr(lang, "差し戻しの理由を入力...", "Reason for returning...")
	return m.textarea.Focus()
}

// Close hides the modal without submitting.
func (m *ReasonModal) Close() {
	m.visible = false
	m.taskID = ""
	m.textarea.Blur()
}

// IsVisible returns whether the modal is currently visible.
func (m *ReasonModal) IsVisible() bool {
	return m.visible
}

// Update handles keyboard input while the modal is open.
func (m *ReasonModal) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.Close()
		return nil
	case "ctrl+s", "ctrl+enter":
		return m.submit()
	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return cmd
	}
}

// submit closes the modal and emits the collected reason.
func (m *ReasonModal) submit() tea.Cmd {
	taskID := m.taskID
	reason := strings.TrimSpace(m.textarea.Value())
	m.Close()
	if reason == "" {
		return nil
	}
	return func() tea.Msg {
		return BackReasonMsg{TaskID: taskID, Reason: reason}
	}
}

// Draw renders the modal centered on the screen buffer.
func (m *ReasonModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}
	lang := m.lang

	var sections []string
	sections = append(sections,
		styleModalTitle.Width(m.width-4).Render(tr(lang, "差し戻し理由", "Return Reason")),
		"",
		m.textarea.View(),
		"",
		styleDim.Render(tr(lang,
			"ctrl+s 記録  esc キャンセル（状態は変更済み）",
			"ctrl+s record  esc cancel (status already changed)")))

	content := styleModalContainer.Width(m.width).Render(strings.Join(sections, "\n"))
	DrawCentered(scr, area, content)
}

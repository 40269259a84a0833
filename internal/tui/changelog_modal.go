package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// ChangeLogModal shows the most recent change-log entries, newest
// first.
type ChangeLogModal struct {
	visible bool
	lang    workflow.Lang
	log     *workflow.ChangeLog
	scroll  int
	width   int
	height  int
}

// NewChangeLogModal creates the change-log overlay.
func NewChangeLogModal() *ChangeLogModal {
	return &ChangeLogModal{
		width:  70,
		height: 24,
	}
}

// Show opens the modal over the given log.
func (m *ChangeLogModal) Show(log *workflow.ChangeLog, lang workflow.Lang) {
	m.visible = true
	m.log = log
	m.lang = lang
	m.scroll = 0
}

// Close hides the modal.
func (m *ChangeLogModal) Close() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible.
func (m *ChangeLogModal) IsVisible() bool {
	return m.visible
}

// Update handles keyboard input while the modal is open.
func (m *ChangeLogModal) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "esc", "enter", "c", "q":
		m.Close()
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		m.scroll++
	}
	return nil
}

// Draw renders the modal centered on the screen buffer.
func (m *ChangeLogModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}
	lang := m.lang

	modalWidth := m.width
	if modalWidth > area.Dx()-4 {
		modalWidth = area.Dx() - 4
	}
	innerWidth := modalWidth - 4

	var lines []string
	lines = append(lines,
		styleModalTitle.Width(innerWidth).Render(tr(lang, "変更履歴", "Change Log")),
		"")

	entries := m.log.Recent()
	if len(entries) == 0 {
		lines = append(lines, styleEmptyState.Render(tr(lang, "履歴はまだありません", "No changes recorded yet")))
	} else {
		maxRows := m.height - 6
		if m.scroll > len(entries)-maxRows {
			m.scroll = len(entries) - maxRows
		}
		if m.scroll < 0 {
			m.scroll = 0
		}
		for i := m.scroll; i < len(entries) && i < m.scroll+maxRows; i++ {
			lines = append(lines, m.renderEntry(entries[i], innerWidth))
		}
	}

	lines = append(lines, "", styleDim.Render(tr(lang, "[esc で閉じる]", "[esc to close]")))

	content := styleModalContainer.Width(modalWidth).Render(strings.Join(lines, "\n"))
	DrawCentered(scr, area, content)
}

func (m *ChangeLogModal) renderEntry(e workflow.ChangeEntry, width int) string {
	lang := m.lang
	when := e.Timestamp.Format("01-02 15:04")

	task := truncate(workflow.TranslateTask(lang, e.Task), 18)
	detail := fmt.Sprintf("%s: %s → %s", e.Field, m.renderValue(e.From), m.renderValue(e.To))

	// Trim the plain text before styling so the escape sequences stay
	// intact.
	room := width - lipgloss.Width(when) - lipgloss.Width(task) - 2
	if room > 0 {
		detail = truncate(detail, room)
	}
	return styleDim.Render(when) + " " + styleModalLabel.Render(task) + " " + styleModalText.Render(detail)
}

// renderValue shows status values in the active language and keeps
// everything else verbatim.
func (m *ChangeLogModal) renderValue(v string) string {
	if v == "" {
		return tr(m.lang, "（空）", "(empty)")
	}
	st := workflow.NormalizeStatus(v)
	if string(st) == v {
		return workflow.StatusLabel(m.lang, st)
	}
	return v
}

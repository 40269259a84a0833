package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// ProgressModal shows the per-phase completion bars and the assignee
// workload breakdown.
type ProgressModal struct {
	visible bool
	state   *State
	width   int
}

// NewProgressModal creates the progress overlay.
func NewProgressModal() *ProgressModal {
	return &ProgressModal{width: 62}
}

// SetState attaches the shared application state.
func (m *ProgressModal) SetState(s *State) {
	m.state = s
}

// Show opens the modal.
func (m *ProgressModal) Show() {
	m.visible = true
}

// Close hides the modal.
func (m *ProgressModal) Close() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible.
func (m *ProgressModal) IsVisible() bool {
	return m.visible
}

// Update handles keyboard input while the modal is open.
func (m *ProgressModal) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "esc", "enter", "p", "q":
		m.Close()
	}
	return nil
}

// Draw renders the modal centered on the screen buffer.
func (m *ProgressModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}
	lang := m.state.Lang

	modalWidth := m.width
	if modalWidth > area.Dx()-4 {
		modalWidth = area.Dx() - 4
	}
	innerWidth := modalWidth - 4

	var lines []string
	lines = append(lines,
		styleModalTitle.Width(innerWidth).Render(tr(lang, "進捗サマリー", "Progress Summary")),
		"",
		styleModalLabel.Render(tr(lang, "工程別の進捗", "Progress by Phase")))
	for _, p := range m.state.Phases {
		lines = append(lines, m.renderPhase(p, innerWidth))
	}

	lines = append(lines, "", styleModalLabel.Render(tr(lang, "担当者別の負荷", "Assignee Workload")))
	if len(m.state.Assignees) == 0 {
		lines = append(lines, styleEmptyState.Render(tr(lang, "担当者はまだ割り当てられていません", "No assignees yet")))
	} else {
		for _, l := range m.state.Assignees {
			lines = append(lines, m.renderLoad(l, innerWidth))
		}
	}

	lines = append(lines, "", styleDim.Render(tr(lang, "[esc で閉じる]", "[esc to close]")))

	content := styleModalContainer.Width(modalWidth).Render(strings.Join(lines, "\n"))
	DrawCentered(scr, area, content)
}

func (m *ProgressModal) renderPhase(p workflow.PhaseProgress, width int) string {
	label := truncate(workflow.TranslatePhase(m.state.Lang, p.Phase), 20)
	label = pad(label, 20)
	counts := fmt.Sprintf("%3d%% (%d/%d)", p.Percent, p.Done, p.Total)
	return styleModalText.Render(label) + " " + renderProgressBar(p.Percent, 14) + " " + styleModalText.Render(counts)
}

// renderLoad shows one assignee line: total rows plus the per-status
// counts in cycle order, zero counts omitted.
func (m *ProgressModal) renderLoad(l workflow.AssigneeLoad, width int) string {
	lang := m.state.Lang
	name := pad(truncate(l.Assignee, 14), 14)

	parts := make([]string, 0, len(workflow.AllStatuses))
	for _, st := range workflow.AllStatuses {
		n := l.Counts[st]
		if n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", workflow.StatusLabel(lang, st), n))
	}
	detail := fmt.Sprintf("%2d%s  %s", l.Total, tr(lang, "件", " rows"), strings.Join(parts, " / "))
	detail = truncate(detail, width-15)
	return styleModalText.Render(name + " " + detail)
}

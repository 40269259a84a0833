package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"
)

// StatusBar shows overall progress (left) and save/language state
// (right).
type StatusBar struct {
	width  int
	height int
	state  *State
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetState attaches the shared application state.
func (s *StatusBar) SetState(state *State) {
	s.state = state
}

// SetSize updates the component dimensions.
func (s *StatusBar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update handles messages; the status bar is display-only.
func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// Draw renders the status bar.
func (s *StatusBar) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if s.state == nil || area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	lang := s.state.Lang

	left := s.buildLeft()

	right := styleHeaderInfo.Render(strings.ToUpper(string(lang)))
	if s.state.Dirty {
		right = lipgloss.NewStyle().Foreground(colorWarning).Render("● "+tr(lang, "未保存", "unsaved")) +
			styleHeaderSeparator.Render(" | ") + right
	} else {
		right = lipgloss.NewStyle().Foreground(colorSuccess).Render("● "+tr(lang, "保存済", "saved")) +
			styleHeaderSeparator.Render(" | ") + right
	}

	padding := area.Dx() - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	content := left + strings.Repeat(" ", padding) + right

	DrawStyled(scr, area, styleStatusBar, content)
	return nil
}

func (s *StatusBar) buildLeft() string {
	lang := s.state.Lang
	sep := styleHeaderSeparator.Render(" | ")

	left := styleHeaderTitle.Render("pubflow")

	if name := strings.TrimSpace(s.state.Form.Project.Name); name != "" {
		left += sep + styleHeaderInfo.Render(truncate(name, 24))
	}

	sum := s.state.Summary
	progress := fmt.Sprintf("%d%% (%d/%d)", sum.Percent, sum.Completed, sum.Total)
	left += sep + styleHeaderInfo.Render(tr(lang, "進捗 ", "progress ")+progress)
	left += " " + renderProgressBar(sum.Percent, 12)

	return left
}

// renderProgressBar draws a fixed-width bar for a 0-100 percent value.
func renderProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return styleProgressFill.Render(strings.Repeat("█", filled)) +
		styleProgressTrack.Render(strings.Repeat("░", width-filled))
}

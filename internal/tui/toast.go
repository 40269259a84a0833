package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"
)

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// Toast is a transient notification shown bottom-right, auto-dismissed
// after 3 seconds.
type Toast struct {
	message   string
	visible   bool
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast with the given message.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.dismissAt = time.Now().Add(3 * time.Second)
	return t.dismissCmd()
}

// dismissCmd schedules the dismissal for the remaining display time.
func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = 1 * time.Millisecond
	}
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

// Update handles dismissal ticks.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(ToastDismissMsg); ok {
		t.visible = false
		t.message = ""
	}
	return nil
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Draw renders the toast one row above the footer, right-aligned.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	if !t.visible || t.message == "" {
		return
	}

	content := styleToast.Render(t.message)
	w := lipgloss.Width(content)
	if w > area.Dx()-2 {
		content = styleToast.Width(area.Dx() - 2).Render(t.message)
		w = lipgloss.Width(content)
	}

	y := area.Max.Y - FooterHeight - 1
	if y < area.Min.Y {
		y = area.Min.Y
	}
	x := area.Max.X - w - 1
	if x < area.Min.X {
		x = area.Min.X
	}

	uv.NewStyledString(content).Draw(scr, uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + w, Y: y + 1},
	})
}

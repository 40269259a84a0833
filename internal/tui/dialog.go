package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"
)

// ConfirmDialog is a centered yes/no dialog. Confirm runs onConfirm;
// cancel just closes.
type ConfirmDialog struct {
	title     string
	message   string
	yesLabel  string
	noLabel   string
	visible   bool
	selectYes bool
	onConfirm func() tea.Cmd

	dialogArea uv.Rectangle // last drawn area, for mouse hit detection
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Show displays the dialog with the given labels and confirm action.
func (d *ConfirmDialog) Show(title, message, yes, no string, onConfirm func() tea.Cmd) {
	d.title = title
	d.message = message
	d.yesLabel = yes
	d.noLabel = no
	d.selectYes = false
	d.visible = true
	d.onConfirm = onConfirm
}

// Hide closes the dialog.
func (d *ConfirmDialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// Update handles dialog input.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "right", "h", "l", "tab":
		d.selectYes = !d.selectYes
	case "y":
		return d.confirm()
	case "n", "esc":
		d.Hide()
	case "enter":
		if d.selectYes {
			return d.confirm()
		}
		d.Hide()
	}
	return nil
}

func (d *ConfirmDialog) confirm() tea.Cmd {
	d.Hide()
	if d.onConfirm != nil {
		return d.onConfirm()
	}
	return nil
}

// HandleClick dismisses the dialog without confirming.
func (d *ConfirmDialog) HandleClick(x, y int) tea.Cmd {
	if !d.visible {
		return nil
	}
	d.Hide()
	return nil
}

// Draw renders the dialog centered on screen.
func (d *ConfirmDialog) Draw(scr uv.Screen, area uv.Rectangle) {
	if !d.visible {
		return
	}

	contentWidth := lipgloss.Width(d.message)
	if w := lipgloss.Width(d.title); w > contentWidth {
		contentWidth = w
	}

	title := styleModalTitle.
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(d.title)
	message := styleModalText.
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(d.message)

	activeBtn := lipgloss.NewStyle().
		Foreground(colorCrust).
		Background(colorError).
		Padding(0, 2)
	idleBtn := lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface0).
		Padding(0, 2)

	yes, no := idleBtn, activeBtn
	if d.selectYes {
		yes, no = activeBtn, idleBtn
	}
	buttons := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(yes.Render(d.yesLabel) + "  " + no.Render(d.noLabel))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		"",
		buttons,
	)

	dialog := styleModalContainer.Render(content)
	d.dialogArea = DrawCentered(scr, area, dialog)
}

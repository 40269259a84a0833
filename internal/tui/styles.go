package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// Catppuccin Mocha palette.
var (
	colorBase     = lipgloss.Color("#1e1e2e") // Base background (darkest)
	colorMantle   = lipgloss.Color("#181825") // Slightly darker than base
	colorCrust    = lipgloss.Color("#11111b") // Darkest shade for deep backgrounds
	colorSurface0 = lipgloss.Color("#313244") // Surface overlay (light)
	colorSurface1 = lipgloss.Color("#45475a") // Surface overlay (medium)
	colorSurface2 = lipgloss.Color("#585b70") // Surface overlay (dark)
	colorOverlay0 = lipgloss.Color("#6c7086") // Overlay for subtle elements

	colorSubtext0   = lipgloss.Color("#a6adc8") // Subtext (muted)
	colorText       = lipgloss.Color("#cdd6f4") // Main text color
	colorTextBright = lipgloss.Color("#f5e0dc") // Brightest text (rosewater)

	colorPrimary   = lipgloss.Color("#cba6f7") // Mauve (primary brand color)
	colorSecondary = lipgloss.Color("#89b4fa") // Blue (secondary actions)
	colorTertiary  = lipgloss.Color("#b4befe") // Lavender (tertiary highlights)

	colorSuccess = lipgloss.Color("#a6e3a1") // Green (done)
	colorWarning = lipgloss.Color("#f9e2af") // Yellow (doing, due soon)
	colorError   = lipgloss.Color("#f38ba8") // Red (back, overdue)
	colorInfo    = lipgloss.Color("#89dceb") // Sky (review)
	colorPeach   = lipgloss.Color("#fab387") // Peach (warm accent)

	colorMuted    = colorOverlay0
	colorTextDim  = colorSubtext0
	colorBgHeader = colorMantle
	colorBgFooter = colorMantle
)

var (
	// Header and status bar styles
	styleHeaderTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleHeaderSeparator = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleHeaderInfo = lipgloss.NewStyle().
			Foreground(colorText)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgHeader).
			Padding(0, 1)

	// Footer styles
	styleFooter = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgFooter).
			Padding(0, 1)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleFooterLabel = lipgloss.NewStyle().
				Foreground(colorText)

	styleFooterActive = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Panel header styles
	stylePanelTitle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	stylePanelRule = lipgloss.NewStyle().
			Foreground(colorSurface1)

	stylePanelTitleFocused = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	stylePanelRuleFocused = lipgloss.NewStyle().
				Foreground(colorPrimary)

	// Task status styles
	styleStatusTodo   = lipgloss.NewStyle().Foreground(colorMuted)
	styleStatusDoing  = lipgloss.NewStyle().Foreground(colorWarning)
	styleStatusReview = lipgloss.NewStyle().Foreground(colorInfo)
	styleStatusBack   = lipgloss.NewStyle().Foreground(colorError)
	styleStatusDone   = lipgloss.NewStyle().Foreground(colorSuccess)

	// Table styles
	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleTableRow = lipgloss.NewStyle().
			Foreground(colorText)

	styleTableRowSelected = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorSurface0).
				Bold(true)

	stylePhaseHeader = lipgloss.NewStyle().
				Foreground(colorTertiary).
				Bold(true)

	// Deadline flags
	styleOverdue = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleDueSoon = lipgloss.NewStyle().
			Foreground(colorPeach)

	// Dependency warning badge
	styleWarnBadge = lipgloss.NewStyle().
			Foreground(colorCrust).
			Background(colorWarning).
			Padding(0, 1).
			Bold(true)

	styleWarnText = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Kanban styles
	styleKanbanColumn = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleKanbanCard = lipgloss.NewStyle().
			Foreground(colorText)

	styleKanbanCardSelected = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorSurface0).
				Bold(true)

	// Gantt styles
	styleGanttAxis = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleGanttToday = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleGanttGrid = lipgloss.NewStyle().
			Foreground(colorSurface0)

	// Progress bar
	styleProgressFill = lipgloss.NewStyle().
				Foreground(colorCrust).
				Background(colorPrimary)

	styleProgressTrack = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Background(colorSurface0)

	// General styles
	styleDim = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleEmptyState = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	// Modal styles
	styleModalContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	styleModalTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleModalLabel = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleModalText = lipgloss.NewStyle().
			Foreground(colorText)

	// Badge styles
	styleBadge = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true)

	styleBadgeMuted = styleBadge.
			Foreground(colorText).
			Background(colorMuted)

	// Toast style
	styleToast = lipgloss.NewStyle().
			Foreground(colorCrust).
			Background(colorSuccess).
			Padding(0, 2).
			Bold(true)
)

// statusStyle returns the display style for a task status.
func statusStyle(s workflow.Status) lipgloss.Style {
	switch s {
	case workflow.StatusDoing:
		return styleStatusDoing
	case workflow.StatusReview:
		return styleStatusReview
	case workflow.StatusBack:
		return styleStatusBack
	case workflow.StatusDone:
		return styleStatusDone
	default:
		return styleStatusTodo
	}
}

// statusBarColor returns the gantt bar background for a status.
func statusBarColor(s workflow.Status) lipgloss.Color {
	switch s {
	case workflow.StatusDoing:
		return colorWarning
	case workflow.StatusReview:
		return colorInfo
	case workflow.StatusBack:
		return colorError
	case workflow.StatusDone:
		return colorSuccess
	default:
		return colorSurface2
	}
}

package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// KanbanView shows one column per status with task cards. Cards move
// between columns through the same status path as the table view, so
// a move into 差し戻し prompts for a reason.
type KanbanView struct {
	state  *State
	width  int
	height int

	col    int // selected column, index into workflow.AllStatuses
	card   int // selected card within the column
	offset int
}

// NewKanbanView creates the kanban board.
func NewKanbanView() *KanbanView {
	return &KanbanView{}
}

// SetState attaches the shared application state.
func (v *KanbanView) SetState(state *State) {
	v.state = state
}

// SetSize updates the component dimensions.
func (v *KanbanView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// columnTasks returns the tasks in a status column, in store order.
func (v *KanbanView) columnTasks(st workflow.Status) []*workflow.Task {
	if v.state == nil {
		return nil
	}
	var out []*workflow.Task
	for _, t := range v.state.Store.Tasks() {
		if t.Status == st {
			out = append(out, t)
		}
	}
	return out
}

// selectedTask returns the card under the cursor.
func (v *KanbanView) selectedTask() *workflow.Task {
	tasks := v.columnTasks(workflow.AllStatuses[v.col])
	if len(tasks) == 0 {
		return nil
	}
	if v.card >= len(tasks) {
		v.card = len(tasks) - 1
	}
	if v.card < 0 {
		v.card = 0
	}
	return tasks[v.card]
}

// Update handles keyboard input for the board.
func (v *KanbanView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if v.col > 0 {
			v.col--
			v.card = 0
		}
	case "right", "l":
		if v.col < len(workflow.AllStatuses)-1 {
			v.col++
			v.card = 0
		}
	case "up", "k":
		if v.card > 0 {
			v.card--
		}
	case "down", "j":
		tasks := v.columnTasks(workflow.AllStatuses[v.col])
		if v.card < len(tasks)-1 {
			v.card++
		}
	case "H", "shift+left":
		return v.moveCard(-1)
	case "L", "shift+right":
		return v.moveCard(1)
	case "g", "enter":
		if t := v.selectedTask(); t != nil {
			name := t.Name
			return func() tea.Msg { return OpenGuidanceMsg{Name: name} }
		}
	}
	return nil
}

// moveCard shifts the selected card one column left or right.
func (v *KanbanView) moveCard(delta int) tea.Cmd {
	t := v.selectedTask()
	if t == nil {
		return nil
	}
	target := v.col + delta
	if target < 0 || target >= len(workflow.AllStatuses) {
		return nil
	}
	needsReason, changed := v.state.ChangeStatus(t.ID, workflow.AllStatuses[target])
	if !changed {
		return nil
	}
	// Follow the card into its new column.
	v.col = target
	tasks := v.columnTasks(workflow.AllStatuses[target])
	for i, ct := range tasks {
		if ct.ID == t.ID {
			v.card = i
			break
		}
	}
	if needsReason {
		id := t.ID
		return func() tea.Msg { return OpenReasonModalMsg{TaskID: id} }
	}
	return nil
}

// Draw renders the board.
func (v *KanbanView) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if v.state == nil || area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	lang := v.state.Lang

	inner := DrawPanel(scr, area, tr(lang, "カンバン", "Kanban"), true)

	colW := inner.Dx() / len(workflow.AllStatuses)
	if colW < 8 {
		colW = 8
	}

	for ci, st := range workflow.AllStatuses {
		x := inner.Min.X + ci*colW
		if x >= inner.Max.X {
			break
		}
		colArea := uv.Rectangle{
			Min: uv.Position{X: x, Y: inner.Min.Y},
			Max: uv.Position{X: min(x+colW-1, inner.Max.X), Y: inner.Max.Y},
		}
		v.drawColumn(scr, colArea, st, ci == v.col)
	}
	return nil
}

func (v *KanbanView) drawColumn(scr uv.Screen, area uv.Rectangle, st workflow.Status, focused bool) {
	lang := v.state.Lang
	tasks := v.columnTasks(st)

	title := fmt.Sprintf("%s %d", workflow.StatusLabel(lang, st), len(tasks))
	header := styleKanbanColumn.Render(truncate(title, area.Dx()))
	if focused {
		header = statusStyle(st).Bold(true).Render(truncate(title, area.Dx()))
	}
	DrawText(scr, uv.Rectangle{
		Min: area.Min,
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}, header)

	cardH := 2 // name line plus meta line
	y := area.Min.Y + 1
	start := 0
	visible := (area.Dy() - 1) / cardH
	if focused && v.card >= visible {
		start = v.card - visible + 1
	}

	for i := start; i < len(tasks) && y+cardH <= area.Max.Y; i++ {
		t := tasks[i]
		v.drawCard(scr, uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: y},
			Max: uv.Position{X: area.Max.X, Y: y + cardH},
		}, t, focused && i == v.card)
		y += cardH
	}
}

func (v *KanbanView) drawCard(scr uv.Screen, area uv.Rectangle, t *workflow.Task, selected bool) {
	lang := v.state.Lang
	w := area.Dx()

	name := truncate(workflow.TranslateTask(lang, t.Name), w-2)
	if _, warned := v.state.Warnings[t.ID]; warned {
		name = styleWarnText.Render("⚠") + truncate(workflow.TranslateTask(lang, t.Name), w-3)
	}

	var meta []string
	if t.Assignee != "" {
		meta = append(meta, t.Assignee)
	}
	if t.EndDate != "" {
		end := t.EndDate
		switch v.state.Deadlines[t.ID] {
		case workflow.FlagOverdue:
			end = styleOverdue.Render(end)
		case workflow.FlagDueSoon:
			end = styleDueSoon.Render(end)
		}
		meta = append(meta, end)
	}

	style := styleKanbanCard
	prefix := " "
	if selected {
		style = styleKanbanCardSelected
		prefix = "▶"
	}
	DrawText(scr, uv.Rectangle{
		Min: area.Min,
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}, style.Render(prefix+name))
	if area.Dy() > 1 {
		DrawText(scr, uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y + 1},
			Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 2},
		}, styleDim.Render(" "+truncate(strings.Join(meta, " "), w-1)))
	}
}

var _ View = (*KanbanView)(nil)

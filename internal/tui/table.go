package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// table columns, in display order
const (
	colName = iota
	colAssignee
	colStart
	colEnd
	colStatus
	colNotes
	colCount
)

// TableView is the editable workflow table: one row per task with
// inline cell editing, reordering, filters, dependency warnings and
// deadline flags.
type TableView struct {
	state  *State
	width  int
	height int

	cursor int // index into visible rows
	col    int
	offset int

	editing bool
	input   textinput.Model

	assigneeFilter string
	statusFilter   workflow.Status // empty = all
	filterEditing  bool
	filterInput    textinput.Model
}

// NewTableView creates the table view.
func NewTableView() *TableView {
	ti := textinput.New()
	ti.CharLimit = 200

	fi := textinput.New()
	fi.CharLimit = 50

	return &TableView{
		input:       ti,
		filterInput: fi,
	}
}

// SetState attaches the shared application state.
func (v *TableView) SetState(state *State) {
	v.state = state
}

// SetSize updates the component dimensions.
func (v *TableView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width / 3)
	v.filterInput.SetWidth(20)
}

// Editing reports whether a cell or filter editor currently owns the
// keyboard.
func (v *TableView) Editing() bool {
	return v.editing || v.filterEditing
}

// visibleRows returns indices of tasks passing the filters.
func (v *TableView) visibleRows() []int {
	if v.state == nil {
		return nil
	}
	tasks := v.state.Store.Tasks()
	assignee := strings.ToLower(strings.TrimSpace(v.assigneeFilter))
	var rows []int
	for i, t := range tasks {
		if assignee != "" && !strings.Contains(strings.ToLower(t.Assignee), assignee) {
			continue
		}
		if v.statusFilter != "" && t.Status != v.statusFilter {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// selectedTask returns the task under the cursor, nil when the table
// is empty.
func (v *TableView) selectedTask() *workflow.Task {
	rows := v.visibleRows()
	if len(rows) == 0 {
		return nil
	}
	if v.cursor >= len(rows) {
		v.cursor = len(rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	return v.state.Store.At(rows[v.cursor])
}

// Update handles keyboard input for the table.
func (v *TableView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		switch {
		case v.filterEditing:
			v.filterInput, cmd = v.filterInput.Update(msg)
		case v.editing:
			v.input, cmd = v.input.Update(msg)
		}
		return cmd
	}

	if v.filterEditing {
		switch keyMsg.String() {
		case "enter", "esc":
			v.assigneeFilter = v.filterInput.Value()
			v.filterEditing = false
			v.filterInput.Blur()
			return nil
		default:
			var cmd tea.Cmd
			v.filterInput, cmd = v.filterInput.Update(msg)
			return cmd
		}
	}

	if v.editing {
		switch keyMsg.String() {
		case "enter":
			return v.commitEdit()
		case "esc":
			v.editing = false
			v.input.Blur()
			return nil
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return cmd
		}
	}

	rows := v.visibleRows()

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case "left", "h":
		if v.col > 0 {
			v.col--
		}
	case "right", "l":
		if v.col < colCount-1 {
			v.col++
		}
	case "enter":
		return v.beginEdit()
	case "K", "shift+up":
		return v.moveRow(-1)
	case "J", "shift+down":
		return v.moveRow(1)
	case "a":
		t := workflow.NewTask("", "")
		v.state.Store.Add(t)
		v.state.Dirty = true
		v.state.Refresh()
	case "x":
		if t := v.selectedTask(); t != nil {
			id := t.ID
			return func() tea.Msg { return RequestDeleteTaskMsg{ID: id} }
		}
	case "g":
		if t := v.selectedTask(); t != nil {
			name := t.Name
			return func() tea.Msg { return OpenGuidanceMsg{Name: name} }
		}
	case "/":
		v.filterEditing = true
		v.filterInput.SetValue(v.assigneeFilter)
		return v.filterInput.Focus()
	case "f":
		v.cycleStatusFilter()
	}
	return nil
}

// beginEdit opens the inline editor for the selected cell. The status
// column has no editor; enter cycles the status instead.
func (v *TableView) beginEdit() tea.Cmd {
	t := v.selectedTask()
	if t == nil {
		return nil
	}
	if v.col == colStatus {
		return v.cycleStatus(t)
	}

	var value string
	switch v.col {
	case colName:
		value = t.Name
	case colAssignee:
		value = t.Assignee
	case colStart:
		value = t.StartDate
	case colEnd:
		value = t.EndDate
	case colNotes:
		value = t.Notes
	}
	v.editing = true
	v.input.SetValue(value)
	return v.input.Focus()
}

// commitEdit writes the edited value back through the state.
func (v *TableView) commitEdit() tea.Cmd {
	t := v.selectedTask()
	v.editing = false
	v.input.Blur()
	if t == nil {
		return nil
	}

	value := v.input.Value()
	switch v.col {
	case colName:
		v.state.SetField(t.ID, "name", value)
	case colAssignee:
		v.state.SetField(t.ID, "assignee", value)
	case colStart, colEnd:
		// Reject values that are neither empty nor a valid date.
		if value != "" {
			if _, ok := workflow.ParseDate(value); !ok {
				return nil
			}
		}
		field := "start"
		if v.col == colEnd {
			field = "end"
		}
		v.state.SetField(t.ID, field, value)
	case colNotes:
		v.state.SetField(t.ID, "notes", value)
	}
	return nil
}

// cycleStatus advances the task status through the shared path.
func (v *TableView) cycleStatus(t *workflow.Task) tea.Cmd {
	next := nextStatus(t.Status)
	needsReason, changed := v.state.ChangeStatus(t.ID, next)
	if !changed {
		return nil
	}
	if needsReason {
		id := t.ID
		return func() tea.Msg { return OpenReasonModalMsg{TaskID: id} }
	}
	return nil
}

// moveRow shifts the selected row up or down in display order.
func (v *TableView) moveRow(delta int) tea.Cmd {
	t := v.selectedTask()
	if t == nil {
		return nil
	}
	from := v.state.Store.IndexOf(t.ID)
	if from < 0 {
		return nil
	}
	v.state.Store.Move(t.ID, from+delta)
	v.state.Dirty = true
	v.state.Refresh()
	// Follow the row with the cursor when no filters hide it.
	if v.assigneeFilter == "" && v.statusFilter == "" {
		v.cursor = v.state.Store.IndexOf(t.ID)
	}
	return nil
}

// cycleStatusFilter rotates the status filter: all → each status → all.
func (v *TableView) cycleStatusFilter() {
	order := append([]workflow.Status{""}, workflow.AllStatuses...)
	for i, s := range order {
		if s == v.statusFilter {
			v.statusFilter = order[(i+1)%len(order)]
			v.cursor = 0
			return
		}
	}
	v.statusFilter = ""
}

// Draw renders the table to the screen.
func (v *TableView) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if v.state == nil || area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	lang := v.state.Lang

	inner := DrawPanel(scr, area, tr(lang, "工程表", "Workflow"), true)

	// Filter line
	filterLine := v.renderFilterLine(lang)
	lineArea := uv.Rectangle{
		Min: inner.Min,
		Max: uv.Position{X: inner.Max.X, Y: inner.Min.Y + 1},
	}
	DrawText(scr, lineArea, filterLine)

	headerArea := uv.Rectangle{
		Min: uv.Position{X: inner.Min.X, Y: inner.Min.Y + 1},
		Max: uv.Position{X: inner.Max.X, Y: inner.Min.Y + 2},
	}
	DrawText(scr, headerArea, v.renderHeader(lang, inner.Dx()))

	rows := v.visibleRows()
	listTop := inner.Min.Y + 2
	visibleCount := inner.Max.Y - listTop
	if visibleCount < 1 {
		return nil
	}

	// Keep cursor in the scroll window.
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visibleCount {
		v.offset = v.cursor - visibleCount + 1
	}

	if len(rows) == 0 {
		empty := styleEmptyState.Render(tr(lang, "表示できる行がありません", "No rows to display"))
		DrawText(scr, uv.Rectangle{
			Min: uv.Position{X: inner.Min.X, Y: listTop},
			Max: uv.Position{X: inner.Max.X, Y: listTop + 1},
		}, empty)
		return nil
	}

	prevPhase := ""
	y := listTop
	for i := v.offset; i < len(rows) && y < inner.Max.Y; i++ {
		t := v.state.Store.At(rows[i])
		if t == nil {
			continue
		}
		// Phase header when the phase changes and no filters are set.
		if t.Phase != prevPhase && v.assigneeFilter == "" && v.statusFilter == "" {
			prevPhase = t.Phase
			header := stylePhaseHeader.Render("▸ " + workflow.TranslatePhase(lang, t.Phase))
			DrawText(scr, uv.Rectangle{
				Min: uv.Position{X: inner.Min.X, Y: y},
				Max: uv.Position{X: inner.Max.X, Y: y + 1},
			}, header)
			y++
			if y >= inner.Max.Y {
				break
			}
		}
		line := v.renderRow(t, i == v.cursor, inner.Dx())
		DrawText(scr, uv.Rectangle{
			Min: uv.Position{X: inner.Min.X, Y: y},
			Max: uv.Position{X: inner.Max.X, Y: y + 1},
		}, line)
		y++
	}

	return nil
}

func (v *TableView) renderFilterLine(lang workflow.Lang) string {
	var parts []string
	if v.filterEditing {
		parts = append(parts, styleModalLabel.Render(tr(lang, "担当者: ", "Assignee: "))+v.filterInput.View())
	} else if v.assigneeFilter != "" {
		parts = append(parts, styleDim.Render(tr(lang, "担当者: ", "Assignee: ")+v.assigneeFilter))
	}
	if v.statusFilter != "" {
		parts = append(parts, styleDim.Render(tr(lang, "状態: ", "Status: ")+workflow.StatusLabel(lang, v.statusFilter)))
	}
	if len(parts) == 0 {
		return styleDim.Render(tr(lang, "/ 担当者で絞り込み  f 状態で絞り込み", "/ filter assignee  f filter status"))
	}
	return strings.Join(parts, "  ")
}

func (v *TableView) renderHeader(lang workflow.Lang, width int) string {
	nameW, assigneeW, dateW := v.columnWidths(width)
	cells := []string{
		pad(tr(lang, "タスク", "Task"), nameW),
		pad(tr(lang, "担当者", "Assignee"), assigneeW),
		pad(tr(lang, "開始", "Start"), dateW),
		pad(tr(lang, "終了", "End"), dateW),
		pad(tr(lang, "状態", "Status"), 8),
		tr(lang, "メモ", "Notes"),
	}
	return styleTableHeader.Render(strings.Join(cells, " "))
}

func (v *TableView) renderRow(t *workflow.Task, selected bool, width int) string {
	lang := v.state.Lang
	nameW, assigneeW, dateW := v.columnWidths(width)

	name := truncate(workflow.TranslateTask(lang, t.Name), nameW)
	if _, warned := v.state.Warnings[t.ID]; warned {
		name = styleWarnText.Render("⚠ ") + name
		nameW -= 2
	}

	end := t.EndDate
	switch v.state.Deadlines[t.ID] {
	case workflow.FlagOverdue:
		end = styleOverdue.Render(end + "!")
	case workflow.FlagDueSoon:
		end = styleDueSoon.Render(end)
	}

	notes := ""
	if t.Notes != "" {
		notes = styleDim.Render("…")
	}

	cells := []string{
		pad(name, nameW),
		pad(truncate(t.Assignee, assigneeW), assigneeW),
		pad(t.StartDate, dateW),
		pad(end, dateW),
		pad(statusStyle(t.Status).Render(workflow.StatusLabel(lang, t.Status)), 8),
		notes,
	}

	line := strings.Join(cells, " ")
	if selected {
		if v.editing {
			return styleTableRowSelected.Render("▶ ") + v.input.View()
		}
		return styleTableRowSelected.Render("▶ " + line)
	}
	return styleTableRow.Render("  " + line)
}

func (v *TableView) columnWidths(width int) (nameW, assigneeW, dateW int) {
	dateW = 10
	assigneeW = 10
	nameW = width - assigneeW - 2*dateW - 8 - 8
	if nameW < 10 {
		nameW = 10
	}
	return nameW, assigneeW, dateW
}

// pad right-pads a cell to the given display width.
func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// nextStatus returns the next status in cycle order.
func nextStatus(s workflow.Status) workflow.Status {
	for i, st := range workflow.AllStatuses {
		if st == s {
			return workflow.AllStatuses[(i+1)%len(workflow.AllStatuses)]
		}
	}
	return workflow.StatusTodo
}

var _ View = (*TableView)(nil)

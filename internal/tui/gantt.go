package tui

import (
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// dayWidth is the number of terminal cells per chart day.
const dayWidth = 3

// padding around the scheduled date range, in days.
const (
	windowLeadDays  = 5
	windowTrailDays = 14
)

type dragKind int

const (
	dragNone dragKind = iota
	dragMove
	dragResizeLeft
	dragResizeRight
)

// GanttView draws a day-grid timeline with one bar per dated task.
// Bars can be dragged to move them and their edges dragged to resize;
// clicking an empty cell schedules the row at that date.
type GanttView struct {
	state  *State
	width  int
	height int

	cursor int
	scroll int // horizontal scroll in days

	// drag state, valid while dragTask != ""
	dragTask    string
	dragMode    dragKind
	dragOriginX int

	// geometry captured by the last Draw, for mouse hit testing
	chartMin    uv.Position
	windowStart time.Time
	rowTasks    map[int]string // screen y -> task ID
	labelWidth  int
}

// NewGanttView creates the timeline view.
func NewGanttView() *GanttView {
	return &GanttView{rowTasks: map[int]string{}}
}

// SetState attaches the shared application state.
func (v *GanttView) SetState(state *State) {
	v.state = state
}

// SetSize updates the component dimensions.
func (v *GanttView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// window computes the chart date range: the scheduled span padded on
// both sides, always containing today.
func (v *GanttView) window(today time.Time) (time.Time, time.Time) {
	minDate, maxDate := today, today
	for _, t := range v.state.Store.Tasks() {
		if d, ok := workflow.ParseDate(t.StartDate); ok && d.Before(minDate) {
			minDate = d
		}
		if d, ok := workflow.ParseDate(t.EndDate); ok && d.After(maxDate) {
			maxDate = d
		}
	}
	return minDate.AddDate(0, 0, -windowLeadDays), maxDate.AddDate(0, 0, windowTrailDays)
}

// Update handles keyboard and mouse input for the chart.
func (v *GanttView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return v.handleKey(msg)
	case tea.MouseClickMsg:
		v.handlePress(msg.Mouse().X, msg.Mouse().Y)
	case tea.MouseReleaseMsg:
		return v.handleRelease(msg.Mouse().X)
	case tea.MouseWheelMsg:
		m := msg.Mouse()
		switch m.Button {
		case tea.MouseWheelUp:
			v.scroll--
		case tea.MouseWheelDown:
			v.scroll++
		}
	}
	return nil
}

func (v *GanttView) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	tasks := v.state.Store.Tasks()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(tasks)-1 {
			v.cursor++
		}
	case "left", "h":
		v.scroll--
	case "right", "l":
		v.scroll++
	case "0":
		v.scroll = 0
	case "shift+left", "H":
		return v.shiftSelected(-1)
	case "shift+right", "L":
		return v.shiftSelected(1)
	case "space":
		return v.cycleSelectedStatus()
	case "g", "enter":
		if v.cursor < len(tasks) {
			name := tasks[v.cursor].Name
			return func() tea.Msg { return OpenGuidanceMsg{Name: name} }
		}
	}
	return nil
}

// cycleSelectedStatus advances the selected lane's status through the
// shared path, so the change log and back-reason prompt apply here too.
func (v *GanttView) cycleSelectedStatus() tea.Cmd {
	tasks := v.state.Store.Tasks()
	if v.cursor >= len(tasks) {
		return nil
	}
	t := tasks[v.cursor]
	needsReason, changed := v.state.ChangeStatus(t.ID, nextStatus(t.Status))
	if !changed {
		return nil
	}
	if needsReason {
		id := t.ID
		return func() tea.Msg { return OpenReasonModalMsg{TaskID: id} }
	}
	return nil
}

// shiftSelected moves both dates of the selected task by whole days.
func (v *GanttView) shiftSelected(days int) tea.Cmd {
	tasks := v.state.Store.Tasks()
	if v.cursor >= len(tasks) {
		return nil
	}
	t := tasks[v.cursor]
	if !t.HasDates() {
		return nil
	}
	v.applyDayShift(t, days, days)
	return nil
}

// handlePress starts a drag on a bar, records nothing otherwise; the
// empty-cell protocol runs on release so a drag is never mistaken for
// a click.
func (v *GanttView) handlePress(x, y int) {
	id, ok := v.rowTasks[y]
	if !ok || x < v.chartMin.X {
		return
	}
	t, err := v.state.Store.Get(id)
	if err != nil {
		return
	}

	v.dragTask = id
	v.dragOriginX = x
	v.dragMode = dragNone

	start, startOK := workflow.ParseDate(t.StartDate)
	end, endOK := workflow.ParseDate(t.EndDate)
	if !startOK || !endOK {
		return
	}

	barL := v.chartMin.X + v.dayOffset(start)*dayWidth
	barR := v.chartMin.X + (v.dayOffset(end)+1)*dayWidth - 1
	switch {
	case x < barL || x > barR:
		// pressed outside the bar, treat as a cell click on release
	case x-barL < dayWidth:
		v.dragMode = dragResizeLeft
	case barR-x < dayWidth:
		v.dragMode = dragResizeRight
	default:
		v.dragMode = dragMove
	}
}

// handleRelease finishes a drag or, when the press never left its
// origin cell and hit no bar, schedules the row at the clicked date.
func (v *GanttView) handleRelease(x int) tea.Cmd {
	id := v.dragTask
	mode := v.dragMode
	origin := v.dragOriginX
	v.dragTask = ""
	v.dragMode = dragNone
	if id == "" {
		return nil
	}

	t, err := v.state.Store.Get(id)
	if err != nil {
		return nil
	}

	days := int(math.Round(float64(x-origin) / dayWidth))

	switch mode {
	case dragMove:
		if days != 0 {
			v.applyDayShift(t, days, days)
		}
	case dragResizeLeft:
		start, _ := workflow.ParseDate(t.StartDate)
		end, _ := workflow.ParseDate(t.EndDate)
		next := start.AddDate(0, 0, days)
		if next.After(end) {
			return nil // dragged past the far edge, discard
		}
		v.state.SetField(t.ID, "start", workflow.FormatDate(next))
	case dragResizeRight:
		start, _ := workflow.ParseDate(t.StartDate)
		end, _ := workflow.ParseDate(t.EndDate)
		next := end.AddDate(0, 0, days)
		if next.Before(start) {
			return nil
		}
		v.state.SetField(t.ID, "end", workflow.FormatDate(next))
	case dragNone:
		if x == origin {
			v.scheduleAt(t, x)
		}
	}
	return nil
}

// scheduleAt implements the empty-cell click: first click sets the
// start date, second sets the end (swapping when it lands earlier),
// and a click on a fully dated row restarts it at the clicked date.
func (v *GanttView) scheduleAt(t *workflow.Task, x int) {
	day := (x - v.chartMin.X) / dayWidth
	if day < 0 {
		return
	}
	date := workflow.FormatDate(v.windowStart.AddDate(0, 0, day))

	start, startOK := workflow.ParseDate(t.StartDate)
	_, endOK := workflow.ParseDate(t.EndDate)

	switch {
	case !startOK:
		v.state.SetField(t.ID, "start", date)
	case !endOK:
		clicked, _ := workflow.ParseDate(date)
		if clicked.Before(start) {
			v.state.SetField(t.ID, "end", t.StartDate)
			v.state.SetField(t.ID, "start", date)
		} else {
			v.state.SetField(t.ID, "end", date)
		}
	default:
		v.state.SetField(t.ID, "start", date)
		end, _ := workflow.ParseDate(t.EndDate)
		clicked, _ := workflow.ParseDate(date)
		if clicked.After(end) {
			v.state.SetField(t.ID, "end", date)
		}
	}
}

// applyDayShift moves the start and end dates by whole days.
func (v *GanttView) applyDayShift(t *workflow.Task, startDays, endDays int) {
	if s, ok := workflow.ParseDate(t.StartDate); ok {
		v.state.SetField(t.ID, "start", workflow.FormatDate(s.AddDate(0, 0, startDays)))
	}
	if e, ok := workflow.ParseDate(t.EndDate); ok {
		v.state.SetField(t.ID, "end", workflow.FormatDate(e.AddDate(0, 0, endDays)))
	}
}

// dayOffset converts a date to a day index inside the current window.
func (v *GanttView) dayOffset(d time.Time) int {
	return int(d.Sub(v.windowStart).Hours() / 24)
}

// Draw renders the timeline and records hit-test geometry.
func (v *GanttView) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if v.state == nil || area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	lang := v.state.Lang
	today := workflow.Today()

	inner := DrawPanel(scr, area, tr(lang, "ガントチャート", "Gantt"), true)

	v.labelWidth = inner.Dx() / 4
	if v.labelWidth > 24 {
		v.labelWidth = 24
	}
	winStart, winEnd := v.window(today)
	v.windowStart = winStart.AddDate(0, 0, v.scroll)
	v.chartMin = uv.Position{X: inner.Min.X + v.labelWidth + 1, Y: inner.Min.Y + 1}
	v.rowTasks = map[int]string{}

	chartDays := (inner.Max.X - v.chartMin.X) / dayWidth
	if chartDays < 1 {
		return nil
	}
	if v.windowStart.After(winEnd) {
		v.windowStart = winEnd
	}

	v.drawAxis(scr, inner, chartDays)

	prevPhase := ""
	y := inner.Min.Y + 1
	tasks := v.state.Store.Tasks()
	for i, t := range tasks {
		if y >= inner.Max.Y {
			break
		}
		if t.Phase != prevPhase {
			prevPhase = t.Phase
			DrawText(scr, uv.Rectangle{
				Min: uv.Position{X: inner.Min.X, Y: y},
				Max: uv.Position{X: inner.Max.X, Y: y + 1},
			}, stylePhaseHeader.Render("▸ "+workflow.TranslatePhase(lang, t.Phase)))
			y++
			if y >= inner.Max.Y {
				break
			}
		}
		v.drawRow(scr, inner, y, t, chartDays, today, i == v.cursor)
		v.rowTasks[y] = t.ID
		y++
	}
	return nil
}

// drawAxis writes the day-of-month scale across the top of the chart.
func (v *GanttView) drawAxis(scr uv.Screen, inner uv.Rectangle, chartDays int) {
	var b strings.Builder
	for d := 0; d < chartDays; d++ {
		date := v.windowStart.AddDate(0, 0, d)
		label := date.Format("2")
		if len(label) > dayWidth {
			label = label[:dayWidth]
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", dayWidth-len(label)))
	}
	DrawText(scr, uv.Rectangle{
		Min: uv.Position{X: v.chartMin.X, Y: inner.Min.Y},
		Max: uv.Position{X: inner.Max.X, Y: inner.Min.Y + 1},
	}, styleGanttAxis.Render(b.String()))
}

// barSpan returns the bar's day-offset range for a task. A row with
// only one date spans that single day.
func (v *GanttView) barSpan(t *workflow.Task) (from, to int, ok bool) {
	start, startOK := workflow.ParseDate(t.StartDate)
	end, endOK := workflow.ParseDate(t.EndDate)
	switch {
	case startOK && endOK:
		return v.dayOffset(start), v.dayOffset(end), true
	case startOK:
		d := v.dayOffset(start)
		return d, d, true
	case endOK:
		d := v.dayOffset(end)
		return d, d, true
	}
	return 0, 0, false
}

func (v *GanttView) drawRow(scr uv.Screen, inner uv.Rectangle, y int, t *workflow.Task, chartDays int, today time.Time, selected bool) {
	lang := v.state.Lang

	label := truncate(workflow.TranslateTask(lang, t.Name), v.labelWidth)
	labelStyle := styleTableRow
	if selected {
		labelStyle = styleTableRowSelected
		label = "▶" + label
	} else {
		label = " " + label
	}
	DrawText(scr, uv.Rectangle{
		Min: uv.Position{X: inner.Min.X, Y: y},
		Max: uv.Position{X: v.chartMin.X, Y: y + 1},
	}, labelStyle.Render(label))

	cells := make([]string, chartDays)
	todayDay := v.dayOffset(today)
	for d := range cells {
		if d == todayDay {
			cells[d] = styleGanttToday.Render("│" + strings.Repeat(" ", dayWidth-1))
		} else {
			cells[d] = styleGanttGrid.Render("·" + strings.Repeat(" ", dayWidth-1))
		}
	}

	if from, to, ok := v.barSpan(t); ok {
		bar := lipgloss.NewStyle().Background(statusBarColor(t.Status))
		for d := from; d <= to && d < chartDays; d++ {
			if d < 0 {
				continue
			}
			cells[d] = bar.Render(strings.Repeat(" ", dayWidth))
		}
	}

	DrawText(scr, uv.Rectangle{
		Min: uv.Position{X: v.chartMin.X, Y: y},
		Max: uv.Position{X: inner.Max.X, Y: y + 1},
	}, strings.Join(cells, ""))
}

var _ View = (*GanttView)(nil)

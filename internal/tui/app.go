package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	lipglossv2 "charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/export"
	"github.com/mark3labs/pubflow/internal/form"
	"github.com/mark3labs/pubflow/internal/logger"
	"github.com/mark3labs/pubflow/internal/storage"
	"github.com/mark3labs/pubflow/internal/workflow"
)

// storageTimeout bounds every storage round-trip issued from the UI.
const storageTimeout = 5 * time.Second

// App is the main Bubbletea model that manages the TUI application.
type App struct {
	state   *State
	gateway *storage.Gateway
	ctx     context.Context

	// View components
	table  *TableView
	kanban *KanbanView
	gantt  *GanttView
	status *StatusBar
	footer *Footer

	// Overlays
	dialog     *ConfirmDialog
	guidance   *GuidanceModal
	reason     *ReasonModal
	changelog  *ChangeLogModal
	progress   *ProgressModal
	quickstart *QuickStartOverlay
	toast      *Toast

	activeView ViewType
	exportDir  string

	layout      Layout
	layoutDirty bool
	width       int
	height      int
	quitting    bool
}

// savedDataMsg carries everything loaded from storage at startup.
type savedDataMsg struct {
	lang          workflow.Lang
	snapshot      *storage.Snapshot
	changeLog     *workflow.ChangeLog
	firstRunShown bool
	err           error
}

// ExportDoneMsg reports the result of a data export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// DeleteTaskMsg is sent after the delete confirmation.
type DeleteTaskMsg struct {
	ID string
}

// NewApp creates the TUI application backed by the given storage
// gateway. exportDir is where e-key exports land.
func NewApp(ctx context.Context, gateway *storage.Gateway, exportDir string) *App {
	state := NewState(workflow.LangJA)

	table := NewTableView()
	kanban := NewKanbanView()
	gantt := NewGanttView()
	statusBar := NewStatusBar()
	progress := NewProgressModal()
	for _, s := range []Stateful{table, kanban, gantt, statusBar, progress} {
		s.SetState(state)
	}

	return &App{
		state:       state,
		gateway:     gateway,
		ctx:         ctx,
		table:       table,
		kanban:      kanban,
		gantt:       gantt,
		status:      statusBar,
		footer:      NewFooter(),
		dialog:      NewConfirmDialog(),
		guidance:    NewGuidanceModal(),
		reason:      NewReasonModal(),
		changelog:   NewChangeLogModal(),
		progress:    progress,
		quickstart:  NewQuickStartOverlay(),
		toast:       NewToast(),
		exportDir:   exportDir,
		layoutDirty: true,
	}
}

// activeViewComponent returns the view currently shown in the main
// area.
func (a *App) activeViewComponent() View {
	switch a.activeView {
	case ViewKanban:
		return a.kanban
	case ViewGantt:
		return a.gantt
	default:
		return a.table
	}
}

// Init kicks off the initial load from storage.
func (a *App) Init() tea.Cmd {
	return a.loadSavedData()
}

// loadSavedData reads prefs, snapshot and change log from storage.
func (a *App) loadSavedData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
		defer cancel()

		var msg savedDataMsg

		msg.lang, msg.err = a.gateway.LoadLang(ctx)
		if msg.err != nil {
			return msg
		}
		if snap, found, err := a.gateway.LoadSnapshot(ctx); err != nil {
			msg.err = err
			return msg
		} else if found {
			msg.snapshot = snap
		}
		if msg.changeLog, msg.err = a.gateway.LoadChangeLog(ctx); msg.err != nil {
			return msg
		}
		msg.firstRunShown, msg.err = a.gateway.FirstRunShown(ctx)
		return msg
	}
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.PasteMsg:
		return a.handlePaste(msg)

	case tea.MouseClickMsg:
		return a.handleMouse(msg)

	case tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if a.anyOverlayVisible() {
			return a, nil
		}
		return a, a.activeViewComponent().Update(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = CalculateLayout(a.width, a.height)
		a.propagateSizes()
		a.layoutDirty = false
		return a, nil

	case savedDataMsg:
		return a.applySavedData(msg)

	case SaveDoneMsg:
		if msg.Err != nil {
			logger.Warn("save failed: %v", msg.Err)
			return a, a.toast.Show(tr(a.state.Lang, "保存に失敗しました", "Save failed"))
		}
		a.state.Dirty = false
		return a, a.toast.Show(tr(a.state.Lang, "保存しました（12時間保持）", "Saved (kept 12 hours)"))

	case ClearDoneMsg:
		if msg.Err != nil {
			logger.Warn("clear failed: %v", msg.Err)
			return a, a.toast.Show(tr(a.state.Lang, "削除に失敗しました", "Clear failed"))
		}
		a.resetState()
		return a, a.toast.Show(tr(a.state.Lang, "データを削除しました", "Data cleared"))

	case ExportDoneMsg:
		if msg.Err != nil {
			logger.Warn("export failed: %v", msg.Err)
			return a, a.toast.Show(tr(a.state.Lang, "書き出しに失敗しました", "Export failed"))
		}
		return a, a.toast.Show(tr(a.state.Lang, "書き出しました: ", "Exported: ") + msg.Path)

	case ShowToastMsg:
		return a, a.toast.Show(msg.Text)

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case OpenGuidanceMsg:
		a.guidance.Show(msg.Name, a.state.Lang)
		return a, nil

	case OpenReasonModalMsg:
		return a, a.reason.Show(msg.TaskID, a.state.Lang)

	case BackReasonMsg:
		a.state.RecordBackReason(msg.TaskID, msg.Reason)
		return a, nil

	case RequestDeleteTaskMsg:
		taskID := msg.ID
		a.dialog.Show(
			tr(a.state.Lang, "行の削除", "Delete Row"),
			tr(a.state.Lang, "この行を削除しますか？", "Delete this row?"),
			tr(a.state.Lang, "削除", "Delete"),
			tr(a.state.Lang, "キャンセル", "Cancel"),
			func() tea.Cmd {
				return func() tea.Msg { return DeleteTaskMsg{ID: taskID} }
			},
		)
		return a, nil

	case DeleteTaskMsg:
		if t, err := a.state.Store.Get(msg.ID); err == nil {
			a.state.ChangeLog.Record(t.Name, "row", t.Name, "")
			if err := a.state.Store.Remove(msg.ID); err == nil {
				a.state.Dirty = true
				a.state.Refresh()
			}
		}
		return a, nil
	}

	// Remaining messages (blink ticks etc.) go to the active view.
	return a, a.activeViewComponent().Update(msg)
}

// applySavedData installs the loaded snapshot and preferences.
func (a *App) applySavedData(msg savedDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Warn("load failed: %v", msg.err)
		return a, a.toast.Show(tr(a.state.Lang, "保存データの読み込みに失敗しました", "Failed to load saved data"))
	}

	a.setLang(msg.lang)

	if msg.snapshot != nil {
		msg.snapshot.Apply(a.state.Form, a.state.Store)
	}
	if msg.changeLog != nil {
		a.state.ChangeLog = msg.changeLog
	}
	a.state.Dirty = false
	a.state.Refresh()

	var cmds []tea.Cmd
	if !msg.firstRunShown {
		a.quickstart.Show(a.state.Lang)
		cmds = append(cmds, a.markFirstRun())
	}
	if msg.snapshot != nil {
		cmds = append(cmds, a.toast.Show(tr(a.state.Lang, "保存データを復元しました", "Restored saved data")))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) markFirstRun() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
		defer cancel()
		if err := a.gateway.MarkFirstRunShown(ctx); err != nil {
			logger.Warn("failed to mark first run: %v", err)
		}
		return nil
	}
}

// resetState rebuilds the default form and rows after a data clear.
func (a *App) resetState() {
	lang := a.state.Lang
	a.state.Form = form.New(lang)
	a.state.Store = workflow.DefaultStore()
	a.state.ChangeLog.Clear()
	a.state.Dirty = false
	a.state.Refresh()
}

// setLang switches the active language everywhere.
func (a *App) setLang(lang workflow.Lang) {
	a.state.Lang = lang
	a.footer.SetLang(lang)
}

// anyOverlayVisible reports whether an overlay is capturing input.
func (a *App) anyOverlayVisible() bool {
	return a.dialog.IsVisible() || a.guidance.IsVisible() || a.reason.IsVisible() ||
		a.changelog.IsVisible() || a.progress.IsVisible() || a.quickstart.IsVisible()
}

// handleKeyPress routes keys by priority: global quit, then dialog,
// then overlays, then app shortcuts, then the active view.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.dialog.IsVisible() {
		return a, a.dialog.Update(msg)
	}
	if a.quickstart.IsVisible() {
		a.quickstart.Update(msg)
		return a, nil
	}
	if a.reason.IsVisible() {
		return a, a.reason.Update(msg)
	}
	if a.guidance.IsVisible() {
		return a, a.guidance.Update(msg)
	}
	if a.changelog.IsVisible() {
		return a, a.changelog.Update(msg)
	}
	if a.progress.IsVisible() {
		return a, a.progress.Update(msg)
	}

	// While a cell editor is open the view owns every key.
	if a.activeView == ViewTable && a.table.Editing() {
		return a, a.table.Update(msg)
	}

	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "1":
		a.switchView(ViewTable)
		return a, nil
	case "2":
		a.switchView(ViewKanban)
		return a, nil
	case "3":
		a.switchView(ViewGantt)
		return a, nil
	case "s":
		return a, a.save()
	case "e":
		return a, a.exportData()
	case "c":
		a.changelog.Show(a.state.ChangeLog, a.state.Lang)
		return a, nil
	case "p":
		a.progress.Show()
		return a, nil
	case "L":
		return a, a.toggleLang()
	case "D":
		return a, a.confirmClear()
	}

	return a, a.activeViewComponent().Update(msg)
}

// handlePaste sanitizes pasted text and forwards it to whichever text
// editor is open; everywhere else paste is a no-op.
func (a *App) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	content := SanitizePaste(msg.Content)
	if a.reason.IsVisible() {
		return a, a.reason.Update(tea.PasteMsg{Content: content})
	}
	if a.anyOverlayVisible() {
		return a, nil
	}
	if a.activeView == ViewTable && a.table.Editing() {
		// Cell editors are single line.
		return a, a.table.Update(tea.PasteMsg{Content: collapseNewlines(content)})
	}
	return a, nil
}

// handleMouse routes clicks: dialog and overlays first, then footer
// buttons, then the active view.
func (a *App) handleMouse(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return a, nil
	}

	if a.dialog.IsVisible() {
		return a, a.dialog.HandleClick(mouse.X, mouse.Y)
	}
	if a.anyOverlayVisible() {
		// Click outside closes the passive overlays.
		a.guidance.Close()
		a.changelog.Close()
		a.progress.Close()
		a.quickstart.Close()
		return a, nil
	}

	if action, ok := a.footer.ActionAt(mouse.X, mouse.Y); ok {
		return a.runFooterAction(action)
	}

	return a, a.activeViewComponent().Update(msg)
}

func (a *App) runFooterAction(action FooterAction) (tea.Model, tea.Cmd) {
	switch action {
	case FooterActionTable:
		a.switchView(ViewTable)
	case FooterActionKanban:
		a.switchView(ViewKanban)
	case FooterActionGantt:
		a.switchView(ViewGantt)
	case FooterActionSave:
		return a, a.save()
	case FooterActionExport:
		return a, a.exportData()
	case FooterActionGuide:
		if t := a.table.selectedTask(); t != nil {
			a.guidance.Show(t.Name, a.state.Lang)
		}
	case FooterActionChangeLog:
		a.changelog.Show(a.state.ChangeLog, a.state.Lang)
	case FooterActionProgress:
		a.progress.Show()
	case FooterActionLang:
		return a, a.toggleLang()
	case FooterActionQuit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) switchView(view ViewType) {
	a.activeView = view
	a.footer.SetActiveView(view)
}

// save snapshots the form and rows and persists both blobs.
func (a *App) save() tea.Cmd {
	snap := storage.Capture(a.state.Form, a.state.Store)
	log := a.state.ChangeLog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
		defer cancel()
		if err := a.gateway.SaveSnapshot(ctx, snap); err != nil {
			return SaveDoneMsg{Err: err}
		}
		return SaveDoneMsg{Err: a.gateway.SaveChangeLog(ctx, log)}
	}
}

// exportData writes the CSV of the live fields plus, when a snapshot
// exists, its verbatim JSON.
func (a *App) exportData() tea.Cmd {
	// Both CSV variants are rendered up front; commands run off the
	// update loop and must not touch live state. The interview-type
	// row only appears when a saved snapshot backs it.
	csvBare := export.CSV(a.state.Form, a.state.Store, "", a.state.Lang)
	csvWithMeta := export.CSV(a.state.Form, a.state.Store, string(a.state.Form.InterviewType), a.state.Lang)
	projectName := a.state.Form.Project.Name
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
		defer cancel()

		csv := csvBare
		raw, found, err := a.gateway.SnapshotRaw(ctx)
		if err == nil && found {
			csv = csvWithMeta
		}

		path, err := export.WriteFile(a.exportDir, export.FileName(projectName, "csv"), csv)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		if found {
			if _, err := export.WriteFile(a.exportDir, export.FileName(projectName, "json"), raw); err != nil {
				return ExportDoneMsg{Err: err}
			}
		}
		return ExportDoneMsg{Path: path}
	}
}

// toggleLang flips ja/en and persists the preference.
func (a *App) toggleLang() tea.Cmd {
	lang := workflow.LangJA
	if a.state.Lang == workflow.LangJA {
		lang = workflow.LangEN
	}
	a.setLang(lang)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
		defer cancel()
		if err := a.gateway.SaveLang(ctx, lang); err != nil {
			logger.Warn("failed to save language pref: %v", err)
		}
		return nil
	}
}

// confirmClear asks before wiping the saved snapshot and change log.
func (a *App) confirmClear() tea.Cmd {
	a.dialog.Show(
		tr(a.state.Lang, "データ削除", "Clear Data"),
		tr(a.state.Lang, "保存済みデータと変更履歴を削除しますか？", "Delete the saved snapshot and change log?"),
		tr(a.state.Lang, "削除", "Delete"),
		tr(a.state.Lang, "キャンセル", "Cancel"),
		func() tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(a.ctx, storageTimeout)
				defer cancel()
				return ClearDoneMsg{Err: a.gateway.Clear(ctx)}
			}
		},
	)
	return nil
}

// View renders the current frame.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.KeyboardEnhancements = tea.KeyboardEnhancements{
		ReportEventTypes: true,
	}

	if a.quitting {
		view.AltScreen = false
		view.MouseMode = 0
		view.Content = lipglossv2.NewLayer("")
		return view
	}

	if a.layoutDirty {
		a.layout = CalculateLayout(a.width, a.height)
		a.propagateSizes()
		a.layoutDirty = false
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	view.Cursor = a.Draw(canvas, canvas.Bounds())
	view.Content = lipglossv2.NewLayer(canvas.Render())
	view.BackgroundColor = lipglossv2.Color(string(colorCrust))
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	cursor := a.activeViewComponent().Draw(scr, a.layout.Main)
	a.status.Draw(scr, a.layout.Status)
	a.footer.Draw(scr, a.layout.Footer)

	a.guidance.Draw(scr, area)
	a.changelog.Draw(scr, area)
	a.progress.Draw(scr, area)
	a.reason.Draw(scr, area)
	a.quickstart.Draw(scr, area)
	a.dialog.Draw(scr, area)
	a.toast.Draw(scr, area)

	return cursor
}

// propagateSizes pushes the layout rectangles into the components.
func (a *App) propagateSizes() {
	a.status.SetSize(a.layout.Status.Dx(), a.layout.Status.Dy())
	a.footer.SetSize(a.layout.Footer.Dx(), a.layout.Footer.Dy())
	for _, v := range []View{a.table, a.kanban, a.gantt} {
		v.SetSize(a.layout.Main.Dx(), a.layout.Main.Dy())
	}
}

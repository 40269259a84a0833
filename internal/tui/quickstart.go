package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/pubflow/internal/workflow"
)

// QuickStartOverlay is the first-run walkthrough. It shows once; any
// key dismisses it and the dismissal is persisted as a preference.
type QuickStartOverlay struct {
	visible bool
	lang    workflow.Lang
}

// NewQuickStartOverlay creates the hidden overlay.
func NewQuickStartOverlay() *QuickStartOverlay {
	return &QuickStartOverlay{}
}

// Show opens the overlay.
func (q *QuickStartOverlay) Show(lang workflow.Lang) {
	q.visible = true
	q.lang = lang
}

// Close hides the overlay.
func (q *QuickStartOverlay) Close() {
	q.visible = false
}

// IsVisible returns whether the overlay is currently visible.
func (q *QuickStartOverlay) IsVisible() bool {
	return q.visible
}

// Update dismisses the overlay on any key press and reports the
// dismissal so the caller can persist it.
func (q *QuickStartOverlay) Update(msg tea.Msg) (dismissed bool) {
	if _, ok := msg.(tea.KeyPressMsg); ok && q.visible {
		q.Close()
		return true
	}
	return false
}

// Draw renders the overlay centered on the screen buffer.
func (q *QuickStartOverlay) Draw(scr uv.Screen, area uv.Rectangle) {
	if !q.visible {
		return
	}
	lang := q.lang

	steps := []string{
		tr(lang, "1. タブ切替: 1 工程表  2 カンバン  3 ガント", "1. Switch views: 1 table  2 kanban  3 gantt"),
		tr(lang, "2. enter でセルを編集、ステータス列は enter で進行", "2. enter edits a cell; on the status column it advances"),
		tr(lang, "3. ガントではバーをドラッグして日程を調整", "3. Drag gantt bars to reschedule"),
		tr(lang, "4. s で保存（12時間保持）、e で書き出し", "4. s saves (kept 12 hours), e exports"),
		tr(lang, "5. g でタスクガイド、c で変更履歴、p で進捗サマリー", "5. g opens the task guide, c the change log, p the progress summary"),
	}

	var lines []string
	lines = append(lines,
		styleModalTitle.Render(tr(lang, "クイックスタート", "Quick Start")),
		"")
	lines = append(lines, steps...)
	lines = append(lines, "", styleDim.Render(tr(lang, "いずれかのキーで閉じる", "Press any key to continue")))

	content := styleModalContainer.Render(strings.Join(lines, "\n"))
	DrawCentered(scr, area, content)
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark3labs/pubflow/internal/workflow"
)

func TestGuidanceModalContent(t *testing.T) {
	t.Run("known task shows deliverable and prerequisites", func(t *testing.T) {
		m := NewGuidanceModal()
		m.Show("コアメッセージ決定", workflow.LangJA)

		content := m.buildContent(60)
		require.Contains(t, content, "成果物")
		require.Contains(t, content, "前提タスク")
		require.Contains(t, content, "ターゲット/ペルソナ設定")
	})

	t.Run("english guidance when available", func(t *testing.T) {
		m := NewGuidanceModal()
		m.Show("初稿執筆", workflow.LangEN)

		content := m.buildContent(60)
		require.Contains(t, content, "First Draft")
	})

	t.Run("unknown task falls back", func(t *testing.T) {
		m := NewGuidanceModal()
		m.Show("謎のタスク", workflow.LangJA)

		content := m.buildContent(60)
		require.Contains(t, content, "まだ用意されていません")
	})

	t.Run("close clears the task", func(t *testing.T) {
		m := NewGuidanceModal()
		m.Show("初稿執筆", workflow.LangJA)
		require.True(t, m.IsVisible())
		m.Close()
		require.False(t, m.IsVisible())
	})
}

func TestWrapText(t *testing.T) {
	require.Equal(t, "abcd\nef", wrapText("abcdef", 4))
	// CJK runes are double width.
	require.Equal(t, "広報\n物", wrapText("広報物", 4))
	require.Equal(t, "short", wrapText("short", 10))
}

package workflow

import (
	"fmt"
	"strings"
)

// Store is the ordered list of task rows and the single source of truth
// for every view. It performs no recomputation itself; callers run the
// recompute pipeline after each mutation.
type Store struct {
	tasks []*Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// defaultRows lists the seeded workflow, phase then canonical task name.
var defaultRows = [][2]string{
	{"企画・構成", "目的/ゴールの明確化"},
	{"企画・構成", "ターゲット/ペルソナ設定"},
	{"企画・構成", "競合/類似物調査"},
	{"企画・構成", "コアメッセージ決定"},
	{"企画・構成", "構成案/台割作成"},
	{"企画・構成", "スケジュール/予算確定"},
	{"企画・構成", "企画承認"},
	{"取材・素材", "取材対象者リスト作成"},
	{"取材・素材", "取材質問設計"},
	{"取材・素材", "取材アポイント調整"},
	{"取材・素材", "取材実施/記録"},
	{"取材・素材", "文字起こし/記録整理"},
	{"取材・素材", "写真/素材撮影・収集"},
	{"取材・素材", "素材の不足確認/追加入手"},
	{"原稿作成", "初稿執筆"},
	{"原稿作成", "キャッチ/見出し案作成"},
	{"原稿作成", "内部レビュー（文章）"},
	{"原稿作成", "修正/第2稿作成"},
	{"原稿作成", "対象者/関係者確認"},
	{"原稿作成", "原稿確定"},
	{"編集・組版", "デザインコンセプト決定"},
	{"編集・組版", "ラフレイアウト作成"},
	{"編集・組版", "写真/図版選定・配置"},
	{"編集・組版", "初稿組版作成"},
	{"編集・組版", "内部レビュー（デザイン）"},
	{"編集・組版", "デザイン修正"},
	{"編集・組版", "デザイン確定"},
	{"校正1（初校）", "初校チェック"},
	{"校正1（初校）", "初校赤字反映"},
	{"校正2（再校）", "再校チェック"},
	{"校正2（再校）", "再校赤字反映"},
	{"校正3（三校）", "三校チェック"},
	{"校正3（三校）", "三校赤字反映"},
	{"色校正", "色校正出し/確認"},
	{"色校正", "色校正戻し/確定"},
	{"入稿・公開", "入稿データ作成"},
	{"入稿・公開", "印刷発注/公開準備"},
	{"入稿・公開", "校了/最終承認"},
	{"入稿・公開", "納品/公開"},
	{"入稿・公開", "配布/告知"},
}

// DefaultStore creates a store seeded with the standard PR production
// workflow rows.
func DefaultStore() *Store {
	s := NewStore()
	for _, row := range defaultRows {
		s.Add(NewTask(row[0], row[1]))
	}
	return s
}

// Tasks returns the tasks in display order. The slice is shared; callers
// must not reorder it directly.
func (s *Store) Tasks() []*Task {
	return s.tasks
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a task to the end of the list.
func (s *Store) Add(t *Task) {
	s.tasks = append(s.tasks, t)
}

// Get finds a task by ID.
func (s *Store) Get(id string) (*Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task not found: %s", id)
}

// IndexOf returns the position of a task, or -1 if absent.
func (s *Store) IndexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// At returns the task at a position, or nil if out of range.
func (s *Store) At(i int) *Task {
	if i < 0 || i >= len(s.tasks) {
		return nil
	}
	return s.tasks[i]
}

// Remove deletes a task by ID.
func (s *Store) Remove(id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Move repositions a task to a new index, shifting the others. The move
// changes display order only, never identity.
func (s *Store) Move(id string, to int) error {
	from := s.IndexOf(id)
	if from < 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(s.tasks) {
		to = len(s.tasks) - 1
	}
	if from == to {
		return nil
	}
	t := s.tasks[from]
	s.tasks = append(s.tasks[:from], s.tasks[from+1:]...)
	s.tasks = append(s.tasks[:to], append([]*Task{t}, s.tasks[to:]...)...)
	return nil
}

// Truncate removes tasks past n, or appends blank rows up to n. Used by
// snapshot restore to line the row count up before replaying fields.
// A store already at n rows is untouched.
func (s *Store) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.tasks) < n {
		s.Add(NewTask("", ""))
	}
	if len(s.tasks) > n {
		s.tasks = s.tasks[:n]
	}
}

// FindByName returns the first task whose canonical name matches.
// With duplicate names the first row wins; later rows never shadow it.
func (s *Store) FindByName(name string) *Task {
	for _, t := range s.tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// PrependNote adds a note line above the existing notes, newest first.
func (t *Task) PrependNote(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if t.Notes == "" {
		t.Notes = line
		return
	}
	t.Notes = line + "\n" + t.Notes
}

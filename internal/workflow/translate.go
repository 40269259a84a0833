package workflow

// Lang is a display language code.
type Lang string

const (
	LangJA Lang = "ja"
	LangEN Lang = "en"
)

// NormalizeLang maps arbitrary stored strings to a supported language.
func NormalizeLang(s string) Lang {
	if s == string(LangEN) {
		return LangEN
	}
	return LangJA
}

var phaseEN = map[string]string{
	"企画・構成":   "Planning",
	"取材・素材":   "Research & Materials",
	"原稿作成":    "Writing",
	"編集・組版":   "Design & Layout",
	"校正1（初校）": "Proofreading 1",
	"校正2（再校）": "Proofreading 2",
	"校正3（三校）": "Proofreading 3",
	"色校正":     "Color Proof",
	"入稿・公開":   "Submission & Publication",
}

var taskEN = map[string]string{
	"目的/ゴールの明確化":    "Define purpose/goals",
	"ターゲット/ペルソナ設定":  "Set target/persona",
	"競合/類似物調査":      "Competitor research",
	"コアメッセージ決定":     "Define core message",
	"構成案/台割作成":      "Create outline/structure",
	"スケジュール/予算確定":   "Finalize schedule/budget",
	"企画承認":          "Approve plan",
	"取材対象者リスト作成":    "Create interviewee list",
	"取材質問設計":        "Design interview questions",
	"取材アポイント調整":     "Schedule interviews",
	"取材実施/記録":       "Conduct interviews",
	"文字起こし/記録整理":    "Transcription/organize notes",
	"写真/素材撮影・収集":    "Photo/material collection",
	"素材の不足確認/追加入手":  "Check/obtain missing materials",
	"初稿執筆":          "Write first draft",
	"キャッチ/見出し案作成":   "Create headlines/copy",
	"内部レビュー（文章）":    "Internal review (text)",
	"修正/第2稿作成":      "Revisions/second draft",
	"対象者/関係者確認":     "Subject/stakeholder review",
	"原稿確定":          "Finalize manuscript",
	"デザインコンセプト決定":   "Define design concept",
	"ラフレイアウト作成":     "Create rough layout",
	"写真/図版選定・配置":    "Select/place photos",
	"初稿組版作成":        "First typeset draft",
	"内部レビュー（デザイン）":  "Internal review (design)",
	"デザイン修正":        "Design revisions",
	"デザイン確定":        "Finalize design",
	"初校チェック":        "First proof check",
	"初校赤字反映":        "Apply first corrections",
	"再校チェック":        "Second proof check",
	"再校赤字反映":        "Apply second corrections",
	"三校チェック":        "Third proof check",
	"三校赤字反映":        "Apply third corrections",
	"色校正出し/確認":      "Color proof check",
	"色校正戻し/確定":      "Finalize color proof",
	"入稿データ作成":       "Prepare submission data",
	"印刷発注/公開準備":     "Print order/publish prep",
	"校了/最終承認":       "Final approval",
	"納品/公開":         "Delivery/publication",
	"配布/告知":         "Distribution/announcement",
}

var statusJA = map[Status]string{
	StatusTodo:   "未着手",
	StatusDoing:  "進行中",
	StatusReview: "レビュー待ち",
	StatusBack:   "差し戻し",
	StatusDone:   "完了",
}

var statusEN = map[Status]string{
	StatusTodo:   "Not Started",
	StatusDoing:  "In Progress",
	StatusReview: "In Review",
	StatusBack:   "Returned",
	StatusDone:   "Done",
}

// TranslatePhase renders a canonical phase name in the display language,
// falling back to the canonical name when untranslated.
func TranslatePhase(lang Lang, phase string) string {
	if lang == LangEN {
		if en, ok := phaseEN[phase]; ok {
			return en
		}
	}
	return phase
}

// TranslateTask renders a canonical task name in the display language,
// falling back to the canonical name when untranslated.
func TranslateTask(lang Lang, name string) string {
	if lang == LangEN {
		if en, ok := taskEN[name]; ok {
			return en
		}
	}
	return name
}

// StatusLabel renders a status in the display language.
func StatusLabel(lang Lang, st Status) string {
	if lang == LangEN {
		return statusEN[st]
	}
	return statusJA[st]
}

package workflow

import "testing"

func TestLookupGuidance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantOK  bool
	}{
		{"exact match", "初稿執筆", "初稿執筆", true},
		{"stripped question mark", "初稿執筆?", "初稿執筆", true},
		{"stripped with spaces", " 初稿執筆? ", "初稿執筆", true},
		{"substring of a key", "初稿執筆（本文）", "初稿執筆", true},
		{"no match", "存在しないタスク", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, key, ok := LookupGuidance(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if key != tt.wantKey {
				t.Errorf("key = %q, want %q", key, tt.wantKey)
			}
			if g.Description == "" || g.Deliverable == "" {
				t.Error("guidance entry missing content")
			}
		})
	}
}

func TestGuidanceTablesParallel(t *testing.T) {
	if len(guidanceJA) != 41 {
		t.Errorf("expected 41 japanese entries, got %d", len(guidanceJA))
	}
	for key, ja := range guidanceJA {
		en, ok := guidanceEN[key]
		if !ok {
			t.Errorf("missing english entry for %q", key)
			continue
		}
		if len(en.Tips) != len(ja.Tips) {
			t.Errorf("%q: tips count mismatch ja=%d en=%d", key, len(ja.Tips), len(en.Tips))
		}
		if len(en.Checkpoints) != len(ja.Checkpoints) {
			t.Errorf("%q: checkpoints count mismatch", key)
		}
		// Prerequisites live only on the canonical table.
		if len(en.Prerequisites) != 0 {
			t.Errorf("%q: english table must not carry prerequisites", key)
		}
		// Every prerequisite must itself be a known canonical name.
		for _, dep := range ja.Prerequisites {
			if _, ok := guidanceJA[dep]; !ok {
				t.Errorf("%q: prerequisite %q is not a known task", key, dep)
			}
		}
	}
}

func TestPrerequisites(t *testing.T) {
	deps := Prerequisites("コアメッセージ決定")
	if len(deps) != 2 {
		t.Fatalf("expected 2 prerequisites, got %v", deps)
	}
	if deps[0] != "ターゲット/ペルソナ設定" || deps[1] != "競合/類似物調査" {
		t.Errorf("unexpected prerequisites %v", deps)
	}
	if Prerequisites("存在しないタスク") != nil {
		t.Error("unknown task should have nil prerequisites")
	}
}

func TestGuidanceEN(t *testing.T) {
	g, ok := GuidanceEN("初稿執筆")
	if !ok {
		t.Fatal("expected english entry for 初稿執筆")
	}
	if g.Deliverable != "First Draft" {
		t.Errorf("unexpected deliverable %q", g.Deliverable)
	}
	if _, ok := GuidanceEN("missing"); ok {
		t.Error("missing key should report !ok")
	}
}

func TestTranslate(t *testing.T) {
	if got := TranslatePhase(LangEN, "企画・構成"); got != "Planning" {
		t.Errorf("TranslatePhase = %q", got)
	}
	if got := TranslatePhase(LangJA, "企画・構成"); got != "企画・構成" {
		t.Errorf("japanese phase should stay canonical, got %q", got)
	}
	if got := TranslatePhase(LangEN, "未分類"); got != "未分類" {
		t.Errorf("untranslated phase should fall back, got %q", got)
	}
	if got := TranslateTask(LangEN, "初稿執筆"); got != "Write first draft" {
		t.Errorf("TranslateTask = %q", got)
	}
	if got := StatusLabel(LangJA, StatusBack); got != "差し戻し" {
		t.Errorf("StatusLabel = %q", got)
	}
	if got := StatusLabel(LangEN, StatusBack); got != "Returned" {
		t.Errorf("StatusLabel = %q", got)
	}
}

func TestNormalizeLang(t *testing.T) {
	if NormalizeLang("en") != LangEN {
		t.Error("en should normalize to LangEN")
	}
	if NormalizeLang("fr") != LangJA {
		t.Error("unknown language should fall back to japanese")
	}
}

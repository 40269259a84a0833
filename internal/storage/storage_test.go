package storage

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/pubflow/internal/form"
	pfnats "github.com/mark3labs/pubflow/internal/nats"
	"github.com/mark3labs/pubflow/internal/workflow"
)

func setupGateway(t *testing.T) (*Gateway, context.Context) {
	t.Helper()
	ctx := context.Background()

	ns, err := pfnats.StartEmbeddedNATS(t.TempDir())
	if err != nil {
		t.Fatalf("failed to start NATS: %v", err)
	}
	t.Cleanup(ns.Shutdown)

	nc, err := pfnats.ConnectInProcess(ns)
	if err != nil {
		t.Fatalf("failed to connect to NATS: %v", err)
	}
	t.Cleanup(nc.Close)

	js, err := pfnats.CreateJetStream(nc)
	if err != nil {
		t.Fatalf("failed to create JetStream: %v", err)
	}
	data, err := pfnats.SetupDataBucket(ctx, js)
	if err != nil {
		t.Fatalf("failed to setup data bucket: %v", err)
	}
	changeLog, err := pfnats.SetupChangeLogBucket(ctx, js)
	if err != nil {
		t.Fatalf("failed to setup change log bucket: %v", err)
	}

	return NewGateway(data, changeLog), ctx
}

func TestSnapshotRoundTrip(t *testing.T) {
	g, ctx := setupGateway(t)

	f := form.New(workflow.LangJA)
	f.Project.Name = "会社案内2026"
	f.InterviewType = form.InterviewRequest
	f.AddQuestion(form.InterviewRequest)
	f.RequestQuestions[0].Text = "代表挨拶の執筆"

	store := workflow.DefaultStore()
	store.Tasks()[0].Status = workflow.StatusDone
	store.Tasks()[0].Assignee = "田中"
	store.Tasks()[1].StartDate = "2026-09-01"
	store.Tasks()[1].EndDate = "2026-09-05"

	if err := g.SaveSnapshot(ctx, Capture(f, store)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, found, err := g.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if !found {
		t.Fatal("expected a stored snapshot")
	}

	f2 := form.New(workflow.LangJA)
	store2 := workflow.DefaultStore()
	loaded.Apply(f2, store2)

	if f2.Project.Name != "会社案内2026" {
		t.Errorf("project name = %q", f2.Project.Name)
	}
	if f2.InterviewType != form.InterviewRequest {
		t.Errorf("interview type = %q", f2.InterviewType)
	}
	if len(f2.RequestQuestions) != 1 || f2.RequestQuestions[0].Text != "代表挨拶の執筆" {
		t.Errorf("request questions = %+v", f2.RequestQuestions)
	}
	if store2.Len() != 40 {
		t.Errorf("row count = %d", store2.Len())
	}
	if store2.Tasks()[0].Status != workflow.StatusDone || store2.Tasks()[0].Assignee != "田中" {
		t.Errorf("first row = %+v", store2.Tasks()[0])
	}
	if store2.Tasks()[1].StartDate != "2026-09-01" || store2.Tasks()[1].EndDate != "2026-09-05" {
		t.Errorf("second row dates = %+v", store2.Tasks()[1])
	}
}

func TestApplyIdempotent(t *testing.T) {
	f := form.New(workflow.LangJA)
	f.Project.Purpose = "採用強化"
	store := workflow.DefaultStore()
	store.Tasks()[3].Status = workflow.StatusDoing

	snap := Capture(f, store)
	snap.Apply(f, store)
	once := Capture(f, store)
	snap.Apply(f, store)
	twice := Capture(f, store)

	if len(once.Fields) != len(twice.Fields) {
		t.Fatalf("field count drifted: %d vs %d", len(once.Fields), len(twice.Fields))
	}
	for i := range once.Fields {
		if once.Fields[i] != twice.Fields[i] {
			t.Errorf("field %d drifted: %+v vs %+v", i, once.Fields[i], twice.Fields[i])
		}
	}
	if store.Tasks()[3].Status != workflow.StatusDoing {
		t.Error("status changed across repeated applies")
	}
}

func TestTTLExpiry(t *testing.T) {
	g, ctx := setupGateway(t)

	f := form.New(workflow.LangJA)
	store := workflow.DefaultStore()
	if err := g.SaveSnapshot(ctx, Capture(f, store)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	// Move the clock 13 hours forward; the snapshot is past its TTL.
	g.data.now = func() time.Time { return time.Now().Add(13 * time.Hour) }

	_, found, err := g.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if found {
		t.Fatal("expired snapshot should be absent")
	}

	// The stale key was purged, so a fresh read misses too.
	g.data.now = time.Now
	if _, found, _ := g.LoadSnapshot(ctx); found {
		t.Fatal("expired snapshot should have been purged")
	}
}

func TestMalformedSnapshotPurged(t *testing.T) {
	g, ctx := setupGateway(t)

	if err := g.data.SetPref(ctx, pfnats.KeyWorkflowData, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, found, err := g.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if found {
		t.Fatal("malformed snapshot should be absent")
	}
	if _, found, _ := g.data.GetPref(ctx, pfnats.KeyWorkflowData); found {
		t.Fatal("malformed snapshot should have been purged")
	}
}

func TestChangeLogRoundTrip(t *testing.T) {
	g, ctx := setupGateway(t)

	log := workflow.NewChangeLog()
	log.Record("初稿執筆", "status", "todo", "doing")
	log.Record("初稿執筆", "status", "doing", "done")
	if err := g.SaveChangeLog(ctx, log); err != nil {
		t.Fatalf("SaveChangeLog failed: %v", err)
	}

	loaded, err := g.LoadChangeLog(ctx)
	if err != nil {
		t.Fatalf("LoadChangeLog failed: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("entries = %d", loaded.Len())
	}
	if loaded.Entries()[0].To != "done" {
		t.Errorf("newest entry = %+v", loaded.Entries()[0])
	}
}

func TestPrefs(t *testing.T) {
	g, ctx := setupGateway(t)

	lang, err := g.LoadLang(ctx)
	if err != nil {
		t.Fatalf("LoadLang failed: %v", err)
	}
	if lang != workflow.LangJA {
		t.Errorf("default lang = %q", lang)
	}

	if err := g.SaveLang(ctx, workflow.LangEN); err != nil {
		t.Fatalf("SaveLang failed: %v", err)
	}
	lang, _ = g.LoadLang(ctx)
	if lang != workflow.LangEN {
		t.Errorf("lang = %q", lang)
	}

	shown, err := g.FirstRunShown(ctx)
	if err != nil || shown {
		t.Errorf("first run shown = %v, err = %v", shown, err)
	}
	if err := g.MarkFirstRunShown(ctx); err != nil {
		t.Fatalf("MarkFirstRunShown failed: %v", err)
	}
	shown, _ = g.FirstRunShown(ctx)
	if !shown {
		t.Error("first run should be marked shown")
	}
}

func TestClear(t *testing.T) {
	g, ctx := setupGateway(t)

	f := form.New(workflow.LangJA)
	store := workflow.DefaultStore()
	if err := g.SaveSnapshot(ctx, Capture(f, store)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	log := workflow.NewChangeLog()
	log.Record("task", "status", "todo", "done")
	if err := g.SaveChangeLog(ctx, log); err != nil {
		t.Fatalf("SaveChangeLog failed: %v", err)
	}
	if err := g.SaveLang(ctx, workflow.LangEN); err != nil {
		t.Fatalf("SaveLang failed: %v", err)
	}

	if err := g.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, found, _ := g.LoadSnapshot(ctx); found {
		t.Error("snapshot should be gone after clear")
	}
	loaded, err := g.LoadChangeLog(ctx)
	if err != nil {
		t.Fatalf("LoadChangeLog failed: %v", err)
	}
	if loaded.Len() != 0 {
		t.Error("change log should be empty after clear")
	}
	// Preferences survive a clear.
	if lang, _ := g.LoadLang(ctx); lang != workflow.LangEN {
		t.Error("language pref should survive clear")
	}
}

func TestDecodeSnapshotVersions(t *testing.T) {
	t.Run("v2 leaves workflow rows alone", func(t *testing.T) {
		data := []byte(`{"version":2,"interviewType":"direct","intervieweeCount":1,"directQuestionCount":0,"requestQuestionCount":0,"fields":[]}`)
		s, err := DecodeSnapshot(data)
		if err != nil {
			t.Fatalf("DecodeSnapshot failed: %v", err)
		}

		f := form.New(workflow.LangJA)
		store := workflow.DefaultStore()
		store.Truncate(10)
		s.Apply(f, store)
		if store.Len() != 10 {
			t.Errorf("v2 apply changed row count to %d", store.Len())
		}
	})

	t.Run("v1 named fields and checkbox arrays", func(t *testing.T) {
		data := []byte(`{"projectName":"社内報","purpose":"周知","tasks":[true,false,true],"checklists":[false,true]}`)
		s, err := DecodeSnapshot(data)
		if err != nil {
			t.Fatalf("DecodeSnapshot failed: %v", err)
		}

		f := form.New(workflow.LangJA)
		f.Project.Person = "existing"
		store := workflow.DefaultStore()
		s.Apply(f, store)

		if f.Project.Name != "社内報" || f.Project.Purpose != "周知" {
			t.Errorf("project = %+v", f.Project)
		}
		if f.Project.Person != "existing" {
			t.Error("empty legacy field must not clear a live one")
		}
		if !f.PlanChecks[0] || f.PlanChecks[1] || !f.PlanChecks[2] {
			t.Errorf("plan checks = %v", f.PlanChecks)
		}
		if f.PrepChecks[0] || !f.PrepChecks[1] {
			t.Errorf("prep checks = %v", f.PrepChecks)
		}
		if store.Len() != 40 {
			t.Errorf("v1 apply changed row count to %d", store.Len())
		}
	})

	t.Run("version tag absent decodes as v1", func(t *testing.T) {
		s, err := DecodeSnapshot([]byte(`{"projectName":"a"}`))
		if err != nil {
			t.Fatalf("DecodeSnapshot failed: %v", err)
		}
		if s.legacy == nil {
			t.Error("untagged document should take the v1 path")
		}
	})

	t.Run("future versions decode as current", func(t *testing.T) {
		s, err := DecodeSnapshot([]byte(`{"version":4,"fields":[]}`))
		if err != nil {
			t.Fatalf("DecodeSnapshot failed: %v", err)
		}
		if !s.restoreRows {
			t.Error("v4 should take the newest decoder")
		}
	})
}

package nats

import (
	"context"
	"testing"
)

func TestOpenProvisionsBuckets(t *testing.T) {
	ctx := context.Background()

	rt, err := Open(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("failed to open runtime: %v", err)
	}
	t.Cleanup(func() {
		if err := rt.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})

	if _, err := rt.Data.PutString(ctx, KeyLang, "ja"); err != nil {
		t.Fatalf("data bucket write failed: %v", err)
	}
	entry, err := rt.Data.Get(ctx, KeyLang)
	if err != nil || string(entry.Value()) != "ja" {
		t.Fatalf("data bucket read = %v, %v", entry, err)
	}

	st, err := rt.ChangeLog.Status(ctx)
	if err != nil {
		t.Fatalf("change log status failed: %v", err)
	}
	// The change log never expires; only the snapshot envelope does.
	if st.TTL() != 0 {
		t.Errorf("change log bucket TTL = %v, want none", st.TTL())
	}
}

package storage

import (
	"context"
	"encoding/json"

	pfnats "github.com/mark3labs/pubflow/internal/nats"
	"github.com/mark3labs/pubflow/internal/workflow"
	"github.com/nats-io/nats.go/jetstream"
)

// Gateway is the persistence surface the app talks to: snapshot,
// change log and preferences over the two KV buckets.
type Gateway struct {
	data *Blobs
	log  *Blobs
}

// NewGateway wraps the data and change-log buckets.
func NewGateway(data, changeLog jetstream.KeyValue) *Gateway {
	return &Gateway{
		data: NewBlobs(data),
		log:  NewBlobs(changeLog),
	}
}

// SaveSnapshot persists the snapshot under the workflow data key.
func (g *Gateway) SaveSnapshot(ctx context.Context, s *Snapshot) error {
	return g.data.SetJSON(ctx, pfnats.KeyWorkflowData, s)
}

// LoadSnapshot reads and decodes the stored snapshot. Absent, expired
// or malformed data reports found as false.
func (g *Gateway) LoadSnapshot(ctx context.Context) (*Snapshot, bool, error) {
	raw, found, err := g.SnapshotRaw(ctx)
	if err != nil || !found {
		return nil, false, err
	}
	s, err := DecodeSnapshot(raw)
	if err != nil {
		// Undecodable data behaves like no data at all.
		return nil, false, nil
	}
	return s, true, nil
}

// SnapshotRaw returns the stored snapshot JSON exactly as persisted,
// for verbatim export.
func (g *Gateway) SnapshotRaw(ctx context.Context) ([]byte, bool, error) {
	var raw json.RawMessage
	found, err := g.data.GetJSON(ctx, pfnats.KeyWorkflowData, DataTTL, &raw)
	if err != nil || !found {
		return nil, false, err
	}
	return raw, true, nil
}

// SaveChangeLog persists the full change log as one blob.
func (g *Gateway) SaveChangeLog(ctx context.Context, log *workflow.ChangeLog) error {
	return g.log.SetJSON(ctx, pfnats.KeyChangeLog, log.Entries())
}

// LoadChangeLog restores the change log; an empty log when nothing is
// stored.
func (g *Gateway) LoadChangeLog(ctx context.Context) (*workflow.ChangeLog, error) {
	var entries []workflow.ChangeEntry
	found, err := g.log.GetJSON(ctx, pfnats.KeyChangeLog, 0, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return workflow.NewChangeLog(), nil
	}
	return workflow.RestoreChangeLog(entries), nil
}

// SaveLang persists the display language preference.
func (g *Gateway) SaveLang(ctx context.Context, lang workflow.Lang) error {
	return g.data.SetPref(ctx, pfnats.KeyLang, string(lang))
}

// LoadLang returns the saved language, defaulting to Japanese.
func (g *Gateway) LoadLang(ctx context.Context) (workflow.Lang, error) {
	v, found, err := g.data.GetPref(ctx, pfnats.KeyLang)
	if err != nil {
		return workflow.LangJA, err
	}
	if !found {
		return workflow.LangJA, nil
	}
	return workflow.NormalizeLang(v), nil
}

// FirstRunShown reports whether the quick-start overlay was already
// dismissed once.
func (g *Gateway) FirstRunShown(ctx context.Context) (bool, error) {
	_, found, err := g.data.GetPref(ctx, pfnats.KeyFirstRun)
	return found, err
}

// MarkFirstRunShown records that the quick-start overlay was
// dismissed.
func (g *Gateway) MarkFirstRunShown(ctx context.Context) error {
	return g.data.SetPref(ctx, pfnats.KeyFirstRun, "false")
}

// Clear removes the saved snapshot and change log. Preferences stay.
func (g *Gateway) Clear(ctx context.Context) error {
	if err := g.data.Delete(ctx, pfnats.KeyWorkflowData); err != nil {
		return err
	}
	return g.log.Delete(ctx, pfnats.KeyChangeLog)
}

// Package storage persists snapshots, the change log and small
// preferences in JetStream key-value buckets. JSON blobs are wrapped
// in a savedAt envelope so stale data can be purged at read time.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/pubflow/internal/logger"
	"github.com/nats-io/nats.go/jetstream"
)

// DataTTL is how long a saved snapshot stays readable. Reads past the
// deadline purge the key and report it absent.
const DataTTL = 12 * time.Hour

type envelope struct {
	SavedAt int64           `json:"savedAt"`
	Value   json.RawMessage `json:"value"`
}

// Blobs wraps a KV bucket with envelope and TTL handling.
type Blobs struct {
	kv  jetstream.KeyValue
	now func() time.Time
}

// NewBlobs returns a Blobs over the given bucket.
func NewBlobs(kv jetstream.KeyValue) *Blobs {
	return &Blobs{kv: kv, now: time.Now}
}

// SetJSON stores v under key wrapped in a fresh savedAt envelope.
func (b *Blobs) SetJSON(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	payload, err := json.Marshal(envelope{
		SavedAt: b.now().UnixMilli(),
		Value:   value,
	})
	if err != nil {
		return fmt.Errorf("marshaling envelope for %s: %w", key, err)
	}
	if _, err := b.kv.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

// GetJSON reads key into out and reports whether a live value was
// found. A ttl of zero disables expiry. Stale or malformed entries are
// purged and reported absent rather than surfaced as errors.
func (b *Blobs) GetJSON(ctx context.Context, key string, ttl time.Duration, out any) (bool, error) {
	entry, err := b.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	raw := entry.Value()
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn("Purging malformed blob %s: %v", key, err)
		b.purge(ctx, key)
		return false, nil
	}

	value := env.Value
	if env.SavedAt > 0 && len(env.Value) > 0 {
		if ttl > 0 {
			age := b.now().Sub(time.UnixMilli(env.SavedAt))
			if age > ttl {
				logger.Debug("Purging expired blob %s (age %s)", key, age)
				b.purge(ctx, key)
				return false, nil
			}
		}
	} else {
		// Legacy entry without the envelope; treat the raw bytes as
		// the value itself.
		value = raw
	}

	if err := json.Unmarshal(value, out); err != nil {
		logger.Warn("Purging undecodable blob %s: %v", key, err)
		b.purge(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetPref stores a raw string preference without an envelope.
func (b *Blobs) SetPref(ctx context.Context, key, value string) error {
	if _, err := b.kv.PutString(ctx, key, value); err != nil {
		return fmt.Errorf("storing pref %s: %w", key, err)
	}
	return nil
}

// GetPref reads a raw string preference. Absent keys report found as
// false with no error.
func (b *Blobs) GetPref(ctx context.Context, key string) (string, bool, error) {
	entry, err := b.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading pref %s: %w", key, err)
	}
	return string(entry.Value()), true, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (b *Blobs) Delete(ctx context.Context, key string) error {
	if err := b.kv.Purge(ctx, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

func (b *Blobs) purge(ctx context.Context, key string) {
	if err := b.kv.Purge(ctx, key); err != nil {
		logger.Warn("Failed to purge %s: %v", key, err)
	}
}

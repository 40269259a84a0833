package nats

import (
	"context"

	"github.com/nats-io/nats.go/jetstream"
)

// Bucket names for the key-value stores backing pubflow.
const (
	// BucketData holds the workflow snapshot and language preferences.
	BucketData = "pubflow_data"

	// BucketChangeLog holds the recorded change history.
	BucketChangeLog = "pubflow_changelog"
)

// Well-known keys within the data bucket.
const (
	KeyWorkflowData = "workflow-data"
	KeyLang         = "lang"
	KeyFirstRun     = "first-run-shown"
	KeyChangeLog    = "change-log"
)

// SetupDataBucket creates or opens the key-value bucket holding workflow
// snapshots and preferences. Values are small JSON blobs so a single replica
// with file storage is enough.
func SetupDataBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  BucketData,
		Storage: jetstream.FileStorage,
		History: 1,
	})
}

// SetupChangeLogBucket creates or opens the key-value bucket holding the
// change history. Kept separate from the data bucket so clearing saved
// workflow data leaves the history untouched.
func SetupChangeLogBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  BucketChangeLog,
		Storage: jetstream.FileStorage,
		History: 1,
	})
}

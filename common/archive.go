package common

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/types"
)

// ErrNoSnapshot is returned when a country has nothing archived.
var ErrNoSnapshot = errors.New("no snapshot archived")

// SnapshotArchiver writes raw run snapshots to S3 as JSON, one object per run:
//
//	{prefix}snapshots/{country}/{yyyy-mm-dd}/{hhmmss}-{run_id}.json
//
// Keys sort chronologically within a country.
type SnapshotArchiver struct {
	store  *S3
	bucket string
	prefix string
}

// NewSnapshotArchiver targets bucket under prefix ("" or ending in "/").
func NewSnapshotArchiver(store *S3, bucket, prefix string) *SnapshotArchiver {
	return &SnapshotArchiver{store: store, bucket: bucket, prefix: prefix}
}

// SnapshotKey is the object key a snapshot is stored under.
func (a *SnapshotArchiver) SnapshotKey(snap types.Snapshot) string {
	ts := snap.FetchedAt.UTC()
	return fmt.Sprintf("%s%s/%s-%s.json",
		a.countryPrefix(snap.Country), ts.Format("2006-01-02"), ts.Format("150405"), snap.RunID)
}

func (a *SnapshotArchiver) countryPrefix(country string) string {
	return a.prefix + "snapshots/" + strings.ToUpper(country) + "/"
}

// Archive uploads snap.
func (a *SnapshotArchiver) Archive(ctx context.Context, snap types.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := a.SnapshotKey(snap)
	if err := a.store.Put(ctx, a.bucket, key, bytes.NewReader(b), "application/json", "no-cache", ""); err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	log.Debug().Str("bucket", a.bucket).Str("key", key).Int("bytes", len(b)).Msg("☁️ snapshot archived")
	return nil
}

// Load reads the snapshot stored at key.
func (a *SnapshotArchiver) Load(ctx context.Context, key string) (types.Snapshot, error) {
	var snap types.Snapshot
	body, err := a.store.Get(ctx, a.bucket, key)
	if err != nil {
		if IsNotFound(err) {
			return snap, fmt.Errorf("%s: %w", key, ErrNoSnapshot)
		}
		return snap, fmt.Errorf("failed to download snapshot %s: %w", key, err)
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return snap, nil
}

// Latest returns the most recent snapshot archived for country.
func (a *SnapshotArchiver) Latest(ctx context.Context, country string) (types.Snapshot, error) {
	prefix := a.countryPrefix(country)
	var latest string
	var token *string
	for {
		out, err := a.store.List(ctx, a.bucket, prefix, 1000, token)
		if err != nil {
			return types.Snapshot{}, fmt.Errorf("failed to list %s: %w", prefix, err)
		}
		for _, obj := range out.Contents {
			if k := aws.ToString(obj.Key); k > latest {
				latest = k
			}
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		token = out.NextContinuationToken
	}

	if latest == "" {
		return types.Snapshot{}, fmt.Errorf("%s: %w", country, ErrNoSnapshot)
	}
	return a.Load(ctx, latest)
}

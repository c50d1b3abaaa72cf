package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannkk1/MacroCharts/types"
)

const testBucket = "macro-archive"

// fakeS3 is a path-style object store speaking just enough of the S3 API.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	lists   int
}

func newFakeS3(t *testing.T) (*fakeS3, *S3) {
	t.Helper()
	f := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	store, err := NewS3(context.Background(), S3Config{
		Region:       "us-east-1",
		Endpoint:     srv.URL,
		UsePathStyle: true,
		AccessKey:    "test",
		SecretKey:    "test",
	})
	require.NoError(t, err)
	return f, store
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	bucket, key, _ := strings.Cut(path, "/")
	if bucket != testBucket {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch {
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2":
		f.lists++
		f.list(w, r.URL.Query().Get("prefix"), r.URL.Query().Get("continuation-token"))

	case r.Method == http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// list pages two keys at a time so callers must follow continuation tokens.
func (f *fakeS3) list(w http.ResponseWriter, prefix, token string) {
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start, _ := strconv.Atoi(token)
	end := min(start+2, len(keys))
	page := keys[min(start, len(keys)):end]
	truncated := end < len(keys)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
	fmt.Fprintf(&b, `<Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>%t</IsTruncated>`,
		testBucket, prefix, len(page), truncated)
	if truncated {
		fmt.Fprintf(&b, `<NextContinuationToken>%d</NextContinuationToken>`, end)
	}
	for _, k := range page {
		fmt.Fprintf(&b, `<Contents><Key>%s</Key><Size>%d</Size></Contents>`, k, len(f.objects[k]))
	}
	b.WriteString(`</ListBucketResult>`)

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(b.String()))
}

func snapshotAt(runID string, at time.Time, titles ...string) types.Snapshot {
	snap := types.Snapshot{RunID: runID, Country: "US", FetchedAt: at}
	for _, t := range titles {
		snap.Feed = append(snap.Feed, types.RawNewsItem{Title: t, Publisher: "Reuters"})
	}
	return snap
}

func TestSnapshotKey(t *testing.T) {
	a := NewSnapshotArchiver(nil, testBucket, "macro/")
	key := a.SnapshotKey(types.Snapshot{
		RunID:     "abc",
		Country:   "us",
		FetchedAt: time.Date(2024, 6, 15, 9, 5, 7, 0, time.FixedZone("CEST", 2*3600)),
	})
	assert.Equal(t, "macro/snapshots/US/2024-06-15/070507-abc.json", key)
}

func TestArchiveAndLatest(t *testing.T) {
	f, store := newFakeS3(t)
	a := NewSnapshotArchiver(store, testBucket, "macro/")
	ctx := context.Background()
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, a.Archive(ctx, snapshotAt("r1", day.Add(8*time.Hour), "first")))
	require.NoError(t, a.Archive(ctx, snapshotAt("r3", day.Add(26*time.Hour), "newest")))
	require.NoError(t, a.Archive(ctx, snapshotAt("r2", day.Add(12*time.Hour), "middle")))
	other := snapshotAt("r9", day.Add(48*time.Hour), "elsewhere")
	other.Country = "DE"
	require.NoError(t, a.Archive(ctx, other))

	assert.Contains(t, f.objects, "macro/snapshots/US/2024-06-16/020000-r3.json")

	got, err := a.Latest(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, "r3", got.RunID)
	require.Len(t, got.Feed, 1)
	assert.Equal(t, "newest", got.Feed[0].Title)
	assert.True(t, got.FetchedAt.Equal(day.Add(26*time.Hour)))
	assert.Equal(t, 2, f.lists)
}

func TestLatestWithNothingArchived(t *testing.T) {
	_, store := newFakeS3(t)
	a := NewSnapshotArchiver(store, testBucket, "")

	_, err := a.Latest(context.Background(), "JP")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoadMissingKey(t *testing.T) {
	_, store := newFakeS3(t)
	a := NewSnapshotArchiver(store, testBucket, "")

	_, err := a.Load(context.Background(), "snapshots/US/2024-01-01/000000-x.json")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

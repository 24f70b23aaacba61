package video

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb)
}

func TestStoreJobRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job := &VideoJob{
		JobID:     "job-1",
		SessionID: "session-1",
		Snippet:   "a story",
		Prompt:    "a prompt",
		Status:    StatusPending,
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}
	if err := store.SaveJob(ctx, job); err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}

	got, err := store.GetJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.SessionID != "session-1" || got.Status != StatusPending {
		t.Errorf("round-tripped job = %+v", got)
	}

	if _, err := store.GetJob(ctx, "missing"); err == nil {
		t.Error("GetJob should fail for unknown ids")
	}
}

func TestStoreQueue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Enqueue(ctx, "job-a"); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if err := store.Enqueue(ctx, "job-b"); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	first, err := store.DequeueBlocking(ctx)
	if err != nil {
		t.Fatalf("DequeueBlocking failed: %v", err)
	}
	if first != "job-a" {
		t.Errorf("dequeued %q, want job-a (FIFO)", first)
	}
}

func TestStoreCancelFlag(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if store.IsCancelled(ctx, "job-1") {
		t.Error("fresh job should not be cancelled")
	}
	if err := store.MarkCancelled(ctx, "job-1"); err != nil {
		t.Fatalf("MarkCancelled failed: %v", err)
	}
	if !store.IsCancelled(ctx, "job-1") {
		t.Error("cancel flag not visible")
	}
	if store.IsCancelled(ctx, "job-2") {
		t.Error("cancel flag leaked to another job")
	}
}

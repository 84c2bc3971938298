package ledger_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"voxpick/internal/ledger"
)

func openStore(t *testing.T) *ledger.Store {
	t.Helper()
	store, err := ledger.Open(filepath.Join(t.TempDir(), "prompts.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCompletedUnknownClip(t *testing.T) {
	store := openStore(t)

	done, err := store.Completed(context.Background(), "/clips/a.wav")
	if err != nil {
		t.Fatalf("Completed failed: %v", err)
	}
	if done {
		t.Fatal("unknown clip should not be completed")
	}
}

func TestRecordSuccessMarksCompleted(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordSuccess(ctx, "/clips/a.wav", "原神_钟离", "happy", "/out/zh-原神_钟离-happy.pt"); err != nil {
		t.Fatalf("RecordSuccess failed: %v", err)
	}

	done, err := store.Completed(ctx, "/clips/a.wav")
	if err != nil {
		t.Fatalf("Completed failed: %v", err)
	}
	if !done {
		t.Fatal("expected clip to be completed")
	}
}

func TestFailureThenSuccessUpserts(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordFailure(ctx, "/clips/a.wav", "原神_钟离", "happy", errors.New("connection refused")); err != nil {
		t.Fatalf("RecordFailure failed: %v", err)
	}

	done, err := store.Completed(ctx, "/clips/a.wav")
	if err != nil {
		t.Fatalf("Completed failed: %v", err)
	}
	if done {
		t.Fatal("failed clip should not count as completed")
	}

	if err := store.RecordSuccess(ctx, "/clips/a.wav", "原神_钟离", "happy", "/out/p.pt"); err != nil {
		t.Fatalf("RecordSuccess failed: %v", err)
	}

	jobs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected a single upserted row, got %d", len(jobs))
	}
	job := jobs[0]
	if job.Status != ledger.StatusCompleted {
		t.Fatalf("unexpected status: %q", job.Status)
	}
	if job.OutputPath != "/out/p.pt" {
		t.Fatalf("unexpected output path: %q", job.OutputPath)
	}
	if job.ErrorMessage != "" {
		t.Fatalf("expected cleared error message, got %q", job.ErrorMessage)
	}
	if job.ID == "" {
		t.Fatal("expected generated job id")
	}
}

func TestListOrdersByUpdate(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, path := range []string{"/clips/a.wav", "/clips/b.wav"} {
		if err := store.RecordSuccess(ctx, path, "v", "neutral", "/out/x.pt"); err != nil {
			t.Fatalf("RecordSuccess failed: %v", err)
		}
	}

	jobs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.db")

	store, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctx := context.Background()
	if err := store.RecordSuccess(ctx, "/clips/a.wav", "v", "sad", "/out/x.pt"); err != nil {
		t.Fatalf("RecordSuccess failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	done, err := reopened.Completed(ctx, "/clips/a.wav")
	if err != nil {
		t.Fatalf("Completed failed: %v", err)
	}
	if !done {
		t.Fatal("expected persisted completion across reopen")
	}
}

package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mason/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	runs := []history.Record{
		{
			ID:         "run-a",
			InputPath:  "/data/one",
			Kind:       "experiment",
			Tracks:     "1,2",
			OutputRoot: "/out/one",
			Success:    true,
			StartedAt:  base,
			FinishedAt: base.Add(time.Minute),
		},
		{
			ID:           "run-b",
			InputPath:    "/data/two",
			Kind:         "eset",
			Tracks:       "all",
			OutputRoot:   "/out/two",
			FailedStage:  "analysis",
			ErrorMessage: "matlab exited with status 1",
			StartedAt:    base.Add(time.Hour),
			FinishedAt:   base.Add(time.Hour + time.Minute),
		},
	}
	for _, run := range runs {
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("record %s: %v", run.ID, err)
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].ID != "run-b" || recent[1].ID != "run-a" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}
	if recent[0].Success || !recent[1].Success {
		t.Fatal("success flags not preserved")
	}
	if recent[0].FailedStage != "analysis" {
		t.Fatalf("expected failed stage analysis, got %q", recent[0].FailedStage)
	}
	if !recent[1].StartedAt.Equal(base) {
		t.Fatalf("started_at not preserved: %v", recent[1].StartedAt)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		record := history.Record{
			ID:         "run-" + string(rune('a'+i)),
			InputPath:  "/data",
			Kind:       "experiment",
			OutputRoot: "/out",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
		}
		if err := store.RecordRun(ctx, record); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
}

func TestRecordRunRequiresID(t *testing.T) {
	store := openStore(t)
	if err := store.RecordRun(context.Background(), history.Record{}); err == nil {
		t.Fatal("expected error for record without id")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	first, err := history.Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := history.Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()
	if second.Path() != path {
		t.Fatalf("unexpected path %s", second.Path())
	}
}

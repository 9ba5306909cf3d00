package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"opencrms/engine/pkg/integration"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, slot, outcome string, startedAt time.Time) integration.CallRecord {
	return integration.CallRecord{
		RequestID:  id,
		Slot:       slot,
		Method:     "GET",
		Path:       "/lookup",
		StatusCode: 200,
		Outcome:    outcome,
		Duration:   120 * time.Millisecond,
		StartedAt:  startedAt,
	}
}

func TestOpen_RejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path, got nil")
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := store.Record(ctx, record("req-1", "nationalIdRegistry", "success", base)); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if err := store.Record(ctx, record("req-2", "courtSystem", "error", base.Add(time.Minute))); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Most recent first.
	if records[0].RequestID != "req-2" || records[1].RequestID != "req-1" {
		t.Errorf("unexpected order: %q, %q", records[0].RequestID, records[1].RequestID)
	}
	if records[1].Slot != "nationalIdRegistry" || records[1].Outcome != "success" {
		t.Errorf("round-trip mismatch: %+v", records[1])
	}
	if records[1].Duration != 120*time.Millisecond {
		t.Errorf("unexpected duration %v", records[1].Duration)
	}
}

func TestRecent_AppliesLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 5; i++ {
		rec := record("req-"+string(rune('a'+i)), "nationalIdRegistry", "success", base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now().Add(-time.Minute)
	if err := store.Record(ctx, record("req-old", "courtSystem", "success", old)); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if err := store.Record(ctx, record("req-new", "courtSystem", "success", fresh)); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	deleted, err := store.Prune(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted record, got %d", deleted)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 1 || records[0].RequestID != "req-new" {
		t.Errorf("unexpected surviving records: %+v", records)
	}
}

func TestClose_Idempotent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("first Close returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
}

package storage

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/gatecloud/internal/registry"
)

func TestStoreSaveRunAndLookup(t *testing.T) {
	store := openTestStore(t)

	rec := registry.RunRecord{
		Level:     2,
		Seed:      42,
		Score:     350,
		TargetMet: true,
		Labels:    []string{"|1⟩", "|+⟩"},
		Dustbin:   3,
		Snapshot:  []byte{0x81, 0xa1, 0x61, 0x01},
	}

	id, err := store.SaveRun("gatecloud_pinball", rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-uuid ID %q: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	if got.GameID != "gatecloud_pinball" || got.Level != 2 || got.Seed != 42 || got.Score != 350 {
		t.Errorf("unexpected run: %+v", got)
	}
	if !got.TargetMet {
		t.Error("TargetMet should round-trip")
	}
	if len(got.Labels) != 2 || got.Labels[0] != "|1⟩" || got.Labels[1] != "|+⟩" {
		t.Errorf("Labels = %v, expected [|1⟩ |+⟩]", got.Labels)
	}
	if got.Dustbin != 3 {
		t.Errorf("Dustbin = %d, expected 3", got.Dustbin)
	}
	if !bytes.Equal(got.Snapshot, rec.Snapshot) {
		t.Errorf("Snapshot = %x, expected %x", got.Snapshot, rec.Snapshot)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing run, got %+v", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		if _, err := store.SaveRun("gatecloud", registry.RunRecord{Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("gatecloud_pinball", registry.RunRecord{Score: 99})

	runs, err := store.RecentRuns("gatecloud", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].Score != 3 || runs[1].Score != 2 || runs[2].Score != 1 {
		t.Errorf("Runs not newest first: %d %d %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].Labels != nil {
		t.Errorf("Empty labels should scan as nil, got %v", runs[0].Labels)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs across games, got %d", len(all))
	}
	if all[0].GameID != "gatecloud_pinball" {
		t.Errorf("Expected pinball run first, got %s", all[0].GameID)
	}
}

func TestStoreClearRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("gatecloud", registry.RunRecord{TargetMet: true})
	store.SaveRun("gatecloud", registry.RunRecord{})
	store.SaveRun("gatecloud_pinball", registry.RunRecord{TargetMet: true})

	stats, err := store.GetGameStats("gatecloud")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.TargetsMet != 1 {
		t.Errorf("Expected 2 runs / 1 met, got %d / %d", stats.Runs, stats.TargetsMet)
	}

	if err := store.ClearRuns("gatecloud"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("gatecloud", 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	other, _ := store.RecentRuns("gatecloud_pinball", 10)
	if len(other) != 1 {
		t.Error("Clearing one game should not touch the other")
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sessions := []Session{
		{SkinID: "blob", Duration: 120, Jumps: 4, Bounces: 2, DistancePx: 1500},
		{SkinID: "cat", Duration: 60, Jumps: 1, Bounces: 0, DistancePx: 300},
		{SkinID: "blob", Duration: 30, Jumps: 2, Bounces: 1, DistancePx: 700},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recent))
	}

	// Newest first: same-second inserts fall back to descending IDs
	if recent[0].SkinID != "blob" || recent[0].Jumps != 2 {
		t.Errorf("Expected newest session first, got %+v", recent[0])
	}
	if recent[2].Duration != 120 {
		t.Errorf("Expected oldest session last, got %+v", recent[2])
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{SkinID: "blob", Duration: (i + 1) * 10})
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(recent))
	}
}

func TestStoreLifetimeTotals(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database aggregates to zero
	totals, err := store.LifetimeTotals()
	if err != nil {
		t.Fatalf("LifetimeTotals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.Jumps != 0 {
		t.Errorf("Empty totals = %+v, expected zeros", totals)
	}

	store.SaveSession(Session{SkinID: "blob", Duration: 100, Jumps: 5, Bounces: 3, DistancePx: 1000})
	store.SaveSession(Session{SkinID: "cat", Duration: 50, Jumps: 2, Bounces: 1, DistancePx: 500})

	totals, err = store.LifetimeTotals()
	if err != nil {
		t.Fatalf("LifetimeTotals() failed: %v", err)
	}

	if totals.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", totals.Sessions)
	}
	if totals.Seconds != 150 {
		t.Errorf("Seconds = %d, expected 150", totals.Seconds)
	}
	if totals.Jumps != 7 {
		t.Errorf("Jumps = %d, expected 7", totals.Jumps)
	}
	if totals.Bounces != 4 {
		t.Errorf("Bounces = %d, expected 4", totals.Bounces)
	}
	if totals.DistancePx != 1500 {
		t.Errorf("DistancePx = %v, expected 1500", totals.DistancePx)
	}
}

func TestStoreClearSessions(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSession(Session{SkinID: "blob", Duration: 10})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(recent))
	}
}

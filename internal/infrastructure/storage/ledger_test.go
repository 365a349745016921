package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLedger(dir)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	first := RunRecord{
		Timestamp: 1756700000,
		Seed:      42,
		Room:      5,
		Banked:    370,
		Fragments: 37,
		Outcome:   OutcomeCashOut,
		Username:  "gecko",
	}
	second := RunRecord{
		Timestamp: 1756700100,
		Seed:      43,
		Room:      2,
		Banked:    10,
		Fragments: 1,
		Outcome:   OutcomeDeath,
		Username:  "другой-игрок",
	}

	if err := l.Append(first); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if err := l.Append(second); err != nil {
		t.Fatalf("Append second: %v", err)
	}

	records, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0] != first {
		t.Errorf("First record mismatch: %+v", records[0])
	}
	if records[1] != second {
		t.Errorf("Second record mismatch: %+v", records[1])
	}
}

func TestLedgerEmpty(t *testing.T) {
	l, err := NewLedger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	records, err := l.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestLedgerRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "runs.ggrl"), []byte("not a ledger at all"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := NewLedger(dir)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	if _, err := l.Load(); err == nil {
		t.Error("Expected error for file with wrong magic")
	}
}

package draft

import (
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "draft.json"))
}

func TestStore_LoadWithoutDraft(t *testing.T) {
	store := testStore(t)

	if store.Exists() {
		t.Error("Expected no draft before Save")
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("Expected ErrNoDraft, got %v", err)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)

	d := &Draft{
		Date:        "2025-03-10",
		Shift:       "Day",
		Engineer:    "Chris McGhee",
		CarriedOver: 1,
		Reactives: []*Reactive{
			{
				Asset:           "Conveyor B3",
				TimeCalled:      "08:00",
				TimeBack:        "08:45",
				Fault:           "Belt tracking",
				Engineers:       2,
				DowntimeMinutes: 45,
				Status:          "Complete",
			},
		},
		Spares: []*Spare{
			{PartNumber: "ART-100", Quantity: 2, Decision: "Replenish"},
		},
	}
	if err := store.Save(d); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !store.Exists() {
		t.Error("Expected draft to exist after Save")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Engineer != "Chris McGhee" || loaded.Shift != "Day" {
		t.Errorf("Header round trip failed: %+v", loaded)
	}
	if len(loaded.Reactives) != 1 || loaded.Reactives[0].DowntimeMinutes != 45 {
		t.Errorf("Reactive round trip failed: %+v", loaded.Reactives)
	}
	if loaded.CarriedOver != 1 {
		t.Errorf("Expected carried-over count 1, got %d", loaded.CarriedOver)
	}
	if len(loaded.Spares) != 1 || loaded.Spares[0].PartNumber != "ART-100" {
		t.Errorf("Spare round trip failed: %+v", loaded.Spares)
	}
}

func TestStore_Discard(t *testing.T) {
	store := testStore(t)

	if err := store.Save(&Draft{Date: "2025-03-10", Shift: "Day", Engineer: "Chris McGhee"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if store.Exists() {
		t.Error("Expected draft gone after Discard")
	}

	// Discarding again is a no-op.
	if err := store.Discard(); err != nil {
		t.Errorf("Second Discard failed: %v", err)
	}
}

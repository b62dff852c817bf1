package activity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshotFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write snapshot file: %v", err)
	}
	return path
}

func TestFileSource_GetData(t *testing.T) {
	source := NewFileSource(writeSnapshotFile(t, validSnapshot), 0, 0)

	snap, err := source.GetData(nil, nil)
	if err != nil {
		t.Fatalf("GetData() failed: %v", err)
	}
	if len(snap.Activity) != 2 {
		t.Errorf("Activity days = %d, want 2", len(snap.Activity))
	}
	if snap.Stats[StatDailyAvg].Value != 40 {
		t.Errorf("daily average = %v, want 40", snap.Stats[StatDailyAvg].Value)
	}
}

func TestFileSource_Missing(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.json"), 0, 0)

	if _, err := source.GetData(nil, nil); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("GetData() error = %v, want ErrNoSnapshot", err)
	}
}

func TestFileSource_Corrupt(t *testing.T) {
	source := NewFileSource(writeSnapshotFile(t, "{nope"), 0, 0)

	if _, err := source.GetData(nil, nil); err == nil {
		t.Fatalf("GetData() should fail on a corrupt snapshot")
	}
}

func TestFileSource_CallersGetIndependentCopies(t *testing.T) {
	source := NewFileSource(writeSnapshotFile(t, validSnapshot), 0, 0)

	first, err := source.GetData(nil, nil)
	if err != nil {
		t.Fatalf("first GetData() failed: %v", err)
	}
	first.Activity[1735689600] = 999

	// The second call is served from the cache and must not see the edit.
	second, err := source.GetData(nil, nil)
	if err != nil {
		t.Fatalf("second GetData() failed: %v", err)
	}
	if second.Activity[1735689600] != 12 {
		t.Errorf("cached snapshot was mutated: got %v, want 12", second.Activity[1735689600])
	}
}

func TestFileSource_DefaultLimitsApply(t *testing.T) {
	// validSnapshot has one day three days back and one a day ahead.
	source := NewFileSource(writeSnapshotFile(t, validSnapshot), 1, 1)

	snap, err := source.GetData(nil, nil)
	if err != nil {
		t.Fatalf("GetData() failed: %v", err)
	}
	if len(snap.Activity) != 1 {
		t.Errorf("Activity days = %d, want 1 (history beyond the default limit trimmed)", len(snap.Activity))
	}
	if _, ok := snap.Activity[1736035200]; !ok {
		t.Errorf("forecast day within the limit should be kept")
	}
}

func TestFileSource_ExplicitLimitsOverrideDefaults(t *testing.T) {
	source := NewFileSource(writeSnapshotFile(t, validSnapshot), 1, 1)

	snap, err := source.GetData(limit(0), limit(0))
	if err != nil {
		t.Fatalf("GetData() failed: %v", err)
	}
	if len(snap.Activity) != 2 {
		t.Errorf("Activity days = %d, want 2 (explicit zero means unlimited)", len(snap.Activity))
	}
}

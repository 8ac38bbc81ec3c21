package deviceid

import (
	"os"
	"path/filepath"
	"testing"
)

// TestStoreLoadMissing verifies a missing file reads back as empty, not as
// an error.
func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "device_id.txt"))

	value, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error for missing file: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for missing file, got %q", value)
	}
}

// TestStoreSaveLoad verifies round-tripping and single-line file format.
func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device_id.txt")
	store := NewStore(path)

	if err := store.Save("4C4C4544-0042"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(raw) != "4C4C4544-0042\n" {
		t.Errorf("expected single line with trailing newline, got %q", string(raw))
	}

	value, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if value != "4C4C4544-0042" {
		t.Errorf("expected %q, got %q", "4C4C4544-0042", value)
	}
}

// TestStoreSaveOverwrites verifies overwrite semantics for an existing file.
func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "device_id.txt"))

	if err := store.Save("first"); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.Save("second"); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	value, _ := store.Load()
	if value != "second" {
		t.Errorf("expected overwritten value %q, got %q", "second", value)
	}
}

// TestStoreRemove verifies removal, including removing an absent file.
func TestStoreRemove(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "device_id.txt"))

	// Removing a file that never existed is not an error.
	if err := store.Remove(); err != nil {
		t.Fatalf("remove of absent file failed: %v", err)
	}

	if err := store.Save("value"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	value, err := store.Load()
	if err != nil {
		t.Fatalf("load after remove failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value after remove, got %q", value)
	}
}

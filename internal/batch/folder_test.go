package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSortFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"10_b.jpg", "2_a.jpg", "1_x.jpg", "notes.txt", "segmen_result.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "3_subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := SortFolder(dir)
	if err != nil {
		t.Fatalf("SortFolder failed: %v", err)
	}

	// Numeric order, not lexical; non-numeric names and directories skipped.
	want := []string{"1_x.jpg", "2_a.jpg", "10_b.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortFolderMissingDir(t *testing.T) {
	if _, err := SortFolder(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing folder")
	}
}

package disk_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"multimodal-chat/internal/chat/repository/disk"
)

func TestAssetStore(t *testing.T) {
	t.Run("Save PNG", func(t *testing.T) {
		store, err := disk.NewAssetStore(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		url, err := store.Save("png", []byte{0x89, 0x50, 0x4e, 0x47})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(url, disk.URLPrefix+"/") {
			t.Errorf("expected url under %s, got %q", disk.URLPrefix, url)
		}
		if !strings.HasSuffix(url, ".png") {
			t.Errorf("expected .png extension, got %q", url)
		}

		name := strings.TrimPrefix(url, disk.URLPrefix+"/")
		data, err := os.ReadFile(filepath.Join(store.Dir(), name))
		if err != nil {
			t.Fatalf("asset file not written: %v", err)
		}
		if len(data) != 4 {
			t.Errorf("expected 4 bytes on disk, got %d", len(data))
		}
	})

	t.Run("Unique Filenames", func(t *testing.T) {
		store, err := disk.NewAssetStore(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, _ := store.Save("mp4", []byte("a"))
		second, _ := store.Save("mp4", []byte("b"))
		if first == second {
			t.Errorf("expected unique filenames, both were %q", first)
		}
	})

	t.Run("Creates Output Dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "outputs")
		if _, err := disk.NewAssetStore(dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("expected output dir to exist: %v", err)
		}
	})
}

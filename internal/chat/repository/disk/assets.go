package disk

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which saved assets are served.
const URLPrefix = "/outputs"

// AssetStore implements repository.Assets on the local filesystem.
type AssetStore struct {
	dir string
}

// NewAssetStore creates the output directory if needed and returns the store.
func NewAssetStore(dir string) (*AssetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &AssetStore{dir: dir}, nil
}

// Dir returns the directory assets are written to.
func (s *AssetStore) Dir() string {
	return s.dir
}

// Save writes data under a fresh unique filename and returns its URL path.
func (s *AssetStore) Save(ext string, data []byte) (string, error) {
	id := uuid.New()
	name := fmt.Sprintf("%s.%s", hex.EncodeToString(id[:]), ext)

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write asset %s: %w", name, err)
	}

	return URLPrefix + "/" + name, nil
}

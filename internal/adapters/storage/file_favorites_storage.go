// Package storage holds the file and redis favorites backends
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const favoritesFileMode = 0o644

// FileFavoritesStorage keeps favorites as a JSON array in a flat file.
// A missing or malformed file loads as an empty list; any other read failure
// is returned so health checks can see it.
type FileFavoritesStorage struct {
	path   string
	logger ports.Logger
}

func NewFileFavoritesStorage(path string, logger ports.Logger) *FileFavoritesStorage {
	return &FileFavoritesStorage{path: path, logger: logger}
}

func (s *FileFavoritesStorage) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.NewDatabaseError("failed to read favorites file", err)
	}

	var cities []string
	if err := json.Unmarshal(data, &cities); err != nil {
		s.logger.Warn("Favorites file is malformed, starting empty", ports.F("path", s.path), ports.F("error", err))
		return []string{}, nil
	}
	if cities == nil {
		return []string{}, nil
	}
	return cities, nil
}

// Save writes the list to a temp file in the same directory and renames it
// over the target, so readers see either the old or the new list.
func (s *FileFavoritesStorage) Save(ctx context.Context, cities []string) error {
	if cities == nil {
		cities = []string{}
	}

	data, err := json.MarshalIndent(cities, "", "  ")
	if err != nil {
		return errors.NewDatabaseError("failed to encode favorites", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.NewDatabaseError("failed to create favorites temp file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.NewDatabaseError("failed to write favorites", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewDatabaseError("failed to write favorites", err)
	}
	if err := os.Chmod(tmpName, favoritesFileMode); err != nil {
		return errors.NewDatabaseError("failed to set favorites file mode", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.NewDatabaseError("failed to replace favorites file", err)
	}
	return nil
}

func (s *FileFavoritesStorage) GetStorageName() string {
	return "file"
}

func (s *FileFavoritesStorage) Path() string {
	return s.path
}

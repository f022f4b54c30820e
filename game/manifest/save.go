package manifest

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SaveToDisk serializes the manifest and writes it to path, creating
// parent directories as needed.
func SaveToDisk(m Versioned, path string) error {
	data, err := Serialize(m)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing manifest to %s", path)
	}
	return nil
}

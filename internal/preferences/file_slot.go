package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot stores each key as {basePath}/{key}.json.
type FileSlot struct {
	basePath string
}

// NewFileSlot constructs a filesystem-backed slot rooted at basePath.
func NewFileSlot(basePath string) *FileSlot {
	return &FileSlot{basePath: basePath}
}

// Get reads the value for key. A missing file is reported as absent, not as an error.
func (s *FileSlot) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes value through a temp file and rename so readers never see a partial record.
func (s *FileSlot) Set(key, value string) error {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.basePath, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *FileSlot) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

package slot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

type fileSlotConfig struct {
	dir      string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// FileSlotOption configures a FileSlot.
type FileSlotOption func(*fileSlotConfig)

func WithFilePermissions(perm os.FileMode) FileSlotOption {
	return func(c *fileSlotConfig) {
		c.filePerm = perm
	}
}

func WithDirPermissions(perm os.FileMode) FileSlotOption {
	return func(c *fileSlotConfig) {
		c.dirPerm = perm
	}
}

// FileSlot keeps one file per key under a directory. Writes go to a
// temporary file first and are renamed into place.
type FileSlot struct {
	config fileSlotConfig
}

func NewFileSlot(dir string, opts ...FileSlotOption) *FileSlot {
	cfg := fileSlotConfig{
		dir:      dir,
		dirPerm:  0o755,
		filePerm: 0o600,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileSlot{config: cfg}
}

func (s *FileSlot) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("slot: read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *FileSlot) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(s.config.dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("slot: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.config.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("slot: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("slot: write %s: %w", key, err)
	}
	if err := tmp.Chmod(s.config.filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("slot: chmod %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("slot: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("slot: rename %s: %w", key, err)
	}
	return nil
}

func (s *FileSlot) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("slot: delete %s: %w", key, err)
	}
	return nil
}

// Dir returns the directory backing the slot.
func (s *FileSlot) Dir() string {
	return s.config.dir
}

func (s *FileSlot) path(key string) string {
	return filepath.Join(s.config.dir, url.PathEscape(key)+".json")
}

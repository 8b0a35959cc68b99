package memory

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CustomDir is created next to the store for user-authored material.
const CustomDir = "custom_memories"

// Load reads the store at path.
// A missing or empty file yields an empty store. A file that is not a valid
// store document yields a *ParseError and is left untouched.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("memory store not found, starting empty", "path", path)
			return NewStore(), nil
		}
		return nil, errors.Wrap(err, "reading memory store")
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return NewStore(), nil
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if s.Conversations == nil {
		s.Conversations = map[string]json.RawMessage{}
	}
	if s.CustomMemories == nil {
		s.CustomMemories = map[string]CustomMemory{}
	}

	slog.Debug("loaded memory store", "path", path,
		"conversations", len(s.Conversations), "custom", len(s.CustomMemories))
	return &s, nil
}

// Save writes the store to path, replacing any existing file.
// The parent directory and its custom_memories directory are created if
// missing. The document is written to a temp file and renamed into place.
func Save(path string, s *Store) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(filepath.Join(dir, CustomDir), 0755); err != nil {
		return errors.Wrap(err, "creating memory directory")
	}

	if s.Conversations == nil {
		s.Conversations = map[string]json.RawMessage{}
	}
	if s.CustomMemories == nil {
		s.CustomMemories = map[string]CustomMemory{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encoding memory store")
	}
	data := buf.Bytes()

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return errors.Wrap(err, "writing memory store")
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return errors.Wrap(err, "setting file mode")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	success = true
	slog.Debug("saved memory store", "path", path,
		"conversations", len(s.Conversations), "custom", len(s.CustomMemories))
	return nil
}

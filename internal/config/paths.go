package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultMemoryDirName is the memory directory under the user's home.
	DefaultMemoryDirName = ".claude_memory"
	// MemoryFile is the store file name inside the memory directory.
	MemoryFile = "memory.json"
)

// DefaultMemoryDir returns ~/.claude_memory.
func DefaultMemoryDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: locating home directory: %v", ErrInvalidConfig, err)
	}
	return filepath.Join(home, DefaultMemoryDirName), nil
}

// ResolveMemoryDir picks the memory directory.
// Precedence: override (the --dir flag), then memory_dir from the global
// config, then ~/.claude_memory.
func ResolveMemoryDir(override string) (string, error) {
	if override != "" {
		return filepath.Abs(ExpandPath(override))
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	if cfg.MemoryDir != "" {
		return cfg.MemoryDir, nil
	}

	return DefaultMemoryDir()
}

// MemoryPath returns the path to memory.json inside dir.
func MemoryPath(dir string) string {
	return filepath.Join(dir, MemoryFile)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

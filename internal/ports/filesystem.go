package ports

import (
	"os"
	"path/filepath"
	"strings"
)

// FileSystem provides the file operations rigup needs for dotfile edits and
// the run log. Paths are passed through as-is; call ExpandPath first when a
// path may start with "~/".
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	AppendFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	IsDir(path string) bool
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
}

// ExpandPath expands a leading ~ to the invoking user's home directory.
// Unexpandable paths are returned unchanged.
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

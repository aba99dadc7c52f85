// Package filesystem provides the real file system adapter.
package filesystem

import (
	"os"

	"github.com/rigup/rigup/internal/ports"
)

// RealFileSystem implements ports.FileSystem against the host file system.
type RealFileSystem struct{}

// NewRealFileSystem creates a RealFileSystem.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// ReadFile reads the file's full contents.
func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data, replacing any existing file.
func (fs *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// AppendFile appends data, creating the file if it does not exist.
func (fs *RealFileSystem) AppendFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Exists reports whether the path exists.
func (fs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the path is an existing directory.
func (fs *RealFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MkdirAll creates the directory and any missing parents.
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove deletes the named file or empty directory.
func (fs *RealFileSystem) Remove(path string) error {
	return os.Remove(path)
}

var _ ports.FileSystem = (*RealFileSystem)(nil)

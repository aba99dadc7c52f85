package mocks

import (
	"fmt"
	"os"
	"sync"

	"github.com/rigup/rigup/internal/ports"
)

// FileSystem is an in-memory test double for ports.FileSystem.
type FileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// ReadErr, when set, is returned by every ReadFile call.
	ReadErr error
	// WriteErr, when set, is returned by every WriteFile/AppendFile call.
	WriteErr error
}

// NewFileSystem creates an empty in-memory file system.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Seed places a file without going through the interface.
func (m *FileSystem) Seed(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = []byte(content)
}

// Content returns a file's current content, or "" when absent.
func (m *FileSystem) Content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.files[path])
}

// ReadFile returns the file's content.
func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile replaces the file's content.
func (m *FileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path] = stored
	return nil
}

// AppendFile appends to the file, creating it when missing.
func (m *FileSystem) AppendFile(path string, data []byte, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path] = append(m.files[path], data...)
	return nil
}

// Exists reports whether the path was seeded or written.
func (m *FileSystem) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path]; ok {
		return true
	}
	return m.dirs[path]
}

// IsDir reports whether the path was created as a directory.
func (m *FileSystem) IsDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[path]
}

// MkdirAll records the directory.
func (m *FileSystem) MkdirAll(path string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

// Remove deletes the file or directory.
func (m *FileSystem) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	if m.dirs[path] {
		delete(m.dirs, path)
		return nil
	}
	return fmt.Errorf("remove %s: %w", path, os.ErrNotExist)
}

var _ ports.FileSystem = (*FileSystem)(nil)

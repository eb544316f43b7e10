package filesystem

import (
	"fmt"
	"io"
	"os"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FilesystemError reports a directory that cannot be created or used
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot use directory %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Manager handles file system operations
type Manager struct{}

// NewManager creates a new filesystem manager
func NewManager() *Manager {
	return &Manager{}
}

// EnsureDirectory creates a directory and any missing parents. An existing
// directory is left alone; an existing non-directory is an error.
func (f *Manager) EnsureDirectory(path string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return &FilesystemError{Path: path, Err: fmt.Errorf("path exists and is not a directory")}
	}
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return &FilesystemError{Path: path, Err: err}
	}
	return nil
}

// DirectoryExists checks if a directory exists
func (f *Manager) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateFile opens path for writing, truncating anything already there
func (f *Manager) CreateFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
}

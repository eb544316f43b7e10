package downloader

import (
	"context"
	"fmt"
	"io"
)

// Fetcher defines the interface for saving a single URL to disk
type Fetcher interface {
	// DownloadOne fetches url into destination. Failures are reported in
	// the Result, never returned or panicked.
	DownloadOne(ctx context.Context, url, destination string) Result
}

// FileCreator opens destination files for writing
type FileCreator interface {
	CreateFile(path string) (io.WriteCloser, error)
}

// Result represents the outcome of one download
type Result struct {
	Path    string
	Success bool
	Error   *DownloadError
}

// ErrorKind classifies a failed download for the log line
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindHTTPStatus ErrorKind = "http-status"
	KindWrite      ErrorKind = "write"
)

// DownloadError describes why a single file could not be saved
type DownloadError struct {
	Filename string
	Kind     ErrorKind
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

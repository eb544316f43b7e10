package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
)

// Downloader streams files over HTTP
type Downloader struct {
	httpClient *http.Client
	files      FileCreator
	chunkSize  int
}

// NewDownloader creates a new HTTP downloader. A nil client uses a bare
// http.Client with no timeout.
func NewDownloader(httpClient *http.Client, files FileCreator, chunkSize int) *Downloader {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if chunkSize <= 0 {
		chunkSize = 32 * 1024
	}
	return &Downloader{
		httpClient: httpClient,
		files:      files,
		chunkSize:  chunkSize,
	}
}

// DownloadOne fetches url and writes the body to destination, overwriting
// any previous file. Nothing is created unless the server answers 2xx.
func (d *Downloader) DownloadOne(ctx context.Context, url, destination string) Result {
	result := Result{Path: destination}
	if err := d.download(ctx, url, destination); err != nil {
		result.Error = err
		return result
	}
	result.Success = true
	return result
}

func (d *Downloader) download(ctx context.Context, url, destination string) *DownloadError {
	fail := func(kind ErrorKind, err error) *DownloadError {
		return &DownloadError{Filename: filepath.Base(destination), Kind: kind, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fail(KindNetwork, fmt.Errorf("failed to download: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(KindHTTPStatus, fmt.Errorf("unexpected status %s for url %s", resp.Status, url))
	}

	out, err := d.files.CreateFile(destination)
	if err != nil {
		return fail(KindWrite, fmt.Errorf("failed to create file: %w", err))
	}

	_, copyErr := io.CopyBuffer(chunkWriter{out}, resp.Body, make([]byte, d.chunkSize))
	closeErr := out.Close()
	if copyErr != nil {
		return fail(classifyCopyError(copyErr), fmt.Errorf("failed to save file: %w", copyErr))
	}
	if closeErr != nil {
		return fail(KindWrite, fmt.Errorf("failed to close file: %w", closeErr))
	}
	return nil
}

// chunkWriter hides ReadFrom so io.CopyBuffer writes in chunkSize pieces
type chunkWriter struct {
	io.Writer
}

// writeError marks errors that came from the destination rather than the body
type writeError struct {
	err error
}

func (e writeError) Error() string { return e.err.Error() }
func (e writeError) Unwrap() error { return e.err }

func (w chunkWriter) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	if err != nil {
		return n, writeError{err}
	}
	return n, nil
}

func classifyCopyError(err error) ErrorKind {
	var we writeError
	if errors.As(err, &we) {
		return KindWrite
	}
	return KindNetwork
}

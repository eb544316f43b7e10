package config

import "time"

// Output layout. Nothing here is read from disk or the environment; the
// fetcher always behaves the same way.
const (
	OutputDir     = "tanpura_files"
	FileExtension = ".wav"
)

// ChunkSize is the buffer used when streaming a response body to disk
const ChunkSize = 8192

// Config holds the settings main wires into the runner
type Config struct {
	OutputDir string
	ChunkSize int
	// Timeout of zero means no client timeout, the same as a bare http.Client
	Timeout time.Duration
}

// Default returns the only configuration the fetcher runs with
func Default() Config {
	return Config{
		OutputDir: OutputDir,
		ChunkSize: ChunkSize,
	}
}

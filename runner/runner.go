// Package runner drives a full catalog download: one directory check, then
// every entry fetched in order, then a summary.
package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"tanpura-fetch/catalog"
	"tanpura-fetch/downloader"
)

// ErrAlreadyFinished is returned when Run is called on a finished runner
var ErrAlreadyFinished = errors.New("runner already finished")

// SetupError means the output directory could not be prepared and nothing
// was downloaded
type SetupError struct {
	Dir string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to prepare output directory %s: %v", e.Dir, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// DirectoryEnsurer creates the output directory
type DirectoryEnsurer interface {
	EnsureDirectory(path string) error
}

// Reporter receives progress as the run advances
type Reporter interface {
	Started(filename string)
	Finished(result downloader.Result)
	Summary(summary Summary)
}

// State is the lifecycle of a Runner
type State int

const (
	StateNotStarted State = iota
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Summary is the tally printed at the end of a run
type Summary struct {
	Attempted int
	Succeeded int
	OutputDir string
	Failures  []downloader.Result
}

// Runner fetches every catalog entry sequentially
type Runner struct {
	entries   []catalog.Entry
	fetcher   downloader.Fetcher
	dirs      DirectoryEnsurer
	reporter  Reporter
	outputDir string
	state     State
}

// New creates a runner over entries. A nil reporter discards progress.
func New(entries []catalog.Entry, fetcher downloader.Fetcher, dirs DirectoryEnsurer, reporter Reporter, outputDir string) *Runner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Runner{
		entries:   entries,
		fetcher:   fetcher,
		dirs:      dirs,
		reporter:  reporter,
		outputDir: outputDir,
	}
}

// State returns where the runner is in its lifecycle
func (r *Runner) State() State {
	return r.state
}

// Run ensures the output directory then attempts every entry once. Individual
// download failures are counted, not returned; the only error is a
// *SetupError, in which case no request was made.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.state == StateFinished {
		return Summary{}, ErrAlreadyFinished
	}

	if err := r.dirs.EnsureDirectory(r.outputDir); err != nil {
		return Summary{}, &SetupError{Dir: r.outputDir, Err: err}
	}

	summary := Summary{OutputDir: r.outputDir}
	for _, entry := range r.entries {
		filename := entry.Filename()
		r.reporter.Started(filename)

		result := r.fetcher.DownloadOne(ctx, entry.URL, filepath.Join(r.outputDir, filename))
		r.reporter.Finished(result)

		summary.Attempted++
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failures = append(summary.Failures, result)
		}
	}

	r.reporter.Summary(summary)
	r.state = StateFinished
	return summary, nil
}

type nopReporter struct{}

func (nopReporter) Started(string)             {}
func (nopReporter) Finished(downloader.Result) {}
func (nopReporter) Summary(Summary)            {}

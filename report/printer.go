// Package report prints download progress and the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"tanpura-fetch/downloader"
	"tanpura-fetch/runner"
)

const ruleWidth = 50

// Printer writes human-readable progress lines to an io.Writer
type Printer struct {
	out    io.Writer
	styles styles
	bar    progress.Model
}

// NewPrinter creates a printer for out. Colors are dropped automatically
// when out is not a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:    out,
		styles: newStyles(r),
		bar: progress.New(
			progress.WithSolidFill(string(Primary)),
			progress.WithWidth(ruleWidth),
			progress.WithoutPercentage(),
			progress.WithColorProfile(r.ColorProfile()),
		),
	}
}

// Started is called before a file is fetched
func (p *Printer) Started(filename string) {
	fmt.Fprintln(p.out, p.styles.progress.Render(fmt.Sprintf("Downloading %s...", filename)))
}

// Finished is called with the outcome of a single fetch
func (p *Printer) Finished(result downloader.Result) {
	name := filepath.Base(result.Path)
	if result.Success {
		fmt.Fprintln(p.out, p.styles.success.Render(fmt.Sprintf("✓ Successfully downloaded %s", name)))
		return
	}
	fmt.Fprintln(p.out, p.styles.failure.Render(fmt.Sprintf("✗ Error downloading %s: %s", name, failureText(result))))
}

// Summary prints the final tally
func (p *Printer) Summary(s runner.Summary) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, p.styles.header.Render("Download complete!"))
	fmt.Fprintf(p.out, "Successfully downloaded: %d/%d files\n", s.Succeeded, s.Attempted)
	fmt.Fprintf(p.out, "Files saved in: %s/\n", s.OutputDir)

	if s.Attempted > 0 {
		fmt.Fprintln(p.out, p.bar.ViewAs(float64(s.Succeeded)/float64(s.Attempted)))
	}

	if len(s.Failures) > 0 {
		fmt.Fprintln(p.out, p.styles.muted.Render("Failed files:"))
		if err := p.failureTable(s.Failures); err != nil {
			fmt.Fprintf(p.out, "(could not render failure table: %v)\n", err)
		}
	}

	fmt.Fprintln(p.out, rule)
}

func (p *Printer) failureTable(failures []downloader.Result) error {
	table := tablewriter.NewWriter(p.out)
	table.Header("File", "Kind", "Error")
	for _, f := range failures {
		kind := ""
		if f.Error != nil {
			kind = string(f.Error.Kind)
		}
		if err := table.Append([]string{filepath.Base(f.Path), kind, failureText(f)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func failureText(result downloader.Result) string {
	if result.Error == nil {
		return "unknown error"
	}
	if result.Error.Err != nil {
		return result.Error.Err.Error()
	}
	return result.Error.Error()
}

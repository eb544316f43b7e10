package report

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary    = lipgloss.Color("#00ff00") // Bright green
	Secondary  = lipgloss.Color("#00aa00") // Darker green
	Accent     = lipgloss.Color("#00ffaa") // Cyan-green
	ErrorColor = lipgloss.Color("#ff0000") // Red
)

// styles are bound to a renderer so colors follow the destination writer,
// not whatever os.Stdout happens to be
type styles struct {
	progress lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		progress: r.NewStyle().Foreground(Secondary),
		success:  r.NewStyle().Foreground(Primary),
		failure:  r.NewStyle().Foreground(ErrorColor).Bold(true),
		header:   r.NewStyle().Foreground(Accent).Bold(true),
		muted:    r.NewStyle().Foreground(Secondary).Faint(true),
	}
}

// ErrorStyle is used by main for fatal errors on stderr
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

// Package render formats generated summaries for terminal output.
// It supports a styled text panel, raw Markdown, and a JSON document.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format selects how a summary is written.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatMarkdown, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected text, markdown, or json)", s)
	}
}

// Summary is a generated summary plus the context it was produced in.
type Summary struct {
	// Title describes what was summarized, e.g. "Last 5 commits on main".
	Title string `json:"title"`

	// Provider is the backend that generated the summary.
	Provider string `json:"provider"`

	// Model is the model that generated the summary.
	Model string `json:"model"`

	// Text is the generated summary body.
	Text string `json:"summary"`
}

// Options configures the renderer.
type Options struct {
	// Format selects the output format. Defaults to FormatText.
	Format Format

	// Output is where to write output. Defaults to os.Stdout.
	Output io.Writer

	// ColorEnabled controls whether ANSI styling is used for text output.
	ColorEnabled bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		Output:       os.Stdout,
		ColorEnabled: true,
	}
}

// Renderer writes summaries in a configured format.
type Renderer struct {
	opts Options
}

// New creates a Renderer based on the options.
func New(opts Options) *Renderer {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Renderer{opts: opts}
}

// Render writes the summary in the renderer's format.
func (r *Renderer) Render(s *Summary) error {
	switch r.opts.Format {
	case FormatText:
		return r.renderText(s)
	case FormatMarkdown:
		return r.renderMarkdown(s)
	case FormatJSON:
		return r.renderJSON(s)
	default:
		return fmt.Errorf("invalid output format %q (expected text, markdown, or json)", r.opts.Format)
	}
}

func (r *Renderer) renderText(s *Summary) error {
	titleStyle := lipgloss.NewStyle().Bold(true)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	footerStyle := lipgloss.NewStyle().Faint(true)

	if r.opts.ColorEnabled {
		titleStyle = titleStyle.Foreground(lipgloss.Color("12"))
		panelStyle = panelStyle.BorderForeground(lipgloss.Color("8"))
	}

	body := titleStyle.Render(s.Title) + "\n\n" + strings.TrimSpace(s.Text)
	panel := panelStyle.Render(body)
	footer := footerStyle.Render(fmt.Sprintf("generated by %s (%s)", s.Provider, s.Model))

	_, err := fmt.Fprintf(r.opts.Output, "%s\n%s\n", panel, footer)
	return err
}

func (r *Renderer) renderMarkdown(s *Summary) error {
	_, err := fmt.Fprintf(r.opts.Output, "# %s\n\n%s\n", s.Title, strings.TrimSpace(s.Text))
	return err
}

func (r *Renderer) renderJSON(s *Summary) error {
	enc := json.NewEncoder(r.opts.Output)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

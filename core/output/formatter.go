// Package output provides output formatting interfaces.
// Formatters render gap reports and service resolutions for human and
// machine consumers.
package output

import (
	"io"

	"stack-advisor/core/matching"
	"stack-advisor/core/types"
	"stack-advisor/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderReport renders a gap analysis report
	RenderReport(w io.Writer, report *types.StackGapReport) error

	// RenderResolution renders a service resolution outcome
	RenderResolution(w io.Writer, serviceName string, resolution matching.Resolution) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}

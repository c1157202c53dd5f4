// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"stack-advisor/core/matching"
	"stack-advisor/core/types"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderReport renders a gap analysis report
func (f *JSONFormatter) RenderReport(w io.Writer, report *types.StackGapReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// resolutionEnvelope adds the caller-facing rendering of non-direct
// outcomes next to the raw resolution.
type resolutionEnvelope struct {
	Service    string              `json:"service"`
	Resolution matching.Resolution `json:"resolution"`
	Display    string              `json:"display,omitempty"`
}

// RenderResolution renders a service resolution outcome
func (f *JSONFormatter) RenderResolution(w io.Writer, serviceName string, resolution matching.Resolution) error {
	envelope := resolutionEnvelope{Service: serviceName, Resolution: resolution}
	if resolution.RequiresCustomImplementation() {
		envelope.Display = matching.CustomImplementationNotice
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

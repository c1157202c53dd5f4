// Package output - Terminal rendering
package output

import (
	"fmt"
	"io"
	"strings"

	"stack-advisor/core/matching"
	"stack-advisor/core/types"
)

// CLIFormatter renders human-readable terminal output
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderReport renders a gap analysis report
func (f *CLIFormatter) RenderReport(w io.Writer, report *types.StackGapReport) error {
	fmt.Fprintf(w, "Stack completeness: %d%%\n", report.CompletenessScore)

	if len(report.MissingCategories) == 0 {
		fmt.Fprintln(w, "No missing categories.")
	} else {
		fmt.Fprintf(w, "Missing categories: %s\n", strings.Join(report.MissingCategories, ", "))
	}

	if report.TeamSizeNote != "" {
		fmt.Fprintf(w, "\n%s\n", report.TeamSizeNote)
	}
	if report.IndustryNote != "" {
		fmt.Fprintf(w, "%s\n", report.IndustryNote)
	}

	for _, rec := range report.RecommendedAdditions {
		fmt.Fprintf(w, "\n[%s] %s\n", rec.Priority, rec.Category)
		fmt.Fprintf(w, "  %s\n", rec.Rationale)
		for i, tool := range rec.Tools {
			fmt.Fprintf(w, "  %d. %s (score %d/10) - %s\n", i+1, tool.Item.Name, tool.Score, tool.Item.Pricing)
		}
		fmt.Fprintf(w, "  Cost: %s | Training: %s | Maintenance: %s\n",
			rec.CostEstimate.Pricing, rec.CostEstimate.TrainingTime, rec.CostEstimate.MaintenanceEffort)
	}

	for _, gap := range report.ComplianceGaps {
		name := gap.FrameworkName
		if name == "" {
			name = gap.Framework
		}
		fmt.Fprintf(w, "\nCompliance: %s\n", name)
		if len(gap.MissingControls) == 0 {
			fmt.Fprintln(w, "  All required categories covered.")
		} else {
			fmt.Fprintf(w, "  Missing controls: %s\n", strings.Join(gap.MissingControls, ", "))
		}
		fmt.Fprintf(w, "  Estimated cost: $%s | Timeline: %s\n", gap.EstimatedCost.StringFixed(0), gap.ImplementationTimeline)
		for _, req := range gap.AuditRequirements {
			fmt.Fprintf(w, "  - %s\n", req)
		}
	}

	if len(report.PriorityActions) > 0 {
		fmt.Fprintln(w, "\nPriority actions:")
		for i, action := range report.PriorityActions {
			fmt.Fprintf(w, "  %d. Add %s tooling (%s)\n", i+1, action.Category, action.Tools[0].Item.Name)
		}
	}

	return nil
}

// RenderResolution renders a service resolution outcome. Both
// non-direct outcome kinds render as the custom-implementation notice.
func (f *CLIFormatter) RenderResolution(w io.Writer, serviceName string, resolution matching.Resolution) error {
	if resolution.RequiresCustomImplementation() {
		fmt.Fprintf(w, "%s: %s\n", serviceName, matching.CustomImplementationNotice)
		if resolution.Notes != "" {
			fmt.Fprintf(w, "  %s\n", resolution.Notes)
		}
		return nil
	}

	fmt.Fprintf(w, "%s: %s", serviceName, resolution.Product.Name)
	if resolution.Product.PopularityRank == 1 {
		// Star badge for the authorial top pick; unrelated to the
		// heuristic popularity score.
		fmt.Fprint(w, " *")
	}
	fmt.Fprintln(w)
	if resolution.Product.Pricing != "" {
		fmt.Fprintf(w, "  Pricing: %s\n", resolution.Product.Pricing)
	}
	for _, alt := range resolution.Alternatives {
		fmt.Fprintf(w, "  Alternative: %s (rank %d)\n", alt.Name, alt.EffectiveRank())
	}
	return nil
}

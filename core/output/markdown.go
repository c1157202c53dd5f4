// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"
	"strings"

	"stack-advisor/core/matching"
	"stack-advisor/core/types"
)

// MarkdownFormatter renders a markdown report suitable for decision
// records and PR comments.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// RenderReport renders a gap analysis report
func (f *MarkdownFormatter) RenderReport(w io.Writer, report *types.StackGapReport) error {
	fmt.Fprintln(w, "# Stack Gap Report")
	fmt.Fprintf(w, "\n**Completeness:** %d%%\n", report.CompletenessScore)

	if len(report.MissingCategories) > 0 {
		fmt.Fprintf(w, "\n**Missing categories:** %s\n", strings.Join(report.MissingCategories, ", "))
	}
	if report.TeamSizeNote != "" {
		fmt.Fprintf(w, "\n> %s\n", report.TeamSizeNote)
	}
	if report.IndustryNote != "" {
		fmt.Fprintf(w, "\n> %s\n", report.IndustryNote)
	}

	if len(report.RecommendedAdditions) > 0 {
		fmt.Fprintln(w, "\n## Recommendations")
		fmt.Fprintln(w, "\n| Category | Priority | Top Tool | Score | Pricing |")
		fmt.Fprintln(w, "|---|---|---|---|---|")
		for _, rec := range report.RecommendedAdditions {
			top := rec.Tools[0]
			fmt.Fprintf(w, "| %s | %s | %s | %d/10 | %s |\n",
				rec.Category, rec.Priority, top.Item.Name, top.Score, rec.CostEstimate.Pricing)
		}
	}

	if len(report.ComplianceGaps) > 0 {
		fmt.Fprintln(w, "\n## Compliance")
		for _, gap := range report.ComplianceGaps {
			name := gap.FrameworkName
			if name == "" {
				name = gap.Framework
			}
			fmt.Fprintf(w, "\n### %s\n", name)
			if len(gap.MissingControls) > 0 {
				fmt.Fprintf(w, "\nMissing controls: %s\n", strings.Join(gap.MissingControls, ", "))
			}
			fmt.Fprintf(w, "\nEstimated cost: $%s (timeline %s)\n", gap.EstimatedCost.StringFixed(0), gap.ImplementationTimeline)
		}
	}

	return nil
}

// RenderResolution renders a service resolution outcome as a vendor
// comparison row.
func (f *MarkdownFormatter) RenderResolution(w io.Writer, serviceName string, resolution matching.Resolution) error {
	fmt.Fprintln(w, "| Service | Product | Alternatives |")
	fmt.Fprintln(w, "|---|---|---|")

	if resolution.RequiresCustomImplementation() {
		fmt.Fprintf(w, "| %s | %s | - |\n", serviceName, matching.CustomImplementationNotice)
		if resolution.Notes != "" {
			fmt.Fprintf(w, "\n%s\n", resolution.Notes)
		}
		return nil
	}

	alts := make([]string, 0, len(resolution.Alternatives))
	for _, alt := range resolution.Alternatives {
		alts = append(alts, alt.Name)
	}
	altCell := strings.Join(alts, ", ")
	if altCell == "" {
		altCell = "-"
	}
	fmt.Fprintf(w, "| %s | %s | %s |\n", serviceName, resolution.Product.Name, altCell)
	return nil
}

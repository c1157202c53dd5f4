// Package gap - Rationale and advisory text composition
package gap

import (
	"fmt"
	"strings"

	"stack-advisor/core/types"
)

// Team-size buckets for rationale and advisory text
const (
	rationaleSmallTeamMax = 5
	rationaleLargeTeamMin = 25
)

// regulatedIndustries get an extra clause in rationale and an
// industry advisory in the report
var regulatedIndustries = map[string]bool{
	"fintech":    true,
	"healthcare": true,
}

// rationale composes the recommendation rationale: category
// description, a team-size clause, an industry clause for regulated
// industries, and a compliance clause when the category is mandated by
// any framework.
func rationale(cat types.StackCategory, ctx types.ProjectContext) string {
	var b strings.Builder
	b.WriteString(cat.Description)

	switch {
	case ctx.HasTeamSize() && ctx.TeamSize < rationaleSmallTeamMax:
		b.WriteString(" Small teams benefit from lightweight tooling that keeps essential processes in place.")
	case ctx.HasTeamSize() && ctx.TeamSize > rationaleLargeTeamMin:
		b.WriteString(" Larger teams rely on this category for coordination and quality.")
	default:
		b.WriteString(" For teams of your size, this category improves efficiency and reduces risks.")
	}

	if regulatedIndustries[ctx.Industry] {
		b.WriteString(fmt.Sprintf(" The %s industry faces regulatory requirements that make this category especially relevant.", ctx.Industry))
	}

	if len(cat.RequiredForCompliance) > 0 {
		b.WriteString(fmt.Sprintf(" Required for compliance with %s.", strings.Join(cat.RequiredForCompliance, ", ")))
	}

	return b.String()
}

// teamSizeNote is the report-level team-size advisory
func teamSizeNote(teamSize int) string {
	switch {
	case teamSize <= 0:
		return ""
	case teamSize < rationaleSmallTeamMax:
		return fmt.Sprintf("With a team of %d, prefer managed services and avoid tools that need dedicated operators.", teamSize)
	case teamSize > rationaleLargeTeamMin:
		return fmt.Sprintf("With a team of %d, invest in coordination: code owners, review policies, and shared dashboards.", teamSize)
	default:
		return fmt.Sprintf("A team of %d can adopt most tooling directly; standardize early to avoid later migrations.", teamSize)
	}
}

// industryNote is the report-level industry advisory
func industryNote(industry string) string {
	if !regulatedIndustries[industry] {
		return ""
	}
	return fmt.Sprintf("Projects in %s face heightened regulatory scrutiny; prioritize the security, monitoring, and documentation categories.", industry)
}

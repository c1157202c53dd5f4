// Package catalog - Built-in per-category tool catalogs
// Registration order is the stable tie-break order for recommendation
// ranking.
package catalog

import "stack-advisor/core/types"

// RegisterTools populates the catalog with the built-in tool catalogs.
func RegisterTools(c *Catalog) {
	// Code hosting
	c.RegisterTool("code-hosting", types.CatalogItem{
		ID:                       "github",
		Name:                     "GitHub",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelBeginner,
		Pricing:                  "Free for public repos, paid plans from $4/user/month",
		Features:                 []string{"pull requests", "actions", "issues", "projects", "packages", "code review"},
		BestFor:                  "Teams of any size, open source projects",
		ComplianceCertifications: []string{"SOC2"},
	})
	c.RegisterTool("code-hosting", types.CatalogItem{
		ID:                       "gitlab",
		Name:                     "GitLab",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelIntermediate,
		Pricing:                  "Free tier available, premium from $29/user/month",
		Features:                 []string{"merge requests", "built-in CI", "issue boards", "container registry", "pages", "security scanning"},
		BestFor:                  "Teams wanting an all-in-one DevOps platform",
		ComplianceCertifications: []string{"SOC2"},
	})
	c.RegisterTool("code-hosting", types.CatalogItem{
		ID:               "bitbucket",
		Name:             "Bitbucket",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelBeginner,
		Pricing:          "Free for small teams, standard from $3/user/month",
		Features:         []string{"pull requests", "pipelines", "Jira integration"},
		BestFor:          "Small teams in the Atlassian ecosystem",
	})

	// Dependency management
	c.RegisterTool("dependency-management", types.CatalogItem{
		ID:               "dependabot",
		Name:             "Dependabot",
		PlatformAffinity: "github",
		Complexity:       types.LevelBeginner,
		Pricing:          "Free with GitHub",
		Features:         []string{"automated update PRs", "security alerts", "version pinning"},
		BestFor:          "Teams hosting on GitHub",
	})
	c.RegisterTool("dependency-management", types.CatalogItem{
		ID:               "renovate",
		Name:             "Renovate",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free and open source",
		Features:         []string{"automated update PRs", "grouped updates", "custom schedules", "monorepo support", "changelog surfacing", "regex managers"},
		BestFor:          "Teams of any size wanting fine-grained control",
	})
	c.RegisterTool("dependency-management", types.CatalogItem{
		ID:                       "snyk",
		Name:                     "Snyk",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelIntermediate,
		Pricing:                  "Free tier, team plans from $25/month",
		Features:                 []string{"vulnerability scanning", "license compliance", "fix PRs", "container scanning"},
		BestFor:                  "Security-focused enterprise teams",
		ComplianceCertifications: []string{"SOC2"},
	})

	// CI/CD
	c.RegisterTool("ci-cd", types.CatalogItem{
		ID:               "github-actions",
		Name:             "GitHub Actions",
		PlatformAffinity: "github",
		Complexity:       types.LevelBeginner,
		Pricing:          "Free tier of 2000 minutes/month",
		Features:         []string{"workflow automation", "matrix builds", "marketplace actions", "self-hosted runners", "environments", "caching"},
		BestFor:          "Teams already hosting on GitHub",
	})
	c.RegisterTool("ci-cd", types.CatalogItem{
		ID:               "jenkins",
		Name:             "Jenkins",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelAdvanced,
		Pricing:          "Free and open source, self-hosted",
		Features:         []string{"pipelines as code", "plugin ecosystem", "distributed builds", "shared libraries"},
		BestFor:          "Enterprise teams with dedicated ops capacity",
	})
	c.RegisterTool("ci-cd", types.CatalogItem{
		ID:               "circleci",
		Name:             "CircleCI",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free tier, performance plans from $15/month",
		Features:         []string{"docker-first builds", "orbs", "parallelism", "ssh debugging"},
		BestFor:          "Teams of any size wanting hosted CI",
	})

	// Testing
	c.RegisterTool("testing", types.CatalogItem{
		ID:               "cypress",
		Name:             "Cypress",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free open source runner, cloud from $67/month",
		Features:         []string{"end-to-end testing", "time travel debugging", "component testing", "screenshots and videos"},
		BestFor:          "Frontend-heavy teams",
	})
	c.RegisterTool("testing", types.CatalogItem{
		ID:               "playwright",
		Name:             "Playwright",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free and open source",
		Features:         []string{"cross-browser testing", "auto-waiting", "trace viewer", "parallel execution", "API testing", "codegen"},
		BestFor:          "Teams of any size testing web applications",
	})

	// Documentation
	c.RegisterTool("documentation", types.CatalogItem{
		ID:                       "confluence",
		Name:                     "Confluence",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelIntermediate,
		Pricing:                  "Free up to 10 users, standard from $5/user/month",
		Features:                 []string{"wiki spaces", "templates", "Jira integration", "permissions"},
		BestFor:                  "Enterprise teams in the Atlassian ecosystem",
		ComplianceCertifications: []string{"SOC2"},
	})
	c.RegisterTool("documentation", types.CatalogItem{
		ID:               "notion",
		Name:             "Notion",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelBeginner,
		Pricing:          "Free for individuals, plus from $10/user/month",
		Features:         []string{"docs", "databases", "templates", "AI assistance"},
		BestFor:          "Small teams wanting flexible docs",
	})
	c.RegisterTool("documentation", types.CatalogItem{
		ID:               "mkdocs",
		Name:             "MkDocs",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free and open source",
		Features:         []string{"docs as code", "markdown", "themes", "search", "versioning", "plugins"},
		BestFor:          "Teams of any size keeping docs next to code",
	})

	// Monitoring
	c.RegisterTool("monitoring", types.CatalogItem{
		ID:                       "datadog",
		Name:                     "Datadog",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelIntermediate,
		Pricing:                  "Free tier, pro from $15/host/month",
		Features:                 []string{"APM", "log management", "dashboards", "alerting", "synthetics", "RUM"},
		BestFor:                  "Enterprise teams needing full observability",
		ComplianceCertifications: []string{"SOC2", "HIPAA", "PCI"},
	})
	c.RegisterTool("monitoring", types.CatalogItem{
		ID:               "grafana",
		Name:             "Grafana",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelAdvanced,
		Pricing:          "Free open source, cloud free tier available",
		Features:         []string{"dashboards", "Prometheus integration", "alerting", "loki logs", "tempo traces", "plugins"},
		BestFor:          "Teams comfortable operating their own stack",
	})
	c.RegisterTool("monitoring", types.CatalogItem{
		ID:                       "sentry",
		Name:                     "Sentry",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelBeginner,
		Pricing:                  "Free developer tier, team from $26/month",
		Features:                 []string{"error tracking", "performance tracing", "release health", "alerts"},
		BestFor:                  "Small teams starting with error tracking",
		ComplianceCertifications: []string{"SOC2", "HIPAA"},
	})

	// Security
	c.RegisterTool("security", types.CatalogItem{
		ID:                       "vault",
		Name:                     "HashiCorp Vault",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelAdvanced,
		Pricing:                  "Free open source, HCP from $0.03/hour",
		Features:                 []string{"secret management", "dynamic credentials", "encryption as a service", "PKI", "audit logging", "namespaces"},
		BestFor:                  "Enterprise teams with strict secret policies",
		ComplianceCertifications: []string{"SOC2"},
	})
	c.RegisterTool("security", types.CatalogItem{
		ID:               "trivy",
		Name:             "Trivy",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelBeginner,
		Pricing:          "Free and open source",
		Features:         []string{"container scanning", "IaC scanning", "SBOM generation", "license detection"},
		BestFor:          "Teams of any size scanning containers and configs",
	})
	c.RegisterTool("security", types.CatalogItem{
		ID:               "sonarqube",
		Name:             "SonarQube",
		PlatformAffinity: types.MultiPlatform,
		Complexity:       types.LevelIntermediate,
		Pricing:          "Free community edition, developer from $160/year",
		Features:         []string{"static analysis", "quality gates", "security hotspots", "coverage tracking"},
		BestFor:          "Teams enforcing code quality standards",
	})

	// Communication
	c.RegisterTool("communication", types.CatalogItem{
		ID:                       "slack",
		Name:                     "Slack",
		PlatformAffinity:         types.MultiPlatform,
		Complexity:               types.LevelBeginner,
		Pricing:                  "Free tier, pro from $7.25/user/month",
		Features:                 []string{"channels", "huddles", "integrations", "workflows"},
		BestFor:                  "Teams of any size",
		ComplianceCertifications: []string{"SOC2", "HIPAA"},
	})
	c.RegisterTool("communication", types.CatalogItem{
		ID:                       "ms-teams",
		Name:                     "Microsoft Teams",
		PlatformAffinity:         "azure",
		Complexity:               types.LevelBeginner,
		Pricing:                  "Included with Microsoft 365",
		Features:                 []string{"chat", "meetings", "file sharing", "Office integration"},
		BestFor:                  "Enterprise teams on Microsoft 365",
		ComplianceCertifications: []string{"SOC2", "HIPAA", "PCI"},
	})
}

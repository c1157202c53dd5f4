// Package terraform detects existing stack technologies from Terraform
// configurations. It walks a directory for .tf files, extracts resource
// blocks, and maps resource-type prefixes to stack categories so an
// audit can pre-fill the project's existing stack. Parse problems are
// warnings, never fatal.
package terraform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DetectionResult is what a directory scan found
type DetectionResult struct {
	// Stack maps category ID to detected technology names
	Stack map[string][]string

	// ResourceTypes are the distinct resource types seen, sorted
	ResourceTypes []string

	// Warnings describe files that could not be parsed
	Warnings []string
}

// categoryMapping maps a resource-type prefix to a stack category and
// a technology display name. Longest prefix wins.
type categoryMapping struct {
	categoryID string
	technology string
}

var resourcePrefixes = map[string]categoryMapping{
	"aws_cloudwatch":        {"monitoring", "Amazon CloudWatch"},
	"aws_codebuild":         {"ci-cd", "AWS CodeBuild"},
	"aws_codepipeline":      {"ci-cd", "AWS CodePipeline"},
	"aws_codecommit":        {"code-hosting", "AWS CodeCommit"},
	"aws_guardduty":         {"security", "Amazon GuardDuty"},
	"aws_securityhub":       {"security", "AWS Security Hub"},
	"aws_secretsmanager":    {"security", "AWS Secrets Manager"},
	"aws_wafv2":             {"security", "AWS WAF"},
	"azurerm_monitor":       {"monitoring", "Azure Monitor"},
	"azurerm_key_vault":     {"security", "Azure Key Vault"},
	"azurerm_security":      {"security", "Microsoft Defender for Cloud"},
	"google_monitoring":     {"monitoring", "Cloud Monitoring"},
	"google_cloudbuild":     {"ci-cd", "Cloud Build"},
	"google_secret_manager": {"security", "Secret Manager"},
	"github_repository":     {"code-hosting", "GitHub"},
	"gitlab_project":        {"code-hosting", "GitLab"},
	"datadog_":              {"monitoring", "Datadog"},
	"grafana_":              {"monitoring", "Grafana"},
	"vault_":                {"security", "HashiCorp Vault"},
	"pagerduty_":            {"communication", "PagerDuty"},
	"slack_":                {"communication", "Slack"},
}

// Detector scans Terraform configurations
type Detector struct {
	parser *hclparse.Parser
}

// NewDetector creates a detector
func NewDetector() *Detector {
	return &Detector{parser: hclparse.NewParser()}
}

// Detect scans path recursively for .tf files and maps their resources
// to stack categories.
func (d *Detector) Detect(path string) (*DetectionResult, error) {
	var tfFiles []string
	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(p, ".tf") {
			tfFiles = append(tfFiles, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	result := &DetectionResult{Stack: make(map[string][]string)}
	seen := make(map[string]bool)

	for _, file := range tfFiles {
		resourceTypes, warning := d.parseFile(file)
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		for _, rt := range resourceTypes {
			if seen[rt] {
				continue
			}
			seen[rt] = true
			result.ResourceTypes = append(result.ResourceTypes, rt)
		}
	}
	sort.Strings(result.ResourceTypes)

	added := make(map[string]bool)
	for _, rt := range result.ResourceTypes {
		mapping, ok := matchPrefix(rt)
		if !ok {
			continue
		}
		key := mapping.categoryID + ":" + mapping.technology
		if added[key] {
			continue
		}
		added[key] = true
		result.Stack[mapping.categoryID] = append(result.Stack[mapping.categoryID], mapping.technology)
	}

	return result, nil
}

// parseFile extracts resource types from one .tf file
func (d *Detector) parseFile(file string) ([]string, string) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Sprintf("%s: %v", file, err)
	}

	hclFile, diags := d.parser.ParseHCL(src, file)
	if diags.HasErrors() {
		return nil, fmt.Sprintf("%s: %s", file, diags.Error())
	}

	content, _, _ := hclFile.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "resource", LabelNames: []string{"type", "name"}},
		},
	})

	var resourceTypes []string
	for _, block := range content.Blocks {
		if len(block.Labels) > 0 {
			resourceTypes = append(resourceTypes, block.Labels[0])
		}
	}
	return resourceTypes, ""
}

// matchPrefix finds the longest matching resource-type prefix
func matchPrefix(resourceType string) (categoryMapping, bool) {
	var best string
	var found categoryMapping
	for prefix, mapping := range resourcePrefixes {
		if strings.HasPrefix(resourceType, prefix) && len(prefix) > len(best) {
			best = prefix
			found = mapping
		}
	}
	return found, best != ""
}

package terraform

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTF(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectMapsResourcesToCategories(t *testing.T) {
	dir := t.TempDir()
	writeTF(t, dir, "main.tf", `
resource "aws_cloudwatch_log_group" "app" {
  name = "/app/logs"
}

resource "aws_codepipeline" "deploy" {
  name     = "deploy"
  role_arn = "arn:aws:iam::123456789012:role/pipeline"
}

resource "aws_instance" "web" {
  ami           = "ami-12345"
  instance_type = "t3.micro"
}
`)

	result, err := NewDetector().Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if got := result.Stack["monitoring"]; len(got) != 1 || got[0] != "Amazon CloudWatch" {
		t.Errorf("Expected CloudWatch under monitoring, got %v", got)
	}
	if got := result.Stack["ci-cd"]; len(got) != 1 || got[0] != "AWS CodePipeline" {
		t.Errorf("Expected CodePipeline under ci-cd, got %v", got)
	}
	// aws_instance has no category mapping
	if len(result.Stack) != 2 {
		t.Errorf("Expected 2 categories, got %v", result.Stack)
	}
	if len(result.ResourceTypes) != 3 {
		t.Errorf("Expected 3 distinct resource types, got %v", result.ResourceTypes)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
}

func TestDetectDeduplicatesTechnologies(t *testing.T) {
	dir := t.TempDir()
	writeTF(t, dir, "monitoring.tf", `
resource "datadog_monitor" "cpu" {
  name = "cpu"
}

resource "datadog_dashboard" "main" {
  title = "main"
}
`)

	result, err := NewDetector().Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if got := result.Stack["monitoring"]; len(got) != 1 || got[0] != "Datadog" {
		t.Errorf("Expected Datadog exactly once, got %v", got)
	}
	if len(result.ResourceTypes) != 2 {
		t.Errorf("Expected 2 resource types, got %v", result.ResourceTypes)
	}
}

func TestDetectScansSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "modules", "security")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeTF(t, sub, "vault.tf", `
resource "vault_mount" "kv" {
  path = "secret"
  type = "kv"
}
`)

	result, err := NewDetector().Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got := result.Stack["security"]; len(got) != 1 || got[0] != "HashiCorp Vault" {
		t.Errorf("Expected Vault under security, got %v", got)
	}
}

func TestDetectInvalidFileWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeTF(t, dir, "broken.tf", `resource "aws_cloudwatch` /* unterminated */)
	writeTF(t, dir, "good.tf", `
resource "github_repository" "app" {
  name = "app"
}
`)

	result, err := NewDetector().Detect(dir)
	if err != nil {
		t.Fatalf("Detect should not fail on parse errors: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %v", result.Warnings)
	}
	if got := result.Stack["code-hosting"]; len(got) != 1 || got[0] != "GitHub" {
		t.Errorf("Expected GitHub despite the broken file, got %v", got)
	}
}

func TestDetectEmptyDirectory(t *testing.T) {
	result, err := NewDetector().Detect(t.TempDir())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(result.Stack) != 0 || len(result.ResourceTypes) != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

func TestMatchPrefixLongestWins(t *testing.T) {
	mapping, ok := matchPrefix("aws_codepipeline_webhook")
	if !ok {
		t.Fatal("Expected a match")
	}
	if mapping.technology != "AWS CodePipeline" {
		t.Errorf("Expected AWS CodePipeline, got %q", mapping.technology)
	}

	if _, ok := matchPrefix("random_pet"); ok {
		t.Error("Expected no match for random_pet")
	}
}

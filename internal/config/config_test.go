package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NoFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "" {
		t.Fatalf("expected empty region, got %q", cfg.Region)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	content := `region: us-west-2
bucket: team-scan-reports
format: json
create_bucket: true
timeout: 15m
frameworks:
  - nsa
  - mitre
`
	if err := os.WriteFile(filepath.Join(dir, ".kubescape-automator.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-west-2" {
		t.Fatalf("expected region us-west-2, got %q", cfg.Region)
	}
	if cfg.Bucket != "team-scan-reports" {
		t.Fatalf("expected bucket team-scan-reports, got %q", cfg.Bucket)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Format)
	}
	if !cfg.CreateBucket {
		t.Fatalf("expected create_bucket true")
	}
	if got := cfg.TimeoutDuration(); got != 15*time.Minute {
		t.Fatalf("expected timeout 15m, got %v", got)
	}
	if len(cfg.Frameworks) != 2 {
		t.Fatalf("expected 2 frameworks, got %d", len(cfg.Frameworks))
	}
}

func TestLoad_YMLExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".kubescape-automator.yml"), []byte("region: eu-west-1"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Fatalf("expected region eu-west-1, got %q", cfg.Region)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".kubescape-automator.yaml"), []byte("region: [broken"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}

func TestTimeoutDuration_Unparseable(t *testing.T) {
	cfg := Config{Timeout: "soon"}
	if got := cfg.TimeoutDuration(); got != 0 {
		t.Fatalf("expected 0 for unparseable timeout, got %v", got)
	}
}

package config

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestValidRegion(t *testing.T) {
	tests := []struct {
		region string
		valid  bool
	}{
		{"us-east-1", true},
		{"ap-south-1", true},
		{"eu-west-1", true},
		{"us-gov-west-1", true},
		{"us-isob-east-1", true},
		{"US-EAST-1", false},
		{"useast1", false},
		{"us-east-", false},
		{"us-east-12", false},
		{"", false},
		{"mordor-central-1", false},
	}

	for _, tt := range tests {
		if got := ValidRegion(tt.region); got != tt.valid {
			t.Errorf("ValidRegion(%q) = %v, want %v", tt.region, got, tt.valid)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"html", "html", false},
		{"json", "json", false},
		{"pdf", "pdf", false},
		{"PDF", "pdf", false},
		{"Html", "html", false},
		{" json ", "json", false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeFormat(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeFormat(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRunConfig_Defaults(t *testing.T) {
	started := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	cfg, err := NewRunConfig("us-east-1", "", "", false, 0, started)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bucket != DefaultBucket {
		t.Fatalf("expected default bucket %q, got %q", DefaultBucket, cfg.Bucket)
	}
	if cfg.Format != DefaultFormat {
		t.Fatalf("expected default format %q, got %q", DefaultFormat, cfg.Format)
	}
	if !cfg.Started.Equal(started) {
		t.Fatalf("expected started %v, got %v", started, cfg.Started)
	}
}

func TestNewRunConfig_MissingRegion(t *testing.T) {
	if _, err := NewRunConfig("", "b", "json", false, 0, time.Now()); err == nil {
		t.Fatalf("expected error for missing region")
	}
}

func TestNewRunConfig_InvalidRegion(t *testing.T) {
	if _, err := NewRunConfig("not-a-region-code", "b", "json", false, 0, time.Now()); err == nil {
		t.Fatalf("expected error for invalid region")
	}
}

func TestNewRunConfig_InvalidFormat(t *testing.T) {
	if _, err := NewRunConfig("us-east-1", "b", "yaml", false, 0, time.Now()); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestNewRunConfig_MixedCaseFormat(t *testing.T) {
	cfg, err := NewRunConfig("us-east-1", "b", "PDF", false, 0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "pdf" {
		t.Fatalf("expected pdf, got %q", cfg.Format)
	}
}

func TestCollect_RepromptsUntilValid(t *testing.T) {
	// Two bad regions, then a good one; one bad format, then a good one.
	input := "nope\nUS-EAST-1\nap-south-1\n\nxml\nJSON\n"
	var out bytes.Buffer
	c := NewCollector(strings.NewReader(input), &out)

	cfg, err := c.Collect(Config{}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "ap-south-1" {
		t.Fatalf("expected region ap-south-1, got %q", cfg.Region)
	}
	if cfg.Bucket != DefaultBucket {
		t.Fatalf("expected default bucket, got %q", cfg.Bucket)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Format)
	}
	if !strings.Contains(out.String(), "Invalid region") {
		t.Fatalf("expected re-prompt message, got %q", out.String())
	}
}

func TestCollect_FileDefaultsAccepted(t *testing.T) {
	// Empty answers accept the file-config defaults.
	input := "\n\n\n"
	var out bytes.Buffer
	c := NewCollector(strings.NewReader(input), &out)

	defaults := Config{Region: "eu-west-1", Bucket: "preset-bucket", Format: "pdf"}
	cfg, err := c.Collect(defaults, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Fatalf("expected region eu-west-1, got %q", cfg.Region)
	}
	if cfg.Bucket != "preset-bucket" {
		t.Fatalf("expected bucket preset-bucket, got %q", cfg.Bucket)
	}
	if cfg.Format != "pdf" {
		t.Fatalf("expected format pdf, got %q", cfg.Format)
	}
}

func TestCollect_InputExhausted(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader(""), &out)
	if _, err := c.Collect(Config{}, time.Now()); err == nil {
		t.Fatalf("expected error when input is exhausted")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"\n", true},
		{"n\n", false},
		{"no\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		c := NewCollector(strings.NewReader(tt.answer), &out)
		if got := c.Confirm("Create bucket?"); got != tt.want {
			t.Errorf("Confirm with answer %q = %v, want %v", strings.TrimSpace(tt.answer), got, tt.want)
		}
	}
}

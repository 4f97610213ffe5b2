package commands

import (
	"errors"
	"strings"
	"testing"
)

func TestEnhanceError_Nil(t *testing.T) {
	if got := enhanceError("anything", nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestEnhanceError_Credentials(t *testing.T) {
	err := enhanceError("credential check", errors.New("operation error STS: GetCallerIdentity, InvalidClientTokenId"))
	if !strings.Contains(err.Error(), "aws configure") {
		t.Fatalf("expected credential suggestions, got %v", err)
	}
}

func TestEnhanceError_AccessDenied(t *testing.T) {
	err := enhanceError("bucket provisioning", errors.New("AccessDenied: not allowed"))
	if !strings.Contains(err.Error(), "s3:PutObject") {
		t.Fatalf("expected IAM suggestions, got %v", err)
	}
}

func TestEnhanceError_MissingTools(t *testing.T) {
	err := enhanceError("environment check", errors.New("required tools not found on PATH: kubectl, git"))
	if !strings.Contains(err.Error(), "kubectl") {
		t.Fatalf("expected tooling suggestions, got %v", err)
	}
}

func TestEnhanceError_ScannerMissing(t *testing.T) {
	err := enhanceError("scanner setup", errors.New("kubescape still not found after install"))
	if !strings.Contains(err.Error(), "Install kubescape manually") {
		t.Fatalf("expected scanner suggestions, got %v", err)
	}
}

func TestEnhanceError_Default(t *testing.T) {
	err := enhanceError("report generation", errors.New("disk full"))
	if err.Error() != "report generation failed: disk full" {
		t.Fatalf("unexpected error %v", err)
	}
}

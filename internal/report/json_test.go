package report

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Generate(sampleSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded RunSummary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Bucket != "scan-bucket" {
		t.Fatalf("expected bucket scan-bucket, got %q", decoded.Bucket)
	}
	if len(decoded.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(decoded.Results))
	}
	if decoded.Results[1].ExitCode != 2 {
		t.Fatalf("expected exit code 2, got %d", decoded.Results[1].ExitCode)
	}
}

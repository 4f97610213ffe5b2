package report

import (
	"encoding/json"
	"io"
)

// JSONReporter renders the run summary as indented JSON.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Generate writes the run summary.
func (r *JSONReporter) Generate(s RunSummary) error {
	s.Timestamp = s.Timestamp.UTC()
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

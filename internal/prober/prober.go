// Package prober verifies the external tools a run depends on and installs
// the kubescape binary when it is missing.
package prober

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

var (
	// requiredTools must be present before a run starts.
	requiredTools = []string{"kubectl", "git"}
	// optionalTools produce a warning when absent.
	optionalTools = []string{"jq"}
)

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// Probe checks that every mandatory external tool is on PATH. Optional
// tools only log a warning. The returned error names all missing tools.
func Probe() error {
	var missing []string
	for _, tool := range requiredTools {
		if _, err := lookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required tools not found on PATH: %s", strings.Join(missing, ", "))
	}

	for _, tool := range optionalTools {
		if _, err := lookPath(tool); err != nil {
			slog.Warn("Optional tool not found, continuing", slog.String("tool", tool))
		}
	}
	return nil
}

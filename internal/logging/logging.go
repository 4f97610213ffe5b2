package logging

import (
	"log/slog"
	"os"
)

// Init installs the default slog logger. The tool narrates each stage of a
// run, so informational output is on by default; verbose adds debug detail.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/musheer090/kubescape-automator/internal/report"
)

func printStatus(format string, args ...interface{}) {
	slog.Info(fmt.Sprintf(format, args...))
}

// enhanceError enhances an error with additional context and helpful suggestions
func enhanceError(operation string, err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "NoCredentialProviders") || strings.Contains(errMsg, "no valid credentials") || strings.Contains(errMsg, "InvalidClientTokenId") {
		return fmt.Errorf("%s failed: No usable AWS credentials.\n"+
			"Solutions:\n"+
			"  - Set AWS_PROFILE environment variable\n"+
			"  - Use --aws-profile flag\n"+
			"  - Configure AWS credentials with 'aws configure'\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "AccessDenied") || strings.Contains(errMsg, "Access Denied") {
		return fmt.Errorf("%s failed: Access Denied.\n"+
			"Solutions:\n"+
			"  - Check IAM permissions for S3 operations\n"+
			"  - Ensure you have s3:HeadBucket, s3:CreateBucket, s3:PutObject permissions on the report bucket\n"+
			"  - Verify the correct AWS profile is being used\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "required tools not found") {
		return fmt.Errorf("%s failed: Missing external tools.\n"+
			"Solutions:\n"+
			"  - Install kubectl and git and make sure they are on PATH\n"+
			"  - Re-run with --verbose for details\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "kubescape") && strings.Contains(errMsg, "not found") {
		return fmt.Errorf("%s failed: Scanner unavailable.\n"+
			"Solutions:\n"+
			"  - Install kubescape manually and ensure it is on PATH\n"+
			"  - Check the install log for the failed automatic install\n"+
			"Original error: %w", operation, err)
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}

func selectReporter(format string, writer io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return report.NewJSONReporter(writer), nil
	case "text":
		return report.NewTextReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported summary format: %s (supported: text, json)", format)
	}
}

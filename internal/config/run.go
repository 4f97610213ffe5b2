package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Defaults applied when the user leaves a value unset.
const (
	DefaultBucket = "kubescape-scan-reports"
	DefaultFormat = "html"
)

// Formats accepted for scanner report output.
var ValidFormats = []string{"html", "json", "pdf"}

// Region codes look like us-east-1, ap-south-1, us-gov-west-1, us-isob-east-1.
var regionPattern = regexp.MustCompile(`^[a-z]{2}(-gov|-iso[a-z]?)?-[a-z]+-\d$`)

// RunConfig holds every parameter for a single run. It is populated once,
// either from flags or interactively, and never mutated afterwards.
type RunConfig struct {
	Region       string
	Bucket       string
	Format       string
	CreateBucket bool
	Timeout      time.Duration
	Started      time.Time
}

// ValidRegion reports whether s looks like a cloud region code.
func ValidRegion(s string) bool {
	return regionPattern.MatchString(s)
}

// NormalizeFormat matches s case-insensitively against the accepted report
// formats and returns the lower-case canonical value.
func NormalizeFormat(s string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, f := range ValidFormats {
		if lower == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q (supported: %s)", s, strings.Join(ValidFormats, ", "))
}

// NewRunConfig validates flag-provided values and builds a RunConfig.
// Region is mandatory; bucket and format fall back to defaults.
func NewRunConfig(region, bucket, format string, createBucket bool, timeout time.Duration, started time.Time) (RunConfig, error) {
	if region == "" {
		return RunConfig{}, fmt.Errorf("region is required (use -r, a config file, or run without flags for interactive mode)")
	}
	if !ValidRegion(region) {
		return RunConfig{}, fmt.Errorf("invalid region %q (expected a code like us-east-1)", region)
	}
	if bucket == "" {
		bucket = DefaultBucket
	}
	if format == "" {
		format = DefaultFormat
	}
	normalized, err := NormalizeFormat(format)
	if err != nil {
		return RunConfig{}, err
	}
	return RunConfig{
		Region:       region,
		Bucket:       bucket,
		Format:       normalized,
		CreateBucket: createBucket,
		Timeout:      timeout,
		Started:      started,
	}, nil
}

// Collector gathers run parameters through interactive prompts. Input and
// output are injectable so prompting is testable.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewCollector creates a Collector reading prompt answers from in.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Collect prompts for region, bucket and format, re-prompting until each
// answer is valid. File-config values are offered as defaults.
func (c *Collector) Collect(defaults Config, started time.Time) (RunConfig, error) {
	region, err := c.promptRegion(defaults.Region)
	if err != nil {
		return RunConfig{}, err
	}

	bucket, err := c.promptBucket(defaults.Bucket)
	if err != nil {
		return RunConfig{}, err
	}

	format, err := c.promptFormat(defaults.Format)
	if err != nil {
		return RunConfig{}, err
	}

	return RunConfig{
		Region:  region,
		Bucket:  bucket,
		Format:  format,
		Timeout: defaults.TimeoutDuration(),
		Started: started,
	}, nil
}

func (c *Collector) promptRegion(def string) (string, error) {
	for {
		prompt := "AWS region"
		if def != "" {
			prompt += fmt.Sprintf(" [%s]", def)
		}
		answer, err := c.ask(prompt + ": ")
		if err != nil {
			return "", err
		}
		if answer == "" && def != "" {
			answer = def
		}
		if ValidRegion(answer) {
			return answer, nil
		}
		fmt.Fprintf(c.out, "Invalid region %q, expected a code like us-east-1.\n", answer)
	}
}

func (c *Collector) promptBucket(def string) (string, error) {
	if def == "" {
		def = DefaultBucket
	}
	answer, err := c.ask(fmt.Sprintf("S3 bucket [%s]: ", def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (c *Collector) promptFormat(def string) (string, error) {
	if def == "" {
		def = DefaultFormat
	}
	for {
		answer, err := c.ask(fmt.Sprintf("Report format (%s) [%s]: ", strings.Join(ValidFormats, "/"), def))
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		normalized, err := NormalizeFormat(answer)
		if err == nil {
			return normalized, nil
		}
		fmt.Fprintf(c.out, "%v\n", err)
	}
}

// Confirm asks a yes/no question. Empty and "y"/"yes" answers count as yes.
func (c *Collector) Confirm(question string) bool {
	answer, err := c.ask(question + " [Y/n]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "" || answer == "y" || answer == "yes"
}

func (c *Collector) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

package scanner

// Framework is one of the kubescape scan frameworks this tool runs.
type Framework string

const (
	FrameworkNSA   Framework = "nsa"
	FrameworkMITRE Framework = "mitre"
)

// Frameworks returns the fixed set of frameworks scanned on every run.
func Frameworks() []Framework {
	return []Framework{FrameworkNSA, FrameworkMITRE}
}

// ParseFrameworks maps config-file names onto the known framework set.
// An empty list means the full default set.
func ParseFrameworks(names []string) []Framework {
	if len(names) == 0 {
		return Frameworks()
	}
	var out []Framework
	for _, n := range names {
		for _, f := range Frameworks() {
			if n == string(f) {
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		return Frameworks()
	}
	return out
}

// Upper returns the framework name as used in artifact filenames.
func (f Framework) Upper() string {
	b := []byte(f)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Result captures a single framework invocation.
type Result struct {
	Framework Framework
	ExitCode  int
	Succeeded bool
}

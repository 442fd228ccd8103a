package domain

// TestResult represents one executed test from the harness results file
type TestResult struct {
	TestName        string  `json:"test_name"`
	Passed          bool    `json:"passed"`
	FailureCategory string  `json:"failure_category"`
	ErrorMessage    string  `json:"error_message"`
	Stdout          string  `json:"stdout"`
	Stderr          string  `json:"stderr"`
	ExitCode        *int    `json:"exit_code"` // nil means unknown
	ExecutionTime   float64 `json:"execution_time"`
	Description     string  `json:"description"`
}

// TestGroup is a named collection of results sharing one execution environment
type TestGroup struct {
	Name    string
	Results []TestResult
}

// FailedCount returns how many results in the group did not pass.
func (g TestGroup) FailedCount() int {
	failed := 0
	for _, r := range g.Results {
		if !r.Passed {
			failed++
		}
	}
	return failed
}

// Group names as they appear in reports (the results file keys them as
// "perl_tests" and "python_tests").
const (
	GroupPerl   = "perl"
	GroupPython = "python"
)

// ResultsFile is the top-level structure of the harness results JSON
type ResultsFile struct {
	PerlTests   []TestResult `json:"perl_tests"`
	PythonTests []TestResult `json:"python_tests"`
	Timestamp   string       `json:"timestamp"` // opaque, passed through verbatim
}

// Groups returns the test groups in their fixed reporting order.
func (f *ResultsFile) Groups() []TestGroup {
	return []TestGroup{
		{Name: GroupPerl, Results: f.PerlTests},
		{Name: GroupPython, Results: f.PythonTests},
	}
}

// TotalCount returns the number of results across all groups.
func (f *ResultsFile) TotalCount() int {
	return len(f.PerlTests) + len(f.PythonTests)
}

package domain

import "testing"

func TestCategoryTag_Known(t *testing.T) {
	known := []CategoryTag{
		CategoryUnknown,
		CategoryMetalink,
		CategoryMissingFeatureOther,
		CategoryMissingFeatureFTP,
		CategoryCrawlMismatch,
		CategoryContentMismatch,
		CategoryMissingFile,
		CategoryFrameworkOther,
		CategorySkippedSSLTLS,
		CategoryTimeout,
		CategoryMissingCLIOption,
		CategoryExitCodeMismatch,
	}
	for _, tag := range known {
		if !tag.Known() {
			t.Errorf("%s should be known", tag)
		}
	}

	for _, tag := range []CategoryTag{"flaky_network", "missing_feature", ""} {
		if tag.Known() {
			t.Errorf("%s should not be known", tag)
		}
	}
}

func TestResultsFile_Groups(t *testing.T) {
	f := &ResultsFile{
		PerlTests:   []TestResult{{TestName: "a"}, {TestName: "b"}},
		PythonTests: []TestResult{{TestName: "c"}},
	}

	groups := f.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != GroupPerl || len(groups[0].Results) != 2 {
		t.Errorf("unexpected perl group: %+v", groups[0])
	}
	if groups[1].Name != GroupPython || len(groups[1].Results) != 1 {
		t.Errorf("unexpected python group: %+v", groups[1])
	}
	if f.TotalCount() != 3 {
		t.Errorf("expected total 3, got %d", f.TotalCount())
	}
}

func TestTestGroup_FailedCount(t *testing.T) {
	g := TestGroup{
		Name: GroupPerl,
		Results: []TestResult{
			{TestName: "a", Passed: true},
			{TestName: "b"},
			{TestName: "c"},
		},
	}
	if got := g.FailedCount(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

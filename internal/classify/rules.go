package classify

import (
	"strings"

	"tfa/internal/domain"
)

// rule pairs a pattern test with the tag it produces. Rules are evaluated in
// slice order; the first match wins.
type rule struct {
	tag   domain.CategoryTag
	match func(r domain.TestResult) bool
}

// apply runs the rules in order and returns the first matching tag.
func apply(rules []rule, r domain.TestResult) (domain.CategoryTag, bool) {
	for _, rl := range rules {
		if rl.match(r) {
			return rl.tag, true
		}
	}
	return "", false
}

// autoRules categorize results whose upstream label is "unknown". The order
// is load-bearing: earlier patterns shadow later ones (a metalink failure may
// also mention missing files, and still counts as metalink).
var autoRules = []rule{
	{domain.CategoryMetalink, matchMetalink},
	{domain.CategoryCrawlMismatch, matchCrawlMismatch},
	{domain.CategoryContentMismatch, matchContentMismatch},
	{domain.CategoryMissingFile, matchExpectedFileMissing},
	{domain.CategoryMissingFile, func(r domain.TestResult) bool {
		return strings.Contains(r.Stderr, "No such file or directory")
	}},
	{domain.CategorySkippedSSLTLS, func(r domain.TestResult) bool {
		return r.ExitCode != nil && *r.ExitCode == 77
	}},
	{domain.CategoryMissingCLIOption, func(r domain.TestResult) bool {
		return strings.Contains(lowerStderr(r), "unexpected argument")
	}},
	{domain.CategoryMissingFeatureFTP, func(r domain.TestResult) bool {
		s := lowerStderr(r)
		return strings.Contains(s, "builder error") && strings.Contains(s, "ftp")
	}},
	{domain.CategoryExitCodeMismatch, func(r domain.TestResult) bool {
		// The harness reported a pass but the exit code disagreed.
		return strings.Contains(r.Stderr, "Test Passed") ||
			strings.Contains(lowerStderr(r), "passed")
	}},
}

// missingFeatureRules refine the upstream "missing_feature" label.
//
// The metalink check repeats the one in autoRules on purpose: the two lists
// are reached under mutually exclusive labels and must stay free to diverge.
var missingFeatureRules = []rule{
	{domain.CategoryMetalink, matchMetalink},
}

// frameworkRules refine the upstream "test_framework_error" label.
var frameworkRules = []rule{
	{domain.CategoryCrawlMismatch, matchCrawlMismatch},
	{domain.CategoryContentMismatch, matchContentMismatch},
	{domain.CategoryMissingFile, matchExpectedFileMissing},
}

func matchMetalink(r domain.TestResult) bool {
	return strings.Contains(r.ErrorMessage, "--input-metalink") ||
		strings.Contains(lowerStderr(r), "metalink")
}

func matchCrawlMismatch(r domain.TestResult) bool {
	return strings.Contains(r.Stderr, "Not all files were crawled correctly")
}

func matchContentMismatch(r domain.TestResult) bool {
	return strings.Contains(r.Stderr, "do not match")
}

func matchExpectedFileMissing(r domain.TestResult) bool {
	return strings.Contains(r.Stderr, "Expected file") &&
		strings.Contains(r.Stderr, "not found")
}

func lowerStderr(r domain.TestResult) string {
	return strings.ToLower(r.Stderr)
}

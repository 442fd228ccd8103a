package classify

import (
	"strings"

	"tfa/internal/domain"
)

// Classifier assigns a category tag to a test result
type Classifier interface {
	Classify(result domain.TestResult) domain.CategoryTag
}

// RuleClassifier categorizes failures with ordered substring rules over the
// result's error message, stderr and exit code
type RuleClassifier struct{}

// NewRuleClassifier creates a new RuleClassifier
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify maps a test result to its final category tag. It is deterministic,
// pure and total: every input yields a tag, missing optional fields are
// treated as empty. An absent or blank upstream label is normalized to
// "unknown" before the rules apply.
//
// Auto-categorization (the autoRules list) fires only when the upstream label
// is exactly "unknown". The missing_feature and test_framework_error labels
// get their own refinement lists; skipped and timeout map unconditionally.
// Any other label passes through unchanged.
func (c *RuleClassifier) Classify(result domain.TestResult) domain.CategoryTag {
	label := result.FailureCategory
	if strings.TrimSpace(label) == "" {
		label = string(domain.CategoryUnknown)
	}

	switch label {
	case string(domain.CategoryUnknown):
		if tag, ok := apply(autoRules, result); ok {
			return tag
		}
		return domain.CategoryUnknown

	case "missing_feature":
		if tag, ok := apply(missingFeatureRules, result); ok {
			return tag
		}
		return domain.CategoryMissingFeatureOther

	case "test_framework_error":
		if tag, ok := apply(frameworkRules, result); ok {
			return tag
		}
		return domain.CategoryFrameworkOther

	case "skipped":
		return domain.CategorySkippedSSLTLS

	case "timeout":
		return domain.CategoryTimeout

	default:
		return domain.CategoryTag(label)
	}
}

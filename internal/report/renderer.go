package report

import (
	"fmt"
	"strings"

	"tfa/internal/domain"
)

// Placeholder text for absent optional fields.
const (
	noDescription   = "No description available"
	noErrorMessage  = "No error message"
	noStdout        = "No stdout"
	noStderr        = "No stderr"
	unknownExitCode = "unknown"
	unknownTime     = "unknown"
)

// Renderer renders per-test failure documents and the category index
type Renderer struct{}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFailure renders the markdown report document for one classified
// failure. Absent optional fields render as placeholders, never as errors.
func (r *Renderer) RenderFailure(f domain.ClassifiedFailure) string {
	res := f.Result
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", res.TestName)
	fmt.Fprintf(&b, "**Test Type**: %s\n", f.Group)
	b.WriteString("**Status**: ❌ FAILED\n")
	fmt.Fprintf(&b, "**Category**: %s\n", f.Category)
	fmt.Fprintf(&b, "**Execution Time**: %.2fs\n\n", res.ExecutionTime)

	b.WriteString("## Description\n\n")
	fmt.Fprintf(&b, "%s\n\n", orDefault(res.Description, noDescription))

	b.WriteString("## Error Details\n\n")
	fmt.Fprintf(&b, "**Error Message**: %s\n\n", orDefault(res.ErrorMessage, noErrorMessage))
	fmt.Fprintf(&b, "**Exit Code**: %s\n\n", ExitCodeText(res.ExitCode))

	b.WriteString("## Test Output\n\n")
	fmt.Fprintf(&b, "### stdout\n```\n%s\n```\n\n", orDefault(res.Stdout, noStdout))
	fmt.Fprintf(&b, "### stderr\n```\n%s\n```\n\n", orDefault(res.Stderr, noStderr))

	b.WriteString("## Analysis\n\n")
	if analysis := AnalysisFor(res); analysis != "" {
		b.WriteString(analysis)
	}

	b.WriteString(notesScaffold)
	return b.String()
}

// RenderIndex renders the category index document. Groups must already be in
// reporting order (descending size, ties first-encountered).
func (r *Renderer) RenderIndex(inputName, timestamp string, groups []domain.CategoryGroup, totalFailed, totalTests int, ext string) string {
	var b strings.Builder

	b.WriteString("# Test Failure Analysis\n\n")
	fmt.Fprintf(&b, "**Generated from**: %s\n", inputName)
	fmt.Fprintf(&b, "**Timestamp**: %s\n", orDefault(timestamp, unknownTime))
	fmt.Fprintf(&b, "**Total Failed**: %d / %d\n\n", totalFailed, totalTests)

	b.WriteString("## Summary by Category\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n### %s (%d tests)\n\n", g.Category, len(g.Failures))
		for _, f := range g.Failures {
			fmt.Fprintf(&b, "- [%s](./%s) (%s)\n", f.Result.TestName, FileName(f.Result.TestName, ext), f.Group)
		}
	}

	return b.String()
}

// ExitCodeText formats an optional exit code for display.
func ExitCodeText(code *int) string {
	if code == nil {
		return unknownExitCode
	}
	return fmt.Sprintf("%d", *code)
}

func orDefault(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

const notesScaffold = `
## Implementation Notes

_Add implementation notes here after investigation_

## Related Tests

_List related tests that might have similar issues_

## References

_Add links to relevant code sections or documentation_
`

package report

import (
	"strings"

	"tfa/internal/domain"
)

// AnalysisFor returns the fixed analysis prose for a failure, or "" when no
// pattern applies. The chain mirrors the classifier's pattern tests but is
// evaluated independently: the first matching block wins, the metalink block
// keys on the error message only, and the skipped/timeout blocks key on the
// raw upstream label.
func AnalysisFor(res domain.TestResult) string {
	switch {
	case strings.Contains(res.Stderr, "Not all files were crawled correctly"):
		return analysisCrawlMismatch
	case strings.Contains(res.Stderr, "do not match"):
		return analysisContentMismatch
	case strings.Contains(res.Stderr, "Expected file") && strings.Contains(res.Stderr, "not found"):
		return analysisMissingFile
	case strings.Contains(res.ErrorMessage, "--input-metalink"):
		return analysisMetalink
	case res.FailureCategory == "skipped":
		return analysisSkipped
	case res.FailureCategory == "timeout":
		return analysisTimeout
	}
	return ""
}

const analysisCrawlMismatch = `
**Issue Type**: File crawling mismatch

The test expects certain files to be downloaded/crawled, but the client either:
- Downloaded different files
- Missed some files
- Downloaded extra files

**Possible causes**:
1. Link extraction logic difference
2. Recursive download filtering issue
3. Spider mode behavior difference
4. robots.txt handling difference

**Next steps**:
1. Check which files were expected vs actual
2. Review the recursive link extraction
3. Compare with GNU wget behavior
`

const analysisContentMismatch = `
**Issue Type**: Content mismatch

The downloaded file content doesn't match expected content.

**Possible causes**:
1. Incorrect response handling
2. Encoding issue
3. Header processing difference
4. Content modification issue

**Next steps**:
1. Compare actual vs expected file content
2. Check the HTTP response handling
3. Review content encoding/decoding
`

const analysisMissingFile = `
**Issue Type**: Missing file

Expected file was not created or saved to wrong location.

**Possible causes**:
1. File naming issue
2. Directory structure difference
3. File not downloaded
4. Path resolution issue

**Next steps**:
1. Check the output file naming logic
2. Verify directory creation
3. Check if download was attempted
`

const analysisMetalink = `
**Issue Type**: Missing feature - Metalink

Metalink support is not implemented in the client.

**Status**: Deferred to v0.2.0+

**Impact**: 32 tests (19% of all tests)

**Priority**: Low - not critical for current goals
`

const analysisSkipped = `
**Issue Type**: Feature not available (skipped)

Test requires SSL/TLS features that are not configured.

**Possible features**:
- Client certificates
- CRL (Certificate Revocation List)
- Custom CA certificates
- Specific TLS versions

**Status**: Deferred to v0.2.0+

**Priority**: Medium - needed for advanced HTTPS
`

const analysisTimeout = `
**Issue Type**: Test timeout

Test exceeded maximum execution time (usually 60s).

**Possible causes**:
1. Infinite loop or hang
2. Network issue
3. Auth challenge loop
4. Resource deadlock

**Priority**: High - indicates serious bug

**Next steps**:
1. Run test manually with debug output
2. Check for infinite loops
3. Review auth handling
`

package domain

// CategoryTag is the final failure classification assigned to a failed test.
// The classifier's own refinement only ever emits the tags below, but
// unrecognized upstream labels pass through unchanged, so the vocabulary is
// open-ended. Known reports whether a tag belongs to the closed set, letting
// consumers surface new upstream labels in a default case instead of silently
// mishandling them.
type CategoryTag string

const (
	CategoryUnknown             CategoryTag = "unknown"
	CategoryMetalink            CategoryTag = "missing_feature_metalink"
	CategoryMissingFeatureOther CategoryTag = "missing_feature_other"
	CategoryMissingFeatureFTP   CategoryTag = "missing_feature_ftp"
	CategoryCrawlMismatch       CategoryTag = "test_framework_crawl_mismatch"
	CategoryContentMismatch     CategoryTag = "test_framework_content_mismatch"
	CategoryMissingFile         CategoryTag = "test_framework_missing_file"
	CategoryFrameworkOther      CategoryTag = "test_framework_other"
	CategorySkippedSSLTLS       CategoryTag = "skipped_ssl_tls"
	CategoryTimeout             CategoryTag = "timeout"
	CategoryMissingCLIOption    CategoryTag = "missing_cli_option"
	CategoryExitCodeMismatch    CategoryTag = "exit_code_mismatch"
)

func (c CategoryTag) String() string {
	return string(c)
}

// Known reports whether the tag is one the classifier itself can emit, as
// opposed to an upstream label passed through unchanged.
func (c CategoryTag) Known() bool {
	switch c {
	case CategoryUnknown,
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
		CategoryExitCodeMismatch:
		return true
	}
	return false
}

package report

import "strings"

// SanitizeName converts a test name into a report file basename by replacing
// every "--" and "." with "_" (harness test names look like
// "Test--https-crl.px"). The replacement set maps onto itself, so
// sanitization is idempotent.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "--", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}

// FileName returns the report filename for a test name.
func FileName(name, ext string) string {
	return SanitizeName(name) + ext
}

package errs

import "strings"

// sanitize flattens multi-line values before they are embedded in error messages,
// keeping log lines single-line and grep-friendly.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

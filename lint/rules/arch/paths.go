// Package arch contains the architectural rules: the domain dependency
// graph, primitive obsession in the domain layer, and direct imports of
// the vendored UI toolkit.
package arch

import "strings"

// testFileSuffixes identify test files; dependency and type checks never
// apply to them.
var testFileSuffixes = []string{".test.ts", ".test.tsx", ".spec.ts", ".spec.tsx"}

func isTestFile(path string) bool {
	for _, suffix := range testFileSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// normalizePath converts Windows path separators to forward slashes so that
// all path matching works on one separator.
func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

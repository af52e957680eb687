// file: internal/metadata/sanitize.go
// version: 1.0.0
// guid: 4e9f2a6b-8c1d-4e3f-a5b7-9d0c1e2f3a4b

package metadata

import "strings"

// replacements is applied in order. None of the replacement characters
// re-introduce a character earlier in the list.
var replacements = []struct {
	old string
	new string
}{
	{"/", "-"},
	{"?", ""},
	{":", "-"},
	{"\"", ""},
}

// SanitizeSegment normalizes raw tag text into a filesystem-safe path
// segment: leading/trailing whitespace is stripped and reserved characters
// are replaced. No case, Unicode, or length normalization is performed.
func SanitizeSegment(raw string) string {
	s := strings.TrimSpace(raw)
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}

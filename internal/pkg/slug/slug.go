// internal/pkg/slug/slug.go
package slug

import "strings"

// Normalize turns arbitrary text into a URL-safe identifier: lowercase,
// runs of anything outside [a-z0-9] collapsed into single hyphens, no
// leading or trailing hyphen. Returns "" when the input has no
// alphanumeric characters; callers must treat that as invalid.
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

package webflow

import "strings"

// Slugify derives a URL slug from a display name: lower-cased, with
// runs of non-alphanumeric characters collapsed to a single hyphen and
// leading/trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

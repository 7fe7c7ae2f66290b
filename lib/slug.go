package lib

import "strings"

// Slugify derives a URL-safe slug from a display name: lowercase, every run
// of non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphens.
func Slugify(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

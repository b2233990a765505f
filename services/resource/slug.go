package resource

import "strings"

// GenerateSlug maps a display name to its URL-safe identifier: lower-cased,
// with every run of characters outside [a-z0-9] collapsed to a single dash
// and no leading or trailing dash. Total and idempotent.
func GenerateSlug(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	dashPending := false
	for _, r := range name {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			dashPending = b.Len() > 0
			continue
		}
		if dashPending {
			b.WriteByte('-')
			dashPending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Package util provides helpers shared across the service.
package util

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify normalizes a display name into a URL-safe slug: lowercase
// alphanumerics with single hyphens between words.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// UniqueSlug returns Slugify(name) with a random disambiguator appended.
// Uniqueness is still enforced by the storage layer's unique constraint;
// the suffix only makes collisions between identical names rare enough
// that the create retry loop terminates quickly.
func UniqueSlug(name string) string {
	base := Slugify(name)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

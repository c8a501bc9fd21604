package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Acme", "acme"},
		{"spaces", "Acme Corp", "acme-corp"},
		{"punctuation", "Acme, Inc.", "acme-inc"},
		{"repeated separators", "Acme   --  Corp", "acme-corp"},
		{"leading and trailing junk", "  Acme Corp!  ", "acme-corp"},
		{"digits", "Team 42", "team-42"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestUniqueSlugAddsDisambiguator(t *testing.T) {
	slug := UniqueSlug("Acme Corp")
	require.True(t, strings.HasPrefix(slug, "acme-corp-"))
	assert.Len(t, slug, len("acme-corp-")+8)
}

func TestUniqueSlugDiffersAcrossCalls(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		slug := UniqueSlug("Acme")
		assert.False(t, seen[slug], "slug %q generated twice", slug)
		seen[slug] = true
	}
}

func TestUniqueSlugEmptyName(t *testing.T) {
	slug := UniqueSlug("!!!")
	require.Len(t, slug, 8)
	assert.NotContains(t, slug, "-")
}

package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentNames(t *testing.T) {
	seen := make(map[string]bool)
	for month := 1; month <= MonthCount; month++ {
		names, err := DocumentNames(month)
		require.NoError(t, err)
		for _, name := range names {
			assert.NotEmpty(t, name)
			assert.False(t, seen[name], "duplicate document name %q", name)
			seen[name] = true
		}
	}
	assert.Len(t, seen, MonthCount*DocumentsPerMonth)
}

func TestDocumentNames_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, -1, 9, 100} {
		_, err := DocumentNames(month)
		assert.Error(t, err, "month %d", month)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Welcome & Program Overview", "welcome-program-overview"},
		{"90-Day Goal Map", "90-day-goal-map"},
		{"Hook & Headline Playbook", "hook-headline-playbook"},
		{"  Trailing  Spaces  ", "trailing-spaces"},
		{"ALLCAPS", "allcaps"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeBio(t *testing.T) {
	tests := []struct {
		name     string
		bio      string
		industry string
		tags     []string
		score    int
	}{
		{
			name:     "b2b saas growth",
			bio:      "B2B SaaS growth advisor",
			industry: "SaaS",
			tags:     []string{"Growth Marketing", "SaaS", "B2B Strategy"},
			score:    100,
		},
		{
			name:     "marketing",
			bio:      "Brand storyteller and marketing lead",
			industry: "Marketing",
			tags:     []string{"Marketing"},
			score:    80,
		},
		{
			name:     "sales",
			bio:      "VP Sales, revenue operations",
			industry: "Sales",
			tags:     []string{"Sales"},
			score:    60,
		},
		{
			name:     "no keywords",
			bio:      "Dad, runner, coffee",
			industry: "Technology",
			tags:     []string{},
			score:    60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeBio(tt.bio)
			assert.Equal(t, tt.industry, got.Industry)
			assert.Equal(t, tt.tags, got.ExpertiseTags)
			assert.Equal(t, tt.score, got.Score)
		})
	}
}

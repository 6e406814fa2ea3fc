package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyService(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"my sink has a leak", "Plumbing Services"},
		{"the toilet is clogged", "Plumbing Services"},
		{"my laptop won't start", "IT & Tech Support"},
		{"need help with wiring in the garage", "Electrical Services"},
		{"the furnace is making noise", "HVAC Services"},
		{"my brakes are squeaking", "Car Repair & Maintenance"},
		{"deep clean before moving out", "House Cleaning"},
		{"paint the living room", "Painting Services"},
		{"handyman for some odd jobs", "General Handyman"},
	}
	for _, tc := range cases {
		got, ok := ClassifyService(tc.input)
		require.True(t, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestClassifyServiceCaseInsensitive(t *testing.T) {
	got, ok := ClassifyService("My SINK is LEAKING")
	require.True(t, ok)
	assert.Equal(t, "Plumbing Services", got)
}

func TestClassifyServiceFirstMatchWins(t *testing.T) {
	// "computer" precedes "repair" in the dictionary, so tech wins over
	// handyman even though both keywords are present.
	got, ok := ClassifyService("computer repair")
	require.True(t, ok)
	assert.Equal(t, "IT & Tech Support", got)

	// "leak" precedes "repair" as well.
	got, ok = ClassifyService("repair a leak")
	require.True(t, ok)
	assert.Equal(t, "Plumbing Services", got)
}

func TestClassifyServiceNoMatch(t *testing.T) {
	for _, input := range []string{"", "hello there", "what do you offer"} {
		_, ok := ClassifyService(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestNoMatchPromptListsAllCategories(t *testing.T) {
	assert.Equal(t, 8, strings.Count(noMatchPrompt, "•"))
	for _, line := range []string{
		"Computer/IT repair",
		"Plumbing",
		"Electrical work",
		"HVAC (heating/cooling)",
		"Auto repair",
		"House cleaning",
		"Painting",
		"General handyman services",
	} {
		assert.Contains(t, noMatchPrompt, line)
	}
}

func TestDescribeCategory(t *testing.T) {
	assert.Equal(t,
		"leak repair, drain cleaning, fixture installation, and water heater services",
		describeCategory("Plumbing Services"))
	assert.Equal(t, "various professional services", describeCategory("Unknown Category"))
}

func TestEveryKeywordCategoryHasDescription(t *testing.T) {
	for _, rule := range serviceKeywords {
		_, ok := categoryDescriptions[rule.Category]
		assert.True(t, ok, "category %q has no description", rule.Category)
	}
}

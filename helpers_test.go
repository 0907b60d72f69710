package website

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":                  "hello-world",
		"  Spotting Inflated Multiples ": "spotting-inflated-multiples",
		"Q1 2025 Review":                 "q1-2025-review",
		"Already-a-slug":                 "already-a-slug",
		"Trailing punctuation...":        "trailing-punctuation",
		"---":                           "",
		"":                              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"Valuation", "", "  ", "Exit preparation"})
	assert.Equal(t, []string{"Valuation", "Exit preparation"}, got)

	assert.Nil(t, FilterEmpty(nil))
	assert.Nil(t, FilterEmpty([]string{"", "   "}))
}

// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple words", "Science Fiction", "science-fiction"},
		{"accents stripped", "Café Société", "cafe-societe"},
		{"punctuation collapsed", "Rock & Roll!!!", "rock-roll"},
		{"leading and trailing junk", "  --Drama--  ", "drama"},
		{"digits preserved", "Top 10 of 2024", "top-10-of-2024"},
		{"already a slug", "non-fiction", "non-fiction"},
		{"empty input", "", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, From(testCase.input))
		})
	}
}

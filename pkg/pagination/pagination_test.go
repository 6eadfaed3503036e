// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Clamping(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults when absent", "", DefaultPage, DefaultLimit},
		{"explicit values", "page=3&limit=50", 3, 50},
		{"zero page clamps", "page=0&limit=10", DefaultPage, 10},
		{"negative limit clamps", "page=2&limit=-5", 2, DefaultLimit},
		{"excessive limit clamps", "limit=1000", DefaultPage, DefaultLimit},
		{"garbage falls back", "page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/?"+testCase.query, nil)

			params := FromRequest(request)

			assert.Equal(t, testCase.expectedPage, params.Page)
			assert.Equal(t, testCase.expectedLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
}

func TestNewMeta_TotalPages(t *testing.T) {
	meta := NewMeta(2, 20, 41)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)
}

// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateList(t *testing.T) {
	testCases := []struct {
		name             string
		listSize, limit  int
		page             int
		expStart, expEnd int
	}{
		{"SecondPage", 100, 10, 1, 10, 20},
		{"FourthPage", 100, 10, 3, 30, 40},
		{"PageOutOfRange", 100, 10, 10, 0, 0},
		{"EmptyList", 0, 10, 1, 0, 0},
		{"NoLimit", 10, 0, 1, 0, 10},
		{"FirstPage", 10, 10, 0, 0, 10},
		{"LastPartialPage", 25, 10, 2, 20, 25},
		{"NegativeLimit", 10, -1, 0, 0, 0},
		{"NegativePage", 10, 5, -1, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PaginateList(tc.listSize, tc.limit, tc.page)
			assert.Equal(t, tc.expStart, start)
			assert.Equal(t, tc.expEnd, end)
		})
	}
}

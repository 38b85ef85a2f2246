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

func TestUniqueSet(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, UniqueSet([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []string{}, UniqueSet([]string{}))
}

func TestSliceContains(t *testing.T) {
	assert.True(t, SliceContains([]string{"character", "planet"}, "planet"))
	assert.False(t, SliceContains([]int{1, 2}, 3))
}

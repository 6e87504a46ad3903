// Copyright 2024 ecartisans
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantOrderNoGenerator(t *testing.T) {
	t.Parallel()
	g, err := NewMerchantOrderNoGenerator(1)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		mon := g.Generate()
		assert.NotEmpty(t, mon)
		// 藍新對 MerchantOrderNo 的硬性限制
		assert.LessOrEqual(t, len(mon), 30)
		for _, r := range mon {
			assert.True(t, r >= '0' && r <= '9')
		}
		_, dup := seen[mon]
		assert.False(t, dup)
		seen[mon] = struct{}{}
	}
}

func TestNewMerchantOrderNoGeneratorInvalidNode(t *testing.T) {
	t.Parallel()
	_, err := NewMerchantOrderNoGenerator(-1)
	assert.Error(t, err)
}

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

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const expectedSNLength = 32

func TestGenerator_GenerateWith(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name string

		id int64
		// wantLastFour 用戶ID後四位, 不足四位補零
		wantLastFour string
	}{
		{
			name:         "一位數ID",
			id:           1,
			wantLastFour: "0001",
		},
		{
			name:         "後四位非零",
			id:           123456789,
			wantLastFour: "6789",
		},
		{
			name:         "剛好四位",
			id:           9999,
			wantLastFour: "9999",
		},
		{
			name:         "後四位全零",
			id:           123450000,
			wantLastFour: "0000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.id)
			assert.NoError(t, err)
			assert.Contains(t, sn, tc.wantLastFour)
			assert.Len(t, sn, expectedSNLength)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	sn, err := NewGenerator().Generate(123456789)
	assert.NoError(t, err)
	assert.Contains(t, sn, "6789")
	assert.Len(t, sn, expectedSNLength)
}

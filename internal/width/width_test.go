// Copyright 2026 The uncrustify Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EricMusic/uncrustify/internal/width"
)

func TestString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(0, width.String("", 8))
	assert.Equal(3, width.String("int", 8))
	assert.Equal(9, width.String("a\tb", 8))
	assert.Equal(4, width.String("a\tb", 3))
	assert.Equal(3, width.String("/* x\n */", 8))
	assert.Equal(4, width.String("日本", 8))
}

func TestTabColumns(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(width.IsTabColumn(1, 8))
	assert.True(width.IsTabColumn(9, 8))
	assert.False(width.IsTabColumn(8, 8))

	assert.Equal(9, width.NextTabColumn(1, 8))
	assert.Equal(9, width.NextTabColumn(5, 8))
	assert.Equal(17, width.NextTabColumn(9, 8))

	assert.Equal(9, width.RoundUp(9, 8))
	assert.Equal(17, width.RoundUp(10, 8))
	assert.Equal(5, width.RoundUp(4, 4))
	assert.Equal(int64(13), width.RoundUp(int64(12), int64(4)))
}

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

package golden_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/internal/golden"
)

func TestParseCase(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c, err := golden.ParseCase(`
options:
  align_var_def_span: 2
  align_var_def_star_style: include
source: |
  int a;
  char *b;
`)
	require.NoError(t, err)
	assert.Equal(2, c.Options.VarDefSpan)
	assert.Equal(chunk.StarInclude, c.Options.VarDefStarStyle)
	assert.Equal("int a;\nchar *b;\n", c.Source)

	_, err = golden.ParseCase("options:\n  align_bogus: 1\n")
	assert.Error(err)
}

func TestDiff(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Empty(golden.Diff("a\nb\n", "a\nb\n"))

	diff := golden.Diff("a\nc\n", "a\nb\n")
	assert.Contains(diff, "-b")
	assert.Contains(diff, "+c")
}

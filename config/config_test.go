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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMusic/uncrustify/align"
	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/config"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	opts, err := config.Parse([]byte(`
align_var_def_span: 2
align_var_def_star_style: dangle
align_assign_span: 1
align_on_tabstop: true
align_right_cmt_at_col: 40
`), config.YAML)
	require.NoError(t, err)

	assert.Equal(align.Options{
		VarDefSpan:      2,
		VarDefStarStyle: chunk.StarDangle,
		AssignSpan:      1,
		OnTabstop:       true,
		RightCmtAtCol:   40,
	}, opts)
}

func TestParseTOML(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	opts, err := config.Parse([]byte(`
align_pp_define_span = 3
align_pp_define_gap = 4
align_typedef_amp_style = "include"
align_nl_cont = true
`), config.TOML)
	require.NoError(t, err)

	assert.Equal(align.Options{
		PPDefineSpan:    3,
		PPDefineGap:     4,
		TypedefAmpStyle: chunk.StarInclude,
		NLCont:          true,
	}, opts)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	for _, format := range []config.Format{config.YAML, config.TOML} {
		opts, err := config.Parse(nil, format)
		require.NoError(t, err, format)
		assert.Equal(t, align.Options{}, opts, format)
	}
}

func TestUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("align_nonsense: 1\n"), config.YAML)
	assert.Error(t, err)

	_, err = config.Parse([]byte("align_nonsense = 1\n"), config.TOML)
	assert.ErrorIs(t, err, config.ErrInvalidOption)
	assert.ErrorContains(t, err, "align_nonsense")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.NoError(config.Validate(align.Options{VarDefSpan: 1}))

	err := config.Validate(align.Options{
		AssignSpan:       -1,
		RightCmtGap:      -2,
		TypedefStarStyle: chunk.StarStyle(7),
	})
	assert.ErrorIs(err, config.ErrInvalidOption)
	assert.ErrorContains(err, "align_assign_span")
	assert.ErrorContains(err, "align_right_cmt_gap")
	assert.ErrorContains(err, "align_typedef_star_style")

	_, err = config.Parse([]byte("align_assign_span: -1\n"), config.YAML)
	assert.ErrorIs(err, config.ErrInvalidOption)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "align.toml")
	require.NoError(t, os.WriteFile(path, []byte("align_struct_init_span = 2\n"), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(2, opts.StructInitSpan)

	_, err = config.Load(filepath.Join(dir, "align.ini"))
	assert.ErrorIs(err, config.ErrUnknownFormat)

	_, err = config.Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

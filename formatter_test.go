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

package uncrustify_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMusic/uncrustify"
	"github.com/EricMusic/uncrustify/align"
	"github.com/EricMusic/uncrustify/internal/annotate"
	"github.com/EricMusic/uncrustify/internal/golden"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:    "testdata",
		Refresh: "UNCRUSTIFY_REFRESH",
		Test: func(t *testing.T, path string, c golden.Case) string {
			out, err := uncrustify.Format(path, c.Source, c.Options)
			require.NoError(t, err)
			return out
		},
	}
	corpus.Run(t)
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	_, err := uncrustify.Format("bad.c", "int a[3;\n", align.Options{})
	var aerr *annotate.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "bad.c", aerr.Path)
}

func TestFormatFiles(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := uncrustify.Formatter{
		Options:        align.Options{AssignSpan: 1},
		MaxParallelism: 2,
	}
	out, err := f.FormatFiles(context.Background(),
		uncrustify.File{Path: "a.c", Text: "x = 1;\nyyy = 2;\n"},
		uncrustify.File{Path: "b.c", Text: "zz = 3;\nw = 4;\n"},
		uncrustify.File{Path: "c.c", Text: "int q;\n"},
	)
	require.NoError(t, err)
	assert.Equal([]string{
		"x   = 1;\nyyy = 2;\n",
		"zz = 3;\nw  = 4;\n",
		"int q;\n",
	}, out)

	_, err = f.FormatFiles(context.Background(),
		uncrustify.File{Path: "ok.c", Text: "x = 1;\n"},
		uncrustify.File{Path: "bad.c", Text: "}\n"},
	)
	assert.ErrorContains(err, "bad.c")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FormatFiles(ctx, uncrustify.File{Path: "a.c", Text: "x = 1;\n"})
	assert.ErrorIs(err, context.Canceled)
}

func TestColumnsStable(t *testing.T) {
	t.Parallel()

	src := "x = 1;\nyyy = 2;\n"
	opts := align.Options{AssignSpan: 1}

	list := annotate.MustParse(src)
	align.All(list, opts)
	first := list.Columns()

	// Formatting aligned text again leaves every token where it is.
	again := annotate.MustParse(list.Render())
	align.All(again, opts)
	if diff := cmp.Diff(first, again.Columns()); diff != "" {
		t.Errorf("columns changed (-first +again):\n%s", diff)
	}
}

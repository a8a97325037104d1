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

package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/internal/annotate"
)

func TestAppend(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var list chunk.List
	assert.Equal(chunk.Nil, list.Head())
	assert.Nil(list.Get(1))
	assert.Panics(func() { list.At(0) })

	id := list.Append(chunk.Chunk{Kind: chunk.Word, Text: "a\tb", OrigLine: 3, OrigCol: 2})
	assert.Equal(chunk.ID(1), id)
	c := list.At(id)
	assert.Equal(9, c.Len)
	assert.Equal(11, c.OrigColEnd)
	assert.Equal(2, c.Column)

	list.Append(chunk.Chunk{Kind: chunk.Newline, Text: "\n", NLCount: 1, OrigLine: 3, OrigCol: 10})
	assert.Equal(0, list.At(2).Len)
	assert.Equal(id, list.FirstOnLine(3))
	assert.Equal(chunk.Nil, list.FirstOnLine(4))
	assert.Equal([]int{2, 10}, list.Columns())
}

func TestKinds(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("FParenOpen", chunk.FParenOpen.String())
	assert.Equal(chunk.FParenClose, chunk.FParenOpen.Closer())
	assert.Equal(chunk.None, chunk.FParenClose.Closer())
	assert.Equal("chunk.Kind(250)", chunk.Kind(250).String())

	k, ok := chunk.LookupKind("bitcolon")
	assert.True(ok)
	assert.Equal(chunk.BitColon, k)
	_, ok = chunk.LookupKind("nope")
	assert.False(ok)

	assert.True(chunk.Neg.IsNumber())
	assert.False(chunk.Word.IsNumber())
}

func TestFlags(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := chunk.VarDef | chunk.Var1st
	assert.True(f.Has(chunk.VarDef))
	assert.False(f.Has(chunk.VarDef | chunk.Anchor))
	assert.True(f.Any(chunk.VarDef | chunk.Anchor))
	assert.Equal("VarDef|Var1st", f.String())
	assert.Equal("0", chunk.Flags(0).String())

	fl, ok := chunk.LookupFlag("anchor")
	assert.True(ok)
	assert.Equal(chunk.Anchor, fl)
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 1:int 2:a 3:; 4:NL 5:# 6:define 7:X 8:1 9:NL 10:int 11:/* c */ 12:b 13:; 14:NL
	list := annotate.MustParse("int a;\n#define X 1\nint /* c */ b;\n")

	assert.Equal(chunk.ID(4), list.Next(3))
	assert.Equal(chunk.Nil, list.Next(14))
	assert.Equal(chunk.Nil, list.Prev(1))

	pp := list.Preproc()
	assert.Equal(chunk.ID(9), pp.Next(4))
	assert.Equal(chunk.ID(4), pp.Prev(9))
	assert.Equal(chunk.ID(8), pp.Next(7))
	assert.Equal(chunk.Nil, pp.Next(8))
	assert.Equal(chunk.Nil, pp.Prev(5))

	assert.Equal(chunk.ID(12), list.NextNC(10))
	assert.Equal(chunk.ID(10), list.PrevNC(12))
	assert.Equal(chunk.ID(5), list.NextNCNL(3))
	assert.Equal(chunk.ID(8), list.PrevNCNL(10))
	assert.Equal(chunk.ID(9), list.NextNL(5))
	assert.Equal(chunk.ID(4), list.PrevNL(8))
	assert.Equal(chunk.ID(13), list.NextKind(3, chunk.Semicolon, 0))
	assert.Equal(chunk.ID(3), list.PrevKind(13, chunk.Semicolon, chunk.AnyLevel))
	assert.Equal(chunk.ID(10), list.LineStart(12))
}

func TestSkipToMatch(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 1:f 2:( 3:a 4:[ 5:( 6:1 7:) 8:] 9:) 10:; 11:NL
	list := annotate.MustParse("f(a[(1)]);\n")
	assert.Equal(chunk.ID(9), list.SkipToMatch(2))
	assert.Equal(chunk.ID(8), list.SkipToMatch(4))
	assert.Equal(chunk.ID(7), list.SkipToMatch(5))
	assert.Equal(chunk.ID(3), list.SkipToMatch(3))
}

func TestAlignToColumn(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 1:x 2:= 3:1 4:; 5:// c 6:NL 7:y 8:; 9:NL
	list := annotate.MustParse("x = 1; // c\ny;\n")
	assert.Equal(2, list.SpaceColAlign(1, 2))
	assert.Equal(1, list.SpaceColAlign(3, 4))

	list.AlignToColumn(2, 6)
	assert.Equal([]int{1, 6, 8, 9, 11, 15, 1, 2, 3}, list.Columns())
	assert.Equal("x    = 1; // c\ny;\n", list.Render())

	list.IndentToColumn(2, 3)
	assert.Equal(6, list.At(2).Column)
	list.IndentToColumn(2, 7)
	assert.Equal(7, list.At(2).Column)
	assert.Equal(12, list.At(5).Column)
}

func TestAlignKeepsCommentColumn(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// 1:a 2:= 3:1 4:;        5:// c 6:NL
	list := annotate.MustParse("a = 1;        // c\n")
	list.AlignToColumn(2, 5)
	assert.Equal([]int{1, 5, 7, 8, 15, 21}, list.Columns())
	assert.Equal("a   = 1;      // c\n", list.Render())
}

func TestRenderMultiline(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("int a; /* one\n   two */ int b;\n")
	list.AlignToColumn(2, 8)
	assert.Equal("int    a; /* one\n   two */ int b;\n", list.Render())
}

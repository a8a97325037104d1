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

package annotate_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/internal/annotate"
)

// dump renders a list as one "Kind:text" item per chunk, newlines
// collapsed to "NL".
func dump(list *chunk.List) string {
	var out []string
	for _, c := range list.All() {
		if c.IsNewline() {
			out = append(out, c.Kind.String())
			continue
		}
		item := fmt.Sprintf("%v:%s", c.Kind, c.Text)
		if c.Parent != chunk.None {
			item += "^" + c.Parent.String()
		}
		out = append(out, item)
	}
	return strings.Join(out, " ")
}

func find(list *chunk.List, text string) *chunk.Chunk {
	for _, c := range list.All() {
		if c.Text == text {
			return c
		}
	}
	return nil
}

func TestDeclarations(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list, err := annotate.Parse("decl.c", "int   a;    |@ a:var1st\nchar *bbbb; |@ bbbb:var\n", 0)
	require.NoError(t, err)

	assert.Equal("Type:int Word:a Semicolon:; Newline Type:char PtrType:* Word:bbbb Semicolon:; Newline", dump(list))

	a := find(list, "a")
	assert.Equal(7, a.Column)
	assert.True(a.Flags.Has(chunk.VarDef | chunk.Var1st))
	assert.True(find(list, "int").Flags.Has(chunk.StmtStart))
	assert.True(find(list, "char").Flags.Has(chunk.StmtStart))
	assert.Equal(2, find(list, "bbbb").OrigLine)
}

func TestPreprocessor(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("#define FOO(x) (x)\n#define BAR \\\n  -1\nint y;\n")
	assert.Equal(
		"Preproc:# PPDefine:define MacroFunc:FOO FParenOpen:(^MacroFunc Word:x FParenClose:)^MacroFunc "+
			"ParenOpen:( Word:x ParenClose:) Newline "+
			"Preproc:# PPDefine:define Macro:BAR NLCont Neg:- Number:1 Newline "+
			"Type:int Word:y Semicolon:; Newline",
		dump(list))

	for _, c := range list.All() {
		switch {
		case c.Kind == chunk.Newline:
			assert.False(c.Flags.Has(chunk.InPreproc), "%v", c)
		case c.OrigLine < 4:
			assert.True(c.Flags.Has(chunk.InPreproc), "%v", c)
		default:
			assert.False(c.Flags.Has(chunk.InPreproc), "%v", c)
		}
	}
	assert.True(find(list, "int").Flags.Has(chunk.StmtStart))
}

func TestLevels(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("struct s { int a[2]; } v = { 1, 2 };\n")
	var levels, braces []int
	for _, c := range list.All() {
		levels = append(levels, c.Level)
		braces = append(braces, c.BraceLevel)
	}
	//             struct s {  int a  [  2  ]  ;  }  v  =  {  1  ,  2  }  ;  NL
	assert.Equal([]int{0, 0, 0, 1, 1, 1, 2, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0}, levels)
	assert.Equal([]int{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0}, braces)

	open := list.At(3)
	assert.Equal(chunk.Struct, open.Parent)
	assert.True(open.Flags.Has(chunk.OneLiner))
	assert.Equal(chunk.Assign, list.At(13).Parent)
	assert.Equal(chunk.Assign, list.At(17).Parent)
}

func TestCalls(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("int foo(int a, char *b); |@ foo:funcproto a:vardef b:vardef\nif (x) bar(1);\n")
	assert.Equal(
		"Type:int FuncProto:foo FParenOpen:(^FuncProto Type:int Word:a Comma:, Type:char PtrType:* Word:b "+
			"FParenClose:)^FuncProto Semicolon:; Newline "+
			"Keyword:if SParenOpen:(^Keyword Word:x SParenClose:)^Keyword "+
			"FuncCall:bar FParenOpen:(^FuncCall Number:1 FParenClose:)^FuncCall Semicolon:; Newline",
		dump(list))
	assert.True(find(list, "a").Flags.Has(chunk.InFcnDef))
	assert.False(find(list, "x").Flags.Has(chunk.InFcnDef))
}

func TestComments(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("/* a\n   b */ int x; // end\n// whole\nint /* embed */ y;\n")
	assert.Equal(chunk.CommentMulti, list.At(1).Kind)
	assert.Equal(chunk.CommentStart, list.At(1).Parent)
	assert.Equal(1, list.At(1).NLCount)
	assert.Equal(8, list.At(1).OrigColEnd)
	assert.Equal(2, find(list, "int").OrigLine)
	assert.Equal(9, find(list, "int").OrigCol)
	assert.Equal(chunk.CommentEnd, find(list, "// end").Parent)
	assert.Equal(chunk.CommentWhole, find(list, "// whole").Parent)
	assert.Equal(chunk.CommentEmbed, find(list, "/* embed */").Parent)
}

func TestMessages(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("[obj foo:a[1]\n     bar:@\"s\"];\n")
	assert.Equal(
		"SquareOpen:[^OCMsg Word:obj^OCMsg Word:foo^OCMsg OCColon::^OCMsg "+
			"Word:a^OCMsg SquareOpen:[^OCMsg Number:1^OCMsg SquareClose:]^OCMsg Newline "+
			"Word:bar^OCMsg OCColon::^OCMsg String:@\"s\"^OCMsg SquareClose:]^OCMsg Semicolon:; Newline",
		dump(list))
}

func TestTypedefs(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("typedef unsigned long ulong;\ntypedef char *str_t;\ntypedef int (*fn_t)(int);\n")
	assert.True(find(list, "ulong").Flags.Has(chunk.Anchor))
	assert.True(find(list, "str_t").Flags.Has(chunk.Anchor))
	assert.Equal(chunk.PtrType, list.At(list.PrevNC(list.FirstOnLine(2)+3)).Kind)
	assert.False(find(list, "fn_t").Flags.Has(chunk.Anchor))
	assert.True(list.At(list.FirstOnLine(3) + 2).IsTypedefParen())
}

func TestAnnotations(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("a = b = c; |@ =#2:^enum c:number,anchor\nx : 1;    |@ ::bitcolon\n")
	second := list.At(4)
	assert.Equal("=", second.Text)
	assert.Equal(chunk.Enum, second.Parent)
	assert.Equal(chunk.None, list.At(2).Parent)
	assert.Equal(chunk.Number, find(list, "c").Kind)
	assert.True(find(list, "c").Flags.Has(chunk.Anchor))
	assert.Equal(chunk.BitColon, find(list, ":").Kind)
}

func TestRender(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"int   a;  // c\nchar *b;\n",
		"/* a\n   b */ int x;\n\n\n\ny = 1;\n",
		"#define X \\\n  1\n",
		"f(a,b ,  c);\n",
	} {
		assert.Equal(t, src, annotate.MustParse(src).Render())
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src       string
		line, col int
		message   string
	}{
		{src: "f(a;\n", line: 1, col: 2, message: `unmatched "("`},
		{src: "f(a];\n", line: 1, col: 4, message: `"]" does not match "("`},
		{src: "}\n", line: 1, col: 1, message: `unexpected "}"`},
		{src: "int a;\n/* oops\n", line: 2, col: 1, message: "unterminated comment"},
		{src: "s = \"abc\n", line: 1, col: 5, message: "unterminated literal"},
		{src: "int a; |@ b:var1st\n", line: 1, message: `no token "b" (#1) on this line`},
		{src: "int a; |@ a:bogus\n", line: 1, message: `unknown attribute "bogus"`},
		{src: "int a; |@ a:^bogus\n", line: 1, message: `unknown parent kind "bogus"`},
		{src: "int a; |@ a\n", line: 1, message: `annotation for "a" has no attributes`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			_, err := annotate.Parse("bad.c", tt.src, 0)
			var aerr *annotate.Error
			require.True(t, errors.As(err, &aerr), "%v", err)
			assert.Equal(t, "bad.c", aerr.Path)
			assert.Equal(t, tt.line, aerr.Line)
			if tt.col != 0 {
				assert.Equal(t, tt.col, aerr.Col)
			}
			assert.Equal(t, tt.message, aerr.Message)
		})
	}
}

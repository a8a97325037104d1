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

package align_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/EricMusic/uncrustify/align"
	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/internal/annotate"
)

func TestPasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pass func(*chunk.List, align.Options)
		opts align.Options
		src  string
		want string
	}{
		{
			name: "vardefs",
			pass: align.VarDefs,
			opts: align.Options{VarDefSpan: 2, VarDefGap: 1},
			src:  "int a; |@ a:var\nchar *bbbb; |@ bbbb:var\n",
			want: "int   a;\nchar *bbbb;\n",
		},
		{
			name: "vardefs_star_include",
			pass: align.VarDefs,
			opts: align.Options{VarDefSpan: 2, VarDefGap: 1, VarDefStarStyle: chunk.StarInclude},
			src:  "int a; |@ a:var\nchar *bbbb; |@ bbbb:var\n",
			want: "int  a;\nchar *bbbb;\n",
		},
		{
			name: "vardefs_struct_bitfields",
			pass: align.VarDefs,
			opts: align.Options{VarDefSpan: 3, VarStructSpan: 3, VarDefColon: true},
			src: "struct foo {\n" +
				"    char cat; |@ cat:var\n" +
				"    int id : 5; |@ id:var ::bitcolon\n" +
				"    int name_len : 6; |@ name_len:var ::bitcolon\n" +
				"};\n",
			want: "struct foo {\n" +
				"    char cat;\n" +
				"    int  id       : 5;\n" +
				"    int  name_len : 6;\n" +
				"};\n",
		},
		{
			name: "assigns_enum",
			pass: align.Assigns,
			opts: align.Options{AssignSpan: 1, EnumEquSpan: 2},
			src:  "enum e {\n    cat = 1,\n    fred = 2,\n};\n",
			want: "enum e {\n    cat  = 1,\n    fred = 2,\n};\n",
		},
		{
			name: "preprocessor",
			pass: align.Preprocessor,
			opts: align.Options{PPDefineSpan: 3, PPDefineGap: 4},
			src:  "#define A 1\n#define BB 22\n#define CCC 333\n",
			want: "#define A      1\n#define BB     22\n#define CCC    333\n",
		},
		{
			name: "preprocessor_gap_1",
			pass: align.Preprocessor,
			opts: align.Options{PPDefineSpan: 3, PPDefineGap: 1},
			src:  "#define A 1\n#define BB 22\n#define CCC 333\n",
			want: "#define A   1\n#define BB  22\n#define CCC 333\n",
		},
		{
			name: "struct_inits",
			pass: align.StructInits,
			opts: align.Options{StructInitSpan: 3},
			src:  "int a[] = {\n    { 1, 22, 3 },\n    { 444, 5, 66 },\n};\n",
			want: "int a[] = {\n    { 1,   22, 3  },\n    { 444, 5,  66 },\n};\n",
		},
		{
			name: "left_shift",
			pass: align.LeftShift,
			opts: align.Options{LeftShift: true},
			src:  "cout << a\n  << b;\n",
			want: "cout << a\n     << b;\n",
		},
		{
			name: "typedefs",
			pass: align.Typedefs,
			opts: align.Options{TypedefSpan: 1},
			src:  "typedef int foo_t;\ntypedef const char cc_t;\n",
			want: "typedef int        foo_t;\ntypedef const char cc_t;\n",
		},
		{
			name: "func_protos",
			pass: align.FuncProtos,
			opts: align.Options{FuncProtoSpan: 1},
			src:  "int foo(void); |@ foo:funcproto\nvoid bar(int x); |@ bar:funcproto\n",
			want: "int  foo(void);\nvoid bar(int x);\n",
		},
		{
			name: "func_params",
			pass: align.FuncParams,
			opts: align.Options{FuncParams: true},
			src:  "void f(int a, |@ f:funcproto a:var\n       char *bb); |@ bb:var\n",
			want: "void f(int   a,\n       char *bb);\n",
		},
		{
			name: "same_call_params",
			pass: align.SameCallParams,
			opts: align.Options{SameFuncCallParams: true},
			src:  "foo(1, \"a\");\nfoo(200, \"bcd\");\n",
			want: "foo(  1, \"a\");\nfoo(200, \"bcd\");\n",
		},
		{
			name: "right_comments",
			pass: align.RightComments,
			opts: align.Options{RightCmtSpan: 2},
			src:  "int a; // x\nint bbb; // y\n",
			want: "int a;   // x\nint bbb; // y\n",
		},
		{
			name: "right_comments_at_col",
			pass: align.RightComments,
			opts: align.Options{RightCmtSpan: 2, RightCmtAtCol: 20},
			src:  "int a; // x\nint bbb; // y\n",
			want: "int a;             // x\nint bbb;           // y\n",
		},
		{
			name: "nl_conts",
			pass: align.NLConts,
			opts: align.Options{NLCont: true},
			src:  "#define X(a) \\\n    foo(a) \\\n    bar\n",
			want: "#define X(a)    \\\n    foo(a)      \\\n    bar\n",
		},
		{
			name: "oc_msg_colons",
			pass: align.OCMsgColons,
			opts: align.Options{OCMsgColonSpan: 3},
			src:  "x = 0;\n[obj msgWithArg:arg\n  anotherArg:arg2\n  andFormat:fmt];\n",
			want: "x = 0;\n[obj msgWithArg:arg\n     anotherArg:arg2\n      andFormat:fmt];\n",
		},
		{
			name: "oc_msg_strings",
			pass: align.OCMsgStrings,
			opts: align.Options{OCMsgColonSpan: 3, OCMsgStringLiteral: true},
			src:  "x = 0;\n[obj msg:@\"one\",\n    @\"two\",\n      @\"three\"];\n",
			want: "x = 0;\n[obj msg:@\"one\",\n         @\"two\",\n         @\"three\"];\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			list := annotate.MustParse(tt.src)
			tt.pass(list, tt.opts)
			assert.Equal(t, tt.want, list.Render())
		})
	}
}

func TestAgain(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse("int a; |@ a:var\nlong bb; |@ bb:var\n")
	opts := align.Options{VarDefSpan: 2}
	align.VarDefs(list, opts)
	assert.Equal("int  a;\nlong bb;\n", list.Render())

	// Push one member of the group out of line.
	bb := lookup(list, "bb")[0]
	list.AlignToColumn(bb, 9)
	assert.Equal("int  a;\nlong    bb;\n", list.Render())

	align.Again(list, opts)
	assert.Equal("int  a;\nlong bb;\n", list.Render())
}

const sample = "int a = 1; // one |@ a:var\n" +
	"char *bbbb = 22; // two |@ bbbb:var\n"

func sampleOptions() align.Options {
	return align.Options{VarDefSpan: 2, AssignSpan: 2, RightCmtSpan: 2}
}

func TestAll(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse(sample)
	align.All(list, sampleOptions())
	assert.Equal("int   a    = 1;  // one\nchar *bbbb = 22; // two\n", list.Render())
}

func TestAllIdempotent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse(sample)
	align.All(list, sampleOptions())
	first := list.Render()
	align.All(list, sampleOptions())
	assert.Equal(first, list.Render())
}

func TestGroupsShareColumn(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	list := annotate.MustParse(sample)
	align.All(list, sampleOptions())

	groups := 0
	for _, c := range list.All() {
		if !c.Flags.Has(chunk.AlignStart) {
			continue
		}
		groups++
		want := c.Column + c.Align.ColAdj
		for next := c.Align.Next; !next.IsNil(); next = list.At(next).Align.Next {
			n := list.At(next)
			assert.Equal(want, n.Column+n.Align.ColAdj, "group at line %d, %q", c.OrigLine, n.Text)
		}
	}
	assert.Positive(groups)
}

func TestDebugLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	opts := sampleOptions()
	opts.Logger = logger
	align.All(annotate.MustParse(sample), opts)
	assert.Contains(t, buf.String(), "flush")
}

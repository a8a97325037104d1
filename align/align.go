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

package align

import (
	"github.com/charmbracelet/log"

	"github.com/EricMusic/uncrustify/chunk"
	"github.com/EricMusic/uncrustify/internal/width"
)

// All runs every enabled pass over list, in order.
func All(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	o := &a.opts

	if o.TypedefSpan > 0 {
		a.typedefs(o.TypedefSpan)
	}
	if o.LeftShift {
		a.leftShift()
	}
	if o.OCMsgColonSpan > 0 {
		a.ocMsgColons(o.OCMsgColonSpan)
	}
	if o.OCMsgStringLiteral {
		a.ocMsgStrings(o.OCMsgColonSpan)
	}
	if o.VarDefSpan > 0 || o.VarStructSpan > 0 {
		a.varDefBrace(list.Head(), o.VarDefSpan, nil)
	}
	a.assign(list.Head(), o.AssignSpan, o.AssignThresh)
	if o.StructInitSpan > 0 {
		a.structInits()
	}
	if o.FuncProtoSpan > 0 && !o.MixVarProto {
		a.funcProtos(o.FuncProtoSpan)
	}
	if o.OCMsgSpecSpan > 0 {
		a.ocMsgSpecs(o.OCMsgSpecSpan)
	}
	if o.FuncParams {
		a.funcParams()
	}
	if o.SameFuncCallParams {
		a.sameCallParams()
	}
	if o.PPDefineSpan > 0 {
		a.preprocessor()
	}

	// Earlier groups may have been pushed out of line by later passes.
	a.again()

	if o.RightCmtSpan > 0 {
		a.rightComments()
	}
	if o.NLCont {
		a.nlConts()
	}
}

// Typedefs aligns the names introduced by single-line typedefs.
func Typedefs(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.typedefs(a.opts.TypedefSpan)
}

// LeftShift aligns '<<' operators that start continuation lines of a
// statement.
func LeftShift(list *chunk.List, opts Options) {
	newAligner(list, opts).leftShift()
}

// OCMsgColons aligns the selector colons of multi-line message sends.
func OCMsgColons(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.ocMsgColons(a.opts.OCMsgColonSpan)
}

// OCMsgStrings aligns string literals that continue a message-send
// argument on the following lines.
func OCMsgStrings(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.ocMsgStrings(a.opts.OCMsgColonSpan)
}

// VarDefs aligns the first variable name of each declaration in every
// scope, together with bit-field colons and attributes.
func VarDefs(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.varDefBrace(list.Head(), a.opts.VarDefSpan, nil)
}

// Assigns aligns the first '=' of each statement in every scope.
func Assigns(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.assign(list.Head(), a.opts.AssignSpan, a.opts.AssignThresh)
}

// StructInits aligns the columns of multi-line "= { ... }" bodies.
func StructInits(list *chunk.List, opts Options) {
	newAligner(list, opts).structInits()
}

// FuncProtos aligns function prototype names, and optionally one-line
// function definitions and their braces.
func FuncProtos(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.funcProtos(a.opts.FuncProtoSpan)
}

// OCMsgSpecs aligns Objective-C method specs.
func OCMsgSpecs(list *chunk.List, opts Options) {
	a := newAligner(list, opts)
	a.ocMsgSpecs(a.opts.OCMsgSpecSpan)
}

// FuncParams aligns parameter names within declaration parameter lists.
func FuncParams(list *chunk.List, opts Options) {
	newAligner(list, opts).funcParams()
}

// SameCallParams aligns the arguments of consecutive calls to the same
// function.
func SameCallParams(list *chunk.List, opts Options) {
	newAligner(list, opts).sameCallParams()
}

// Preprocessor aligns the values of nearby #define lines.
func Preprocessor(list *chunk.List, opts Options) {
	newAligner(list, opts).preprocessor()
}

// Again re-aligns every group recorded by earlier passes.
func Again(list *chunk.List, opts Options) {
	newAligner(list, opts).again()
}

// RightComments aligns trailing comments.
func RightComments(list *chunk.List, opts Options) {
	newAligner(list, opts).rightComments()
}

// NLConts aligns backslash line continuations.
func NLConts(list *chunk.List, opts Options) {
	newAligner(list, opts).nlConts()
}

// aligner holds the state shared by every pass of one run.
type aligner struct {
	list *chunk.List
	opts Options
	log  *log.Logger
}

func newAligner(list *chunk.List, opts Options) *aligner {
	opts = opts.WithDefaults()
	return &aligner{list: list, opts: opts, log: opts.Logger}
}

// stack returns a started accumulator.
func (a *aligner) stack(span, thresh int) *Accumulator {
	s := NewAccumulator(a.list, a.log)
	s.Start(span, thresh)
	return s
}

// newLines advances every accumulator by n lines.
func newLines(n int, stacks ...*Accumulator) {
	for _, s := range stacks {
		s.NewLines(n)
	}
}

// end ends every accumulator.
func end(stacks ...*Accumulator) {
	for _, s := range stacks {
		s.End()
	}
}

// tabColumn rounds col up to a tab stop.
func (a *aligner) tabColumn(col int) int {
	return width.RoundUp(max(col, 1), a.opts.OutputTabSize)
}

// again re-aligns every group whose members were linked by a flush.
func (a *aligner) again() {
	a.log.Debug("align again")

	for id, c := range a.list.All() {
		if c.Align.Next.IsNil() || !c.Flags.Has(chunk.AlignStart) ||
			c.Align.MsgAlign || c.Align.StrAlign {
			continue
		}

		s := a.stack(100, 0)
		s.RightAlign = c.Align.RightAlign
		s.StarStyle = c.Align.StarStyle
		s.AmpStyle = c.Align.AmpStyle
		s.Gap = c.Align.Gap

		s.Add(c.Align.Start)
		next := c.Align.Next
		for n := 0; !next.IsNil() && n < a.list.Len(); n++ {
			s.Add(a.list.At(next).Align.Start)
			next = a.list.At(next).Align.Next
		}
		a.log.Debug("again", "line", c.OrigLine, "text", c.Text, "id", id, "len", s.Len())
		s.End()
	}
}

// column collects chunks that are moved to one column together, without
// the anchor and threshold logic of an [Accumulator].
type column struct {
	ids []chunk.ID
	max int
}

// add adds id, keeping at least pad columns from the chunk before it.
// Unless squeeze is set, a chunk never moves left.
func (a *aligner) add(g *column, id chunk.ID, pad int, squeeze bool) {
	c := a.list.At(id)

	var minCol int
	prev := a.list.Get(a.list.Prev(id))
	switch {
	case prev == nil || prev.IsNewline():
		minCol = c.Column
		if squeeze {
			minCol = 1
		}
	default:
		if prev.Kind == chunk.CommentMulti {
			minCol = prev.OrigColEnd + pad
		} else {
			minCol = prev.Column + prev.Len + pad
		}
		if !squeeze {
			minCol = max(minCol, c.Column)
		}
	}

	if len(g.ids) == 0 {
		g.max = 0
	}
	g.ids = append(g.ids, id)
	g.max = max(g.max, minCol)
}

// flush moves every chunk in g to col. A single chunk is moved only if
// single is set.
func (a *aligner) flush(g *column, col int, single bool) {
	if a.opts.OnTabstop {
		col = a.tabColumn(col)
	}

	if len(g.ids) > 1 || (single && len(g.ids) == 1) {
		for _, id := range g.ids {
			if a.opts.RightCmtAtCol == 0 {
				a.list.IndentToColumn(id, col)
			} else {
				a.list.AlignToColumn(id, col)
			}
			c := a.list.At(id)
			c.Flags |= chunk.WasAligned
			a.log.Debug("flush column", "line", c.OrigLine, "text", c.Text, "col", c.Column)
		}
	}
	g.ids = g.ids[:0]
}

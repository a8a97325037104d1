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

import "github.com/EricMusic/uncrustify/chunk"

// commentGroup separates comments that follow a closing brace or an #endif
// from ordinary trailing comments.
type commentGroup int

const (
	commentRegular commentGroup = iota
	commentBrace
	commentEndif
)

// rightComments marks the comments that may be aligned as trailing
// comments, then aligns runs of them.
//
// A comment after code qualifies unless it sits within RightCmtGap columns
// of that code. A comment alone on its line qualifies if it is further
// right than its brace level would indent it.
func (a *aligner) rightComments() {
	a.log.Debug("right comments", "span", a.opts.RightCmtSpan)

	for id, c := range a.list.All() {
		if c.Kind != chunk.Comment && c.Kind != chunk.CommentCPP {
			continue
		}

		switch c.Parent {
		case chunk.CommentEnd:
			prev := a.list.Get(a.list.Prev(id))
			if prev != nil && c.Column <= prev.OrigColEnd+a.opts.RightCmtGap {
				a.log.Debug("end comment kept", "line", c.OrigLine, "col", c.Column)
				continue
			}
			c.Flags |= chunk.RightComment
		case chunk.CommentWhole:
			indent := 1 + c.BraceLevel*a.opts.IndentColumns
			if c.Column > indent+a.opts.RightCmtGap {
				c.Flags |= chunk.RightComment
			}
		default:
			continue
		}
		if c.Flags.Has(chunk.RightComment) {
			a.log.Debug("right comment", "line", c.OrigLine, "col", c.Column)
		}
	}

	for id := a.list.Head(); !id.IsNil(); {
		if a.list.At(id).Flags.Has(chunk.RightComment) {
			id = a.trailingComments(id)
		} else {
			id = a.list.Next(id)
		}
	}
}

// commentGroupOf classifies the comment at id.
func (a *aligner) commentGroupOf(id chunk.ID) commentGroup {
	if a.opts.RightCmtMix {
		return commentRegular
	}
	prev := a.list.Get(a.list.Prev(id))
	if prev == nil {
		return commentRegular
	}

	switch prev.Kind {
	case chunk.PPEndif, chunk.PPElse, chunk.BraceClose:
		if a.list.At(id).Column-(prev.Column+prev.Len) < 3 {
			if prev.Kind == chunk.PPEndif {
				return commentEndif
			}
			return commentBrace
		}
	}
	return commentRegular
}

// trailingComments aligns the run of right comments starting at start.
// The run ends after RightCmtSpan lines without one. Returns the chunk to
// continue from.
func (a *aligner) trailingComments(start chunk.ID) chunk.ID {
	atCol := a.opts.RightCmtAtCol
	group := a.commentGroupOf(start)

	var g column
	lines := 0
	id := start
	for ; !id.IsNil() && lines < a.opts.RightCmtSpan; id = a.list.Next(id) {
		c := a.list.At(id)
		if c.Flags.Has(chunk.RightComment) && a.commentGroupOf(id) == group {
			c.Column = max(c.Column, 1+c.BraceLevel*a.opts.IndentColumns, atCol)
			a.add(&g, id, 1, atCol != 0)
			g.max = max(g.max, atCol)
			lines = 0
		}
		if c.IsNewline() {
			lines += c.NLCount
		}
	}

	a.flush(&g, g.max, atCol != 0)
	return a.list.Next(id)
}

// nlConts aligns every run of backslash continuations to one tab stop
// past the longest line.
func (a *aligner) nlConts() {
	a.log.Debug("nl conts")

	for id := a.list.Head(); !id.IsNil(); {
		if a.list.At(id).Kind != chunk.NLCont {
			id = a.list.NextKind(id, chunk.NLCont, chunk.AnyLevel)
			continue
		}
		id = a.nlCont(id)
	}
}

// nlCont aligns the continuations from start up to the next real newline or
// multi-line comment, and returns that chunk.
func (a *aligner) nlCont(start chunk.ID) chunk.ID {
	a.log.Debug("nl cont", "line", a.list.At(start).OrigLine)

	var g column
	id := start
	for ; !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		if c.Kind == chunk.Newline || c.Kind == chunk.CommentMulti {
			break
		}
		if c.Kind == chunk.NLCont {
			a.add(&g, id, 1, true)
		}
	}

	col := a.tabColumn(g.max)
	for _, cont := range g.ids {
		c := a.list.At(cont)
		c.Flags |= chunk.WasAligned
		c.Column = col
	}
	return id
}

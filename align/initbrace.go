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
	"fmt"
	"strings"

	"github.com/EricMusic/uncrustify/chunk"
)

// slot is one column of an initializer body: the position of a '=', '{',
// '}' or ',' and the width up to the token after it.
type slot struct {
	kind  chunk.Kind
	col   int
	width int
}

// initBody is the column signature of one initializer body.
type initBody struct {
	slots []slot
	c99   bool
}

func (b *initBody) String() string {
	var out strings.Builder
	for i, s := range b.slots {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%d/%d=%v", s.col, s.width, s.kind)
	}
	return out.String()
}

// shiftOut moves slot idx and every slot after it right by n columns.
func (b *initBody) shiftOut(idx, n int) {
	for i := idx; i < len(b.slots); i++ {
		b.slots[i].col += n
	}
}

// structInits aligns every multi-line initializer body.
func (a *aligner) structInits() {
	a.log.Debug("struct inits")

	for id := a.list.Head(); !id.IsNil(); id = a.list.NextKind(id, chunk.BraceOpen, chunk.AnyLevel) {
		prev := a.list.Get(a.list.PrevNCNL(id))
		if prev != nil && prev.Kind == chunk.Assign && a.list.At(id).Kind == chunk.BraceOpen {
			a.initBrace(id)
		}
	}
}

// scanLine records or matches the slots of one line of an initializer
// body. The first line that is scanned defines the signature; later lines
// push the signature's columns right where they need more room. Returns
// the chunk that ended the line.
//
// Columns are measured as if the line were packed to minimum spacing from
// its first token, so a body that is already aligned scans the same as the
// body it was aligned from.
func (a *aligner) scanLine(body *initBody, start chunk.ID) chunk.ID {
	sc := a.list.Get(start)
	if sc == nil {
		return chunk.Nil
	}

	// Skip a C99 "[index] =" designator.
	if sc.Kind == chunk.SquareOpen {
		sc.Parent = chunk.TSquare
		start = a.list.NextNCNL(a.list.NextKind(start, chunk.Assign, sc.Level))
		body.c99 = true
		if sc = a.list.Get(start); sc == nil {
			return chunk.Nil
		}
	}

	idx := 0
	prevMatch, prevCol := chunk.Nil, 0
	id, col := start, sc.Column
	for !id.IsNil() {
		c := a.list.At(id)
		if c.IsNewline() || c.Level < sc.Level {
			break
		}

		next := a.list.Next(id)
		switch c.Kind {
		case chunk.Assign, chunk.BraceOpen, chunk.BraceClose, chunk.Comma:
			if n := a.list.Get(next); n == nil || n.IsComment() {
				break
			}
			w := a.list.SpaceColAlign(id, next)

			if idx >= len(body.slots) {
				body.slots = append(body.slots, slot{kind: c.Kind, col: col, width: w})
				idx++
			} else if body.slots[idx].kind == c.Kind {
				switch {
				case prevMatch.IsNil():
					if col > body.slots[idx].col {
						body.shiftOut(idx, col-body.slots[idx].col)
					}
				case idx > 0:
					need := col - prevCol
					have := body.slots[idx].col - body.slots[idx-1].col
					if have < need {
						body.shiftOut(idx, need-have)
					}
				}
				idx++
			}
			prevMatch, prevCol = id, col
		}
		next = a.list.NextNC(id)
		col += a.packedWidth(id, next)
		id = next
	}
	return id
}

// packedWidth returns how far to start from from when every chunk in
// between keeps only its minimum spacing.
func (a *aligner) packedWidth(from, to chunk.ID) int {
	n := 0
	for id := from; !id.IsNil() && id != to; {
		next := a.list.Next(id)
		if next.IsNil() {
			break
		}
		n += a.list.SpaceColAlign(id, next)
		id = next
	}
	return n
}

// initBrace aligns the body of the "= {" initializer opened at start on
// its first line's signature:
//
//	struct foo b[] = {
//		{ .id = 1,   .name = "text 1" },
//		{ .id = 567, .name = "text 2" },
//	};
//
// A line whose tokens stop matching the signature is aligned up to the
// mismatch only.
func (a *aligner) initBrace(start chunk.ID) {
	sc := a.list.At(start)
	a.log.Debug("init brace", "line", sc.OrigLine, "col", sc.Column)

	body := &initBody{}
	id := a.scanLine(body, a.list.NextNCNL(start))
	if c := a.list.Get(id); c == nil || (c.Kind == chunk.BraceClose && c.Parent == chunk.Assign) {
		// A single line.
		return
	}

	for {
		id = a.scanLine(body, id)
		if c := a.list.Get(id); c != nil {
			a.log.Debug("init brace signature", "line", c.OrigLine, "slots", body)
		}
		for c := a.list.Get(id); c != nil && c.IsNewline(); c = a.list.Get(id) {
			id = a.list.Next(id)
		}
		if c := a.list.Get(id); c == nil || c.Level <= sc.Level {
			break
		}
	}
	a.log.Debug("init brace signature", "line", sc.OrigLine, "slots", body)

	if a.opts.OnTabstop && len(body.slots) > 0 && body.slots[0].kind == chunk.Assign {
		body.slots[0].col = a.tabColumn(body.slots[0].col)
	}

	num := chunk.Nil
	idx := 0
	for id = a.list.Next(start); !id.IsNil(); {
		c := a.list.At(id)
		if c.Level <= sc.Level {
			break
		}

		if idx == 0 && c.Kind == chunk.SquareOpen {
			id = a.list.Next(a.list.NextKind(id, chunk.Assign, c.Level))
			continue
		}

		next := id
		if idx < len(body.slots) && c.Kind == body.slots[idx].kind {
			s := body.slots[idx]
			if idx == 0 && body.c99 {
				if prev := a.list.Get(a.list.Prev(id)); prev != nil && prev.IsNewline() {
					c.Flags |= chunk.DontIndent
				}
			}

			if !num.IsNil() {
				// Right-align the number that was waiting for this slot.
				diff := c.Column - a.list.At(num).Column
				a.moveLine(num, s.col-diff)
				num = chunk.Nil
			}

			if c.Kind == chunk.Comma {
				// The token after a comma takes the slot's column.
				next = a.list.Next(id)
				if n := a.list.Get(next); n != nil && !n.IsNewline() {
					if idx < len(body.slots)-1 && a.opts.NumberLeft && n.Kind.IsNumber() {
						num = next
					} else {
						a.moveLine(next, s.col+s.width)
					}
				}
			} else {
				a.moveLine(id, s.col)
				if idx < len(body.slots)-1 && a.opts.NumberLeft {
					next = a.list.Next(id)
					if n := a.list.Get(next); n != nil && !n.IsNewline() && n.Kind.IsNumber() {
						num = next
					}
				}
			}
			idx++
		}

		if c.IsNewline() || (a.list.Get(next) != nil && a.list.At(next).IsNewline()) {
			idx = 0
		}
		id = a.list.Next(id)
	}
}

// moveLine moves id to col, with the rest of its line, and marks it.
func (a *aligner) moveLine(id chunk.ID, col int) {
	a.list.AlignToColumn(id, col)
	c := a.list.At(id)
	c.Flags |= chunk.WasAligned
	a.log.Debug("init brace align", "line", c.OrigLine, "text", c.Text, "col", c.Column)
}

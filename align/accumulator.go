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
	"io"

	"github.com/charmbracelet/log"

	"github.com/EricMusic/uncrustify/chunk"
)

// noColumn is the minimum column of an empty group.
const noColumn = 9999

// Accumulator collects tokens that should share an output column and moves
// them there.
//
// Tokens are offered line by line with [Accumulator.Add]; [Accumulator.NewLines]
// advances the line counter. A group closes when more than Span lines pass
// without a new member, or on [Accumulator.Flush] and [Accumulator.End].
//
// A token whose column is more than Thresh columns away from the group's
// current column is set aside. It rejoins the group if a later member widens
// the column enough to bring it within reach.
type Accumulator struct {
	list *chunk.List
	log  *log.Logger

	Span, Thresh int

	// Minimum spacing between a token and its anchor.
	Gap int
	// Align the right edges of tokens instead of their left edges.
	RightAlign bool
	// How '*' and '&' between the anchor and a token are treated.
	StarStyle, AmpStyle chunk.StarStyle

	// Message-send modes; see [Accumulator.AddMsg].
	MsgAlign, StrAlign bool

	aligned, skipped []entry

	minCol, maxCol   int
	seqnum, nlSeqnum int
	msgLines         int
}

// MsgLine describes the line of a multi-line message send that a token
// belongs to.
type MsgLine struct {
	Line     int // One-based line within the send; zero for strings.
	Start    int // Column of the first token on the line.
	End      int // Column of the newline ending the line.
	RefColon int // Column of the line's reference colon, or of the first string.
}

type entry struct {
	id     chunk.ID
	seqnum int
}

// NewAccumulator returns an accumulator over list. Call
// [Accumulator.Start] before use.
func NewAccumulator(list *chunk.List, logger *log.Logger) *Accumulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Accumulator{list: list, log: logger}
}

// Start discards all state and begins a new group.
func (a *Accumulator) Start(span, thresh int) {
	a.log.Debug("start", "span", span, "thresh", thresh)

	a.aligned = a.aligned[:0]
	a.skipped = a.skipped[:0]
	a.Span = span
	a.Thresh = thresh
	a.minCol = noColumn
	a.maxCol = 0
	a.nlSeqnum = 0
	a.seqnum = 0
	a.Gap = 0
	a.RightAlign = false
	a.MsgAlign = false
	a.StrAlign = false
	a.msgLines = 0
	a.StarStyle = chunk.StarIgnore
	a.AmpStyle = chunk.StarIgnore
}

// Len returns the number of tokens waiting to be aligned.
func (a *Accumulator) Len() int {
	return len(a.aligned)
}

// Empty returns whether no tokens are waiting to be aligned.
func (a *Accumulator) Empty() bool {
	return len(a.aligned) == 0
}

// Add offers a token to the group.
func (a *Accumulator) Add(id chunk.ID) {
	a.add(id, 0, MsgLine{})
}

// AddMsg offers a token that belongs to a message send. With MsgAlign set,
// the first line's reference colon fixes the column every other line is
// moved to; with StrAlign set, every token moves to the first token's
// RefColon.
func (a *Accumulator) AddMsg(id chunk.ID, line MsgLine) {
	a.add(id, 0, line)
}

func (a *Accumulator) add(start chunk.ID, seqnum int, msg MsgLine) {
	if seqnum == 0 {
		seqnum = a.seqnum
	}
	if msg.Line > a.msgLines {
		a.msgLines++
	}

	sc := a.list.At(start)
	if !a.admits(sc.Column) {
		a.skipped = append(a.skipped, entry{start, seqnum})
		a.log.Debug("add skipped",
			"seq", seqnum, "nlseq", a.nlSeqnum, "line", sc.OrigLine,
			"col", sc.Column, "max", a.maxCol, "thresh", a.Thresh)
		return
	}

	a.nlSeqnum = max(a.nlSeqnum, seqnum)

	ref := a.anchor(start)
	ali := a.alignee(start)
	a.tighten(ref, start)

	c := a.list.At(ali)
	c.Align.Ref = ref
	c.Align.Start = start
	c.Align.MsgAlign = a.MsgAlign
	c.Align.StrAlign = a.StrAlign
	c.Align.MsgLines = a.msgLines
	c.Align.MsgLine = msg.Line
	c.Align.MsgLineStart = msg.Start
	c.Align.MsgLineEnd = msg.End
	c.Align.MsgRefColon = msg.RefColon

	colAdj, gap := a.measure(ali)
	c.Align.ColAdj = colAdj
	end := c.Column + colAdj
	if gap < a.Gap {
		end += a.Gap - gap
	}

	a.aligned = append(a.aligned, entry{ali, seqnum})
	a.minCol = min(a.minCol, end)
	if end <= a.maxCol {
		a.log.Debug("add aligned",
			"seq", seqnum, "nlseq", a.nlSeqnum, "line", c.OrigLine,
			"col", c.Column, "end", end, "max", a.maxCol, "min", a.minCol)
		return
	}

	a.log.Debug("add aligned",
		"seq", seqnum, "nlseq", a.nlSeqnum, "line", c.OrigLine,
		"col", c.Column, "old_max", a.maxCol, "max", end, "min", a.minCol)
	a.maxCol = end
	a.reAddSkipped()
}

// admits applies the threshold test to a token at col.
func (a *Accumulator) admits(col int) bool {
	if a.maxCol == 0 || a.Thresh == 0 {
		return true
	}
	col += a.Gap
	return col <= a.maxCol+a.Thresh &&
		(col >= a.maxCol-a.Thresh || col-a.Gap >= a.minCol)
}

// anchor finds the last token of the construct to the left of start,
// skipping the qualifiers in between.
func (a *Accumulator) anchor(start chunk.ID) chunk.ID {
	prev := a.list.Prev(start)
	for !prev.IsNil() && a.list.At(prev).IsQualifier() {
		prev = a.list.Prev(prev)
	}
	if prev.IsNil() {
		return a.list.Head()
	}
	if a.list.At(prev).IsNewline() {
		return a.list.Next(prev)
	}
	return prev
}

// alignee finds the token that actually moves: start itself, or the first
// qualifier before it when the qualifier styles include them.
func (a *Accumulator) alignee(start chunk.ID) chunk.ID {
	ali := start
	if a.StarStyle != chunk.StarIgnore {
		prev := a.list.Prev(ali)
		for c := a.list.Get(prev); c != nil && c.IsStar(); c = a.list.Get(prev) {
			ali = prev
			prev = a.list.Prev(ali)
		}
		if c := a.list.Get(prev); c != nil && c.IsTypedefParen() {
			ali = prev
		}
	}
	if a.AmpStyle != chunk.StarIgnore {
		prev := a.list.Prev(ali)
		for c := a.list.Get(prev); c != nil && c.IsAddr(); c = a.list.Get(prev) {
			ali = prev
			prev = a.list.Prev(ali)
		}
	}
	return ali
}

// tighten closes up the tokens between ref and start to their minimum
// spacing.
func (a *Accumulator) tighten(ref, start chunk.ID) {
	col := a.list.At(ref).Column
	for id := ref; id != start; {
		next := a.list.Next(id)
		if next.IsNil() {
			return
		}
		col += a.list.SpaceColAlign(id, next)
		if a.list.At(next).Column != col {
			a.list.AlignToColumn(next, col)
		}
		id = next
	}
}

// measure computes the column adjustment and the gap to the anchor of an
// aligned token.
func (a *Accumulator) measure(ali chunk.ID) (colAdj, gap int) {
	c := a.list.At(ali)
	ref := a.list.At(c.Align.Ref)
	if ali != c.Align.Ref {
		gap = c.Column - (ref.Column + ref.Len)
	}

	t := c
	if t.IsTypedefParen() {
		t = a.list.Get(a.list.Next(ali))
	}
	if t != nil && ((t.IsStar() && a.StarStyle == chunk.StarDangle) ||
		(t.IsAddr() && a.AmpStyle == chunk.StarDangle)) {
		start := a.list.At(c.Align.Start)
		colAdj = start.Column - c.Column
		gap = start.Column - (ref.Column + ref.Len)
	}
	return colAdj, gap
}

// reAddSkipped offers every set-aside token again.
func (a *Accumulator) reAddSkipped() {
	if len(a.skipped) == 0 {
		return
	}

	pending := a.skipped
	a.skipped = nil
	for _, e := range pending {
		a.log.Debug("re-add skipped", "seq", e.seqnum)
		a.add(e.id, e.seqnum, MsgLine{})
	}
	a.NewLines(0)
}

// NewLines advances the line counter by n, closing the group if it has
// gone more than Span lines without a new member.
func (a *Accumulator) NewLines(n int) {
	if a.Empty() {
		return
	}
	a.seqnum += n
	if a.seqnum > a.nlSeqnum+a.Span {
		a.log.Debug("newlines", "n", n, "flush", true)
		a.Flush()
	}
}

// Flush aligns the waiting tokens and starts a new group. Set-aside tokens
// from lines after the last aligned one are offered to the new group.
func (a *Accumulator) Flush() {
	a.log.Debug("flush", "min", a.minCol, "max", a.maxCol, "len", len(a.aligned))

	a.maxCol = 0
	var fixPt, refStart int
	haveRef := false

	for i, e := range a.aligned {
		c := a.list.At(e.id)
		colAdj, gap := a.measure(e.id)

		if a.RightAlign {
			start := a.list.At(c.Align.Start)
			width := start.Len
			if start.Kind == chunk.Neg {
				if n := a.list.Get(a.list.Next(c.Align.Start)); n != nil && n.Kind == chunk.Number {
					width += n.Len
				}
			}
			colAdj += width
		}

		switch {
		case a.MsgAlign:
			if c.Align.MsgLine == 1 {
				fixPt, refStart, haveRef = c.Align.MsgRefColon, c.Align.MsgLineStart, true
				colAdj = 0
			} else {
				colAdj = (fixPt - c.Align.MsgRefColon) + 1 + (c.Align.MsgLineStart - refStart)
			}
		case a.StrAlign:
			if i == 0 {
				fixPt = c.Align.MsgRefColon
			}
			colAdj = fixPt
		}
		c.Align.ColAdj = colAdj

		end := c.Column + colAdj
		if gap < a.Gap {
			end += a.Gap - gap
		}
		a.maxCol = max(a.maxCol, end)
	}

	for i, e := range a.aligned {
		c := a.list.At(e.id)
		if i == 0 {
			c.Flags |= chunk.AlignStart
			c.Align.RightAlign = a.RightAlign
			c.Align.StarStyle = a.StarStyle
			c.Align.AmpStyle = a.AmpStyle
			c.Align.Gap = a.Gap
		}
		c.Align.Next = chunk.Nil
		if i+1 < len(a.aligned) {
			c.Align.Next = a.aligned[i+1].id
		}

		var col int
		switch {
		case a.MsgAlign:
			c.Align.MsgAlign = true
			if c.Align.MsgLine <= 1 || !haveRef {
				continue
			}
			col = refStart + c.Align.ColAdj - 1
		case a.StrAlign:
			c.Align.StrAlign = true
			col = c.Align.ColAdj
		default:
			col = a.maxCol - c.Align.ColAdj
		}

		a.log.Debug("flush align", "line", c.OrigLine, "text", c.Text, "col", col, "adj", c.Align.ColAdj)
		a.list.AlignToColumn(e.id, col)
	}

	last := 0
	if n := len(a.aligned); n > 0 {
		last = a.aligned[n-1].seqnum
		a.aligned = a.aligned[:0]
	}
	a.minCol = noColumn
	a.maxCol = 0

	if len(a.skipped) == 0 {
		a.nlSeqnum = a.seqnum
		return
	}

	kept := a.skipped[:0]
	for _, e := range a.skipped {
		if e.seqnum >= last {
			kept = append(kept, e)
		}
	}
	a.skipped = kept
	a.reAddSkipped()
}

// Reset discards the group without aligning it.
func (a *Accumulator) Reset() {
	a.aligned = a.aligned[:0]
	a.skipped = a.skipped[:0]
}

// End aligns whatever is waiting and discards the rest.
func (a *Accumulator) End() {
	if !a.Empty() {
		a.Flush()
	}
	a.Reset()
}

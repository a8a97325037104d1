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

// ocMsgColons aligns the selector colons of Objective-C message sends that
// span several lines:
//
//	[obj msgWithArg:arg
//	      anotherArg:arg2
//	       andFormat:fmt];
//
// Each later line is moved so that its colon lands under the first line's
// reference colon, which is the first or the last colon of that line
// depending on OCMsgOnFirstColon.
//
// Nested sends that span lines are aligned to the outermost send's
// reference colon.
func (a *aligner) ocMsgColons(span int) {
	a.log.Debug("oc msg colons", "span", span)

	for id := a.list.Head(); !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		if c.Kind == chunk.SquareOpen && c.Parent == chunk.OCMsg {
			if id = a.ocMsgColon(id, span); id.IsNil() {
				return
			}
		}
	}
}

// msgState tracks the line of a message send being scanned.
type msgState struct {
	line      int // One-based line within the send.
	noColon   int // Lines in a row without a colon.
	refCol    int
	start     int
	end       int
	skipped   int // The last line found to be aligned already.
	colon     chunk.ID
	hasColon  bool
	multi     bool
	firstLine bool
}

// ocMsgColon aligns the send opened at open and returns the chunk the scan
// stopped at.
func (a *aligner) ocMsgColon(open chunk.ID, span int) chunk.ID {
	w := a.list.Preproc()
	s := a.stack(span, 0)
	s.MsgAlign = true

	level := a.list.At(open).Level
	onFirst := a.opts.OCMsgOnFirstColon
	st := msgState{line: 1, firstLine: true}

	id := w.NextNCNL(open)
scan:
	for !id.IsNil() {
		c := a.list.At(id)
		if c.Level == level {
			break
		}

		switch {
		case c.Parent == chunk.CommentWhole:
			st.noColon++
			if st.noColon >= span {
				break scan
			}

		case c.IsNewline():
			if !st.colon.IsNil() {
				st.end = c.Column
				st.start = a.lineStartCol(st.colon, st.start)
				a.addMsgGroup(s, st.colon, st.line, st.start, st.end, a.list.At(st.colon).Column)
				st.colon = chunk.Nil
			}
			if st.hasColon {
				st.noColon = 0
			} else {
				st.noColon++
			}
			st.line++
			st.firstLine, st.hasColon, st.multi = false, false, false
			if c.Level <= level {
				break scan
			}

		case c.Kind == chunk.OCColon && (a.nextLineHasColon(id, level) || a.prevLineHasColon(id, level)):
			st.hasColon = true

			switch {
			case st.firstLine && onFirst:
				st.colon = id
				st.refCol = c.Column
				id = a.endOfMsgLine(id, level)
				if id.IsNil() {
					break scan
				}

			case st.firstLine:
				last := chunk.Nil
				if nl := w.NextNL(id); !nl.IsNil() {
					last = w.PrevKind(nl, chunk.OCColon, chunk.AnyLevel)
				}
				if last.IsNil() {
					break scan
				}
				st.colon = last
				st.refCol = a.list.At(last).Column
				id = last

			case st.noColon < span && st.line != st.skipped:
				nl := w.NextNL(id)
				multi := !onFirst && (st.multi || a.colonsOnLine(id, c.Level) > 1)

				// A line that already has its colon under the reference colon
				// stays where it is.
				ref := id
				if multi {
					ref = chunk.Nil
					if !nl.IsNil() {
						ref = w.PrevKind(nl, chunk.OCColon, chunk.AnyLevel)
					}
				}
				if r := a.list.Get(ref); r != nil && r.Column == st.refCol {
					a.log.Debug("oc msg line aligned", "line", c.OrigLine)
					st.skipped = st.line
					break
				}

				st.start = a.lineStartCol(id, st.start)
				if !nl.IsNil() {
					st.end = a.list.At(nl).Column
				}

				switch {
				case onFirst:
					a.addMsgGroup(s, id, st.line, st.start, st.end, c.Column)
					id = a.endOfMsgLine(id, level)
					if id.IsNil() {
						break scan
					}

				case multi:
					st.multi = true
					last := ref
					refColon := 0
					if !last.IsNil() {
						refColon = a.list.At(last).Column
					}
					a.addMsgGroup(s, id, st.line, st.start, st.end, refColon)
					if last.IsNil() {
						break scan
					}
					id = last

				default:
					a.addMsgGroup(s, id, st.line, st.start, st.end, c.Column)
				}
			}
		}
		id = w.Next(id)
	}

	s.End()
	return id
}

// addMsgGroup adds the colon of the first line of a send, or the selector
// word before the colon on any later line.
func (a *aligner) addMsgGroup(s *Accumulator, colon chunk.ID, line, start, end, refColon int) {
	msg := MsgLine{Line: line, Start: start, End: end, RefColon: refColon}
	a.log.Debug("oc msg add", "line", line, "start", start, "end", end, "ref", refColon)

	if line == 1 {
		s.AddMsg(colon, msg)
		return
	}
	prev := a.list.Prev(colon)
	if c := a.list.Get(prev); c != nil && (c.Kind == chunk.Word || c.Kind == chunk.Type) {
		s.AddMsg(prev, msg)
	}
}

// lineStartCol returns the column of the first chunk on the line of id, or
// old if the line has no newline before it.
func (a *aligner) lineStartCol(id chunk.ID, old int) int {
	w := a.list.Preproc()
	if w.PrevNL(id).IsNil() {
		return old
	}
	first := a.list.LineStart(id)
	if c := a.list.Get(first); c != nil && c.IsComment() {
		first = w.NextNC(first)
	}
	if c := a.list.Get(first); c != nil {
		return c.Column
	}
	return old
}

// endOfMsgLine returns the last non-comment chunk before the end of the
// line of id, or before the send's closing bracket.
func (a *aligner) endOfMsgLine(id chunk.ID, level int) chunk.ID {
	w := a.list.Preproc()
	for id = w.NextNC(id); !id.IsNil(); id = w.NextNC(id) {
		c := a.list.At(id)
		if (c.Kind == chunk.SquareClose && c.Level == level) || c.Kind == chunk.Newline {
			return w.PrevNC(id)
		}
	}
	return chunk.Nil
}

// lineHasColon returns whether the line starting at id holds a selector
// colon of the send at level. If id is a newline, the line before it is
// examined instead.
func (a *aligner) lineHasColon(id chunk.ID, level int) bool {
	w := a.list.Preproc()
	pc := id
	if a.list.At(pc).Kind == chunk.Newline {
		line := a.list.At(pc).OrigLine
		if pc = w.PrevNL(pc); pc.IsNil() {
			return false
		}
		if a.list.At(pc).OrigLine < line-1 {
			if pc = w.NextNC(w.NextNCNL(pc)); pc.IsNil() {
				return false
			}
		}
		if a.list.At(pc).Level <= level {
			if pc = w.NextNC(w.NextKind(pc, chunk.SquareOpen, level)); pc.IsNil() {
				return false
			}
		}
	}

	pcc := a.list.At(pc)
	if pcc.Kind == chunk.Comment && pcc.Parent == chunk.CommentWhole {
		return false
	}
	if pcc.Level <= level {
		return false
	}

	for tmp := w.Next(id); !tmp.IsNil(); tmp = w.Next(tmp) {
		c := a.list.At(tmp)
		if c.Parent != chunk.OCMsg || c.Kind == chunk.Newline || c.Kind == chunk.Semicolon {
			return false
		}
		if c.Kind == chunk.OCColon {
			return true
		}
	}
	return false
}

// nextLineHasColon returns whether the line after the one holding id has a
// selector colon of the send at level.
func (a *aligner) nextLineHasColon(id chunk.ID, level int) bool {
	w := a.list.Preproc()
	tmp := id
	if a.list.At(tmp).Kind == chunk.Newline {
		tmp = w.NextNC(tmp)
	} else {
		for tmp = w.NextNC(tmp); !tmp.IsNil(); tmp = w.NextNC(tmp) {
			c := a.list.At(tmp)
			if c.Kind == chunk.Newline {
				tmp = w.Next(tmp)
				break
			}
			if c.Kind == chunk.SquareClose && c.Level == level {
				// The send ends on this line.
				return false
			}
		}
	}
	if tmp.IsNil() {
		return false
	}
	return a.lineHasColon(tmp, level)
}

// prevLineHasColon returns whether the line before the one holding id has
// a selector colon of the send at level.
func (a *aligner) prevLineHasColon(id chunk.ID, level int) bool {
	w := a.list.Preproc()
	tmp := id
	for tmp = w.PrevNC(tmp); !tmp.IsNil(); tmp = w.PrevNC(tmp) {
		c := a.list.At(tmp)
		if c.Kind == chunk.Newline {
			break
		}
		if c.Kind == chunk.SquareOpen && c.Level == level {
			tmp = w.NextNC(tmp)
			break
		}
	}
	if tmp.IsNil() {
		return false
	}
	return a.lineHasColon(tmp, level)
}

// colonsOnLine counts the selector colons at level on the line of id,
// skipping nested sends. Returns -1 if the line cannot be found.
func (a *aligner) colonsOnLine(id chunk.ID, level int) int {
	w := a.list.Preproc()
	tmp := id
	if a.list.At(tmp).Kind == chunk.Newline {
		tmp = w.Next(tmp)
	} else {
		for tmp = w.Prev(tmp); !tmp.IsNil(); tmp = w.Prev(tmp) {
			c := a.list.At(tmp)
			if c.Level < level || c.Kind == chunk.Newline || c.Kind == chunk.SquareOpen ||
				c.Parent != chunk.OCMsg {
				break
			}
		}
	}
	if tmp.IsNil() {
		return -1
	}

	n := 0
	for tmp = w.NextNC(tmp); !tmp.IsNil(); tmp = w.NextNC(tmp) {
		c := a.list.At(tmp)
		if c.Parent != chunk.OCMsg || c.Level < level {
			break
		}
		if c.Kind == chunk.Newline || c.Kind == chunk.Semicolon ||
			(c.Kind == chunk.SquareClose && c.Level == level) {
			break
		}
		if c.Kind == chunk.OCColon && c.Level == level {
			n++
		}
		if c.Kind == chunk.SquareOpen {
			if tmp = w.NextKind(tmp, chunk.SquareClose, c.Level); tmp.IsNil() {
				break
			}
		}
	}
	a.log.Debug("oc msg colons", "line", a.list.At(id).OrigLine, "count", n)
	return n
}

// ocMsgStrings aligns string literals that continue a message-send
// argument on the lines after it:
//
//	[obj msgWithArg:arg
//	      andFormat:@"some format string",
//	                @"content text"];
//
// Only strings that directly follow a selector colon start a run; strings
// placed on a line of their own after the colon are left as they are.
func (a *aligner) ocMsgStrings(span int) {
	a.log.Debug("oc msg strings", "span", span)

	for id := a.list.Head(); !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		if c.Kind == chunk.SquareOpen && c.Parent == chunk.OCMsg {
			if id = a.ocMsgString(id, span); id.IsNil() {
				return
			}
		}
	}
}

// ocMsgString aligns the strings of the send opened at open and returns
// the chunk the scan stopped at.
func (a *aligner) ocMsgString(open chunk.ID, span int) chunk.ID {
	w := a.list.Preproc()
	s := a.stack(span, 0)
	s.StrAlign = true

	level := a.list.At(open).Level
	comments := 0
	added := chunk.Nil
	add := func(id chunk.ID, msg MsgLine) {
		if id != added {
			s.AddMsg(id, msg)
			added = id
		}
	}

	id := w.NextNCNL(open)
	for !id.IsNil() {
		c := a.list.At(id)
		if c.Level == level {
			break
		}
		if c.Parent == chunk.CommentWhole {
			if comments++; comments >= span {
				break
			}
		}

		if c.Kind == chunk.String && c.Parent == chunk.OCMsg {
			prev := a.list.Get(w.Prev(id))
			follows := prev != nil && prev.Kind == chunk.OCColon
			firstCol := c.Column
			lastLine := c.OrigLine

			for str := id; follows; {
				if str = w.NextKind(str, chunk.String, a.list.At(str).Level); str.IsNil() {
					break
				}
				sc := a.list.At(str)
				before := a.list.Get(a.list.Prev(str))
				if sc.OrigLine != lastLine+1 || before == nil || before.Kind != chunk.Newline {
					break
				}

				lastLine = sc.OrigLine
				msg := MsgLine{Start: sc.Column, RefColon: firstCol}
				if nl := w.NextNL(id); !nl.IsNil() {
					msg.End = a.list.At(nl).Column
				}
				add(id, msg)
				add(str, msg)
				id = str
			}
		}
		id = w.Next(id)
	}

	s.End()
	return id
}

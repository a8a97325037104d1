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

package chunk

// AnyLevel matches chunks at every nesting level in [Walker.NextKind] and
// [Walker.PrevKind].
const AnyLevel = -1

// Walker navigates a [List].
//
// The walker returned by [List.Preproc] stays on the same side of the
// preprocessor boundary as the chunk it starts from: from an ordinary chunk
// it skips whole preprocessor lines, and from inside a preprocessor line it
// returns [Nil] instead of leaving it.
type Walker struct {
	list    *List
	preproc bool
}

// Walk returns a walker that visits every chunk.
func (l *List) Walk() Walker {
	return Walker{list: l}
}

// Preproc returns a walker confined to one side of the preprocessor
// boundary.
func (l *List) Preproc() Walker {
	return Walker{list: l, preproc: true}
}

// Next returns the chunk after id.
func (l *List) Next(id ID) ID {
	if id <= 0 || int(id) >= len(l.chunks) {
		return Nil
	}
	return id + 1
}

// Prev returns the chunk before id.
func (l *List) Prev(id ID) ID {
	if id <= 1 || int(id) > len(l.chunks) {
		return Nil
	}
	return id - 1
}

// Next returns the chunk after id.
func (w Walker) Next(id ID) ID {
	return w.step(id, w.list.Next)
}

// Prev returns the chunk before id.
func (w Walker) Prev(id ID) ID {
	return w.step(id, w.list.Prev)
}

func (w Walker) step(id ID, move func(ID) ID) ID {
	next := move(id)
	if !w.preproc || next.IsNil() {
		return next
	}

	if !w.list.At(id).Flags.Has(InPreproc) {
		for !next.IsNil() && w.list.At(next).Flags.Has(InPreproc) {
			next = move(next)
		}
		return next
	}
	if !w.list.At(next).Flags.Has(InPreproc) {
		return Nil
	}
	return next
}

// seek moves from id in the direction of move until pred matches.
func (w Walker) seek(id ID, move func(ID) ID, pred func(*Chunk) bool) ID {
	for id = move(id); !id.IsNil(); id = move(id) {
		if pred(w.list.At(id)) {
			return id
		}
	}
	return Nil
}

// NextNC returns the next chunk that is not a comment.
func (w Walker) NextNC(id ID) ID {
	return w.seek(id, w.Next, func(c *Chunk) bool { return !c.IsComment() })
}

// PrevNC returns the previous chunk that is not a comment.
func (w Walker) PrevNC(id ID) ID {
	return w.seek(id, w.Prev, func(c *Chunk) bool { return !c.IsComment() })
}

// NextNCNL returns the next chunk that is neither a comment nor a newline.
func (w Walker) NextNCNL(id ID) ID {
	return w.seek(id, w.Next, func(c *Chunk) bool { return !c.IsComment() && !c.IsNewline() })
}

// PrevNCNL returns the previous chunk that is neither a comment nor a
// newline.
func (w Walker) PrevNCNL(id ID) ID {
	return w.seek(id, w.Prev, func(c *Chunk) bool { return !c.IsComment() && !c.IsNewline() })
}

// NextNL returns the next newline.
func (w Walker) NextNL(id ID) ID {
	return w.seek(id, w.Next, (*Chunk).IsNewline)
}

// PrevNL returns the previous newline.
func (w Walker) PrevNL(id ID) ID {
	return w.seek(id, w.Prev, (*Chunk).IsNewline)
}

// NextKind returns the next chunk of the given kind at the given level, or
// at any level if level is [AnyLevel].
func (w Walker) NextKind(id ID, kind Kind, level int) ID {
	return w.seek(id, w.Next, func(c *Chunk) bool {
		return c.Kind == kind && (level < 0 || c.Level == level)
	})
}

// PrevKind returns the previous chunk of the given kind at the given level,
// or at any level if level is [AnyLevel].
func (w Walker) PrevKind(id ID, kind Kind, level int) ID {
	return w.seek(id, w.Prev, func(c *Chunk) bool {
		return c.Kind == kind && (level < 0 || c.Level == level)
	})
}

// SkipToMatch returns the closer matching the opening bracket id. For any
// other chunk it returns id unchanged.
func (w Walker) SkipToMatch(id ID) ID {
	c := w.list.Get(id)
	if c == nil || !c.Kind.IsOpen() {
		return id
	}
	return w.NextKind(id, c.Kind.Closer(), c.Level)
}

// NextNC is shorthand for l.Walk().NextNC.
func (l *List) NextNC(id ID) ID { return l.Walk().NextNC(id) }

// PrevNC is shorthand for l.Walk().PrevNC.
func (l *List) PrevNC(id ID) ID { return l.Walk().PrevNC(id) }

// NextNCNL is shorthand for l.Walk().NextNCNL.
func (l *List) NextNCNL(id ID) ID { return l.Walk().NextNCNL(id) }

// PrevNCNL is shorthand for l.Walk().PrevNCNL.
func (l *List) PrevNCNL(id ID) ID { return l.Walk().PrevNCNL(id) }

// NextNL is shorthand for l.Walk().NextNL.
func (l *List) NextNL(id ID) ID { return l.Walk().NextNL(id) }

// PrevNL is shorthand for l.Walk().PrevNL.
func (l *List) PrevNL(id ID) ID { return l.Walk().PrevNL(id) }

// NextKind is shorthand for l.Walk().NextKind.
func (l *List) NextKind(id ID, kind Kind, level int) ID {
	return l.Walk().NextKind(id, kind, level)
}

// PrevKind is shorthand for l.Walk().PrevKind.
func (l *List) PrevKind(id ID, kind Kind, level int) ID {
	return l.Walk().PrevKind(id, kind, level)
}

// SkipToMatch is shorthand for l.Walk().SkipToMatch.
func (l *List) SkipToMatch(id ID) ID { return l.Walk().SkipToMatch(id) }

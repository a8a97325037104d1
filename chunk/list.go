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

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"

	"github.com/EricMusic/uncrustify/internal/width"
)

// DefaultTabSize is the tab width assumed when measuring token text.
const DefaultTabSize = 8

// List is the ordered, index-addressed sequence of chunks of one file.
//
// A zero List is empty and ready to use.
type List struct {
	// TabSize is used to measure token text containing tabs. Zero means
	// [DefaultTabSize].
	TabSize int

	chunks []Chunk

	// First non-newline chunk that starts on each source line.
	lines btree.Map[int, ID]
}

// Append adds a chunk to the end of the list and returns its ID.
//
// Len, OrigColEnd and Column are derived from Text and OrigCol when they
// are zero.
func (l *List) Append(c Chunk) ID {
	if c.Len == 0 && !c.IsNewline() {
		c.Len = width.String(c.Text, l.tabSize())
	}
	if c.OrigColEnd == 0 {
		c.OrigColEnd = c.OrigCol + c.Len
	}
	if c.Column == 0 {
		c.Column = c.OrigCol
	}

	l.chunks = append(l.chunks, c)
	id := ID(len(l.chunks))

	if !c.IsNewline() {
		if _, ok := l.lines.Get(c.OrigLine); !ok {
			l.lines.Set(c.OrigLine, id)
		}
	}
	return id
}

// Len returns the number of chunks in the list.
func (l *List) Len() int {
	return len(l.chunks)
}

// At returns the chunk with the given ID.
//
// Panics if id is nil or out of range.
func (l *List) At(id ID) *Chunk {
	if id <= 0 || int(id) > len(l.chunks) {
		panic(fmt.Sprintf("chunk: id out of range: %d (len %d)", id, len(l.chunks)))
	}
	return &l.chunks[id-1]
}

// Get is like [List.At], but returns nil for a nil or out of range ID.
func (l *List) Get(id ID) *Chunk {
	if id <= 0 || int(id) > len(l.chunks) {
		return nil
	}
	return &l.chunks[id-1]
}

// Head returns the first chunk, or [Nil] for an empty list.
func (l *List) Head() ID {
	if len(l.chunks) == 0 {
		return Nil
	}
	return 1
}

// All iterates over every chunk in order.
func (l *List) All() iter.Seq2[ID, *Chunk] {
	return func(yield func(ID, *Chunk) bool) {
		for i := range l.chunks {
			if !yield(ID(i+1), &l.chunks[i]) {
				return
			}
		}
	}
}

// FirstOnLine returns the first non-newline chunk that starts on the given
// source line, or [Nil] if there is none.
func (l *List) FirstOnLine(line int) ID {
	id, _ := l.lines.Get(line)
	return id
}

// LineStart returns the first non-newline chunk on the source line of id.
func (l *List) LineStart(id ID) ID {
	c := l.Get(id)
	if c == nil {
		return Nil
	}
	if first := l.FirstOnLine(c.OrigLine); !first.IsNil() && first <= id {
		return first
	}
	return id
}

// Columns returns the output column of every chunk, in order.
func (l *List) Columns() []int {
	cols := make([]int, len(l.chunks))
	for i := range l.chunks {
		cols[i] = l.chunks[i].Column
	}
	return cols
}

func (l *List) tabSize() int {
	if l.TabSize <= 0 {
		return DefaultTabSize
	}
	return l.TabSize
}

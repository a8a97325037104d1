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

// SpaceColAlign returns how many columns b must start after a's column for
// the two to keep their minimum spacing: a's width, plus one if they were
// separated by whitespace in the source.
func (l *List) SpaceColAlign(a, b ID) int {
	first, second := l.At(a), l.At(b)

	coldiff := first.Len
	if first.NLCount > 0 && !first.IsNewline() {
		coldiff = first.OrigColEnd - 1
	}
	if second.OrigLine != first.OrigLine || second.OrigCol > first.OrigColEnd {
		coldiff++
	}
	return coldiff
}

// AlignToColumn moves id to col and shifts the rest of its line by the same
// amount.
//
// Tokens after id never end up closer to their predecessor than
// [List.SpaceColAlign] allows. Comments that are not embedded in code go
// back to their original column, or as close to it as spacing allows.
func (l *List) AlignToColumn(id ID, col int) {
	c := l.Get(id)
	if c == nil || c.Column == col {
		return
	}
	col = max(col, 1)

	delta := col - c.Column
	minCol := col
	c.Column = col
	if c.IsNewline() {
		return
	}

	for {
		next := l.Next(id)
		if next.IsNil() {
			return
		}
		minCol += l.SpaceColAlign(id, next)

		id, c = next, l.At(next)
		if c.IsComment() && c.Parent != CommentEmbed {
			c.Column = max(c.OrigCol, minCol)
		} else {
			c.Column = max(c.Column+delta, minCol)
		}

		if c.NLCount > 0 || c.IsNewline() {
			return
		}
	}
}

// IndentToColumn moves id right to col, never left, shifting the rest of
// its line with it.
func (l *List) IndentToColumn(id ID, col int) {
	c := l.Get(id)
	if c == nil {
		return
	}
	l.AlignToColumn(id, max(col, c.Column))
}

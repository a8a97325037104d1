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
	"strings"

	"github.com/EricMusic/uncrustify/internal/width"
)

// Render reconstructs source text from the chunks' output columns.
//
// Each chunk is written at its Column, padding with spaces. A chunk whose
// column is already behind the write position follows its predecessor
// directly, or after one space if the two were separated in the source.
func (l *List) Render() string {
	var out strings.Builder
	col := 1
	prev := Nil

	for id, c := range l.All() {
		switch {
		case c.Kind == Newline:
			out.WriteString(strings.Repeat("\n", max(c.NLCount, 1)))
			col, prev = 1, Nil
			continue

		case c.Kind == NLCont:
			col = l.pad(&out, prev, id, col)
			out.WriteByte('\\')
			out.WriteString(strings.Repeat("\n", max(c.NLCount, 1)))
			col, prev = 1, Nil
			continue
		}

		col = l.pad(&out, prev, id, col)
		out.WriteString(c.Text)
		if i := strings.LastIndexByte(c.Text, '\n'); i >= 0 {
			col = width.At(1, c.Text[i+1:], l.tabSize())
		} else {
			col = width.At(col, c.Text, l.tabSize())
		}
		prev = id
	}

	return out.String()
}

// pad writes the whitespace needed before id and returns the new column.
func (l *List) pad(out *strings.Builder, prev, id ID, col int) int {
	c := l.At(id)
	switch {
	case c.Column > col:
		out.WriteString(strings.Repeat(" ", c.Column-col))
		return c.Column
	case !prev.IsNil() && l.SpaceColAlign(prev, id) > l.At(prev).Len:
		out.WriteByte(' ')
		return col + 1
	default:
		return col
	}
}

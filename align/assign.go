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

// assign aligns the first '=' of each statement at the level of first,
// recursing into nested braces. Enum bodies use their own span and
// threshold.
//
// In a declaration only the '=' after the first variable counts, and
// declarations are grouped apart from plain assignments:
//
//	const char *cat = "feline";
//	int        id   = 4;
//	a   = 5;
//	bat = 14;
//
// Returns the first chunk past the scope of first.
func (a *aligner) assign(first chunk.ID, span, thresh int) chunk.ID {
	fc := a.list.Get(first)
	if fc == nil {
		return chunk.Nil
	}
	if span <= 0 {
		return a.list.Next(first)
	}
	level := fc.Level
	a.log.Debug("assign", "level", level, "line", fc.OrigLine, "span", span, "thresh", thresh)

	plain := a.stack(span, thresh)
	plain.RightAlign = true
	vars := a.stack(span, thresh)
	vars.RightAlign = true

	varDefs, equs := 0, 0
	id := first
	for !id.IsNil() {
		c := a.list.At(id)
		if c.Level < level && c.Level != 0 {
			break
		}

		switch c.Kind {
		case chunk.SParenOpen, chunk.FParenOpen, chunk.SquareOpen, chunk.ParenOpen:
			// Nothing inside brackets is aligned.
			line := c.OrigLine
			id = a.list.SkipToMatch(id)
			if c := a.list.Get(id); c != nil {
				newLines(c.OrigLine-line, plain, vars)
			}
			continue

		case chunk.BraceOpen, chunk.VBraceOpen:
			line := c.OrigLine
			subSpan, subThresh := a.opts.AssignSpan, a.opts.AssignThresh
			if c.Parent == chunk.Enum {
				subSpan, subThresh = a.opts.EnumEquSpan, a.opts.EnumEquThresh
			}
			id = a.assign(a.list.NextNCNL(id), subSpan, subThresh)
			if c := a.list.Get(id); c != nil {
				newLines(c.OrigLine-line, plain, vars)
			}
			continue
		}

		switch {
		case c.IsNewline():
			newLines(c.NLCount, plain, vars)
			varDefs, equs = 0, 0
		case c.Flags.Has(chunk.VarDef):
			varDefs++
		case varDefs > 1:
			// Past the second variable of a declaration.
		case equs == 0 && c.Kind == chunk.Assign:
			equs++
			if varDefs != 0 {
				vars.Add(id)
			} else {
				plain.Add(id)
			}
		}
		id = a.list.Next(id)
	}

	end(plain, vars)
	return id
}

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

// typedefs aligns the names introduced by typedefs that fit on one line:
//
//	typedef int        foo_t;
//	typedef const char cc_t;
//
// Function typedefs have no anchor and are not aligned.
func (a *aligner) typedefs(span int) {
	a.log.Debug("typedefs", "span", span)

	s := a.stack(span, 0)
	s.Gap = a.opts.TypedefGap
	s.StarStyle = a.opts.TypedefStarStyle
	s.AmpStyle = a.opts.TypedefAmpStyle

	inTypedef := false
	for id, c := range a.list.All() {
		switch {
		case c.IsNewline():
			s.NewLines(c.NLCount)
			inTypedef = false
		case inTypedef:
			if c.Flags.Has(chunk.Anchor) {
				s.Add(id)
				inTypedef = false
			}
		case c.Kind == chunk.Typedef:
			a.log.Debug("typedef", "line", c.OrigLine, "col", c.Column)
			inTypedef = true
		}
	}
	s.End()
}

// leftShift aligns '<<' operators that begin the continuation lines of a
// statement with the first '<<' of that statement:
//
//	cout << "a"
//	     << "b";
func (a *aligner) leftShift() {
	a.log.Debug("left shift")

	s := a.stack(2, 0)
	start := chunk.Nil
	skip := false

	for id, c := range a.list.All() {
		switch {
		case c.IsNewline():
			s.NewLines(c.NLCount)
			skip = s.Empty()
		case !start.IsNil() && c.Level < a.list.At(start).Level:
			// Leaving the scope of the first '<<' ends the group.
			s.Flush()
			start = chunk.Nil
		case !start.IsNil() && c.Level > a.list.At(start).Level:
		case c.Flags.Has(chunk.StmtStart):
			s.Reset()
			skip = false
			start = chunk.Nil
		case c.Kind == chunk.Semicolon:
			s.Flush()
			start = chunk.Nil
		case !skip && c.Text == "<<":
			if s.Empty() {
				s.Add(id)
				start = id
			} else if prev := a.list.Get(a.list.Prev(id)); prev != nil && prev.IsNewline() {
				s.Add(id)
			}
		}
	}

	if skip {
		s.Reset()
	} else {
		s.End()
	}
}

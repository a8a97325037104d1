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

// varDefBrace aligns the first variable name of each declaration in the
// scope opened by start, recursing into nested braces:
//
//	struct foo {
//		char cat;
//		int  id       : 5;
//		int  name_len : 6;
//	};
//
// Bit-field colons and attributes form groups of their own. With
// MixVarProto set, prototypes are aligned together with the variables.
//
// If nl is not nil, the number of lines scanned is added to it. Returns the
// first chunk past the scope.
func (a *aligner) varDefBrace(start chunk.ID, span int, nl *int) chunk.ID {
	sc := a.list.Get(start)
	if sc == nil {
		return chunk.Nil
	}

	mySpan, thresh, gap := span, a.opts.VarDefThresh, a.opts.VarDefGap
	if sc.Parent == chunk.Struct || sc.Parent == chunk.Union {
		mySpan, thresh, gap = a.opts.VarStructSpan, a.opts.VarStructThresh, a.opts.VarStructGap
	}

	// An initializer body declares nothing.
	if prev := a.list.Get(a.list.PrevNCNL(start)); prev != nil && prev.Kind == chunk.Assign {
		a.log.Debug("var def brace skipped", "line", sc.OrigLine, "text", sc.Text)
		return a.list.NextNCNL(a.list.NextKind(start, chunk.BraceClose, sc.Level))
	}
	a.log.Debug("var def brace", "line", sc.OrigLine, "text", sc.Text, "span", mySpan)

	mask := chunk.InFcnDef | chunk.Var1st
	if !a.opts.VarDefInline {
		mask |= chunk.VarInline
	}

	vars := a.stack(mySpan, thresh)
	vars.Gap = gap
	vars.StarStyle = a.opts.VarDefStarStyle
	vars.AmpStyle = a.opts.VarDefAmpStyle
	colons := a.stack(mySpan, 0)
	colons.Gap = a.opts.VarDefColonGap
	attrs := a.stack(mySpan, 0)
	braces := a.stack(mySpan, thresh)
	braces.Gap = a.opts.SingleLineBraceGap
	all := []*Accumulator{vars, colons, attrs, braces}

	protos := a.opts.MixVarProto
	lookBrace := false
	done := false

	id := a.list.Next(start)
	for !id.IsNil() {
		c := a.list.At(id)
		if c.Level < sc.Level && c.Level != 0 {
			break
		}

		if c.IsComment() {
			if c.NLCount > 0 {
				newLines(c.NLCount, all...)
			}
			id = a.list.Next(id)
			continue
		}

		if protos {
			if a.isProto(c) {
				a.log.Debug("var def add", "text", c.Text, "line", c.OrigLine, "col", c.Column)
				vars.Add(id)
				lookBrace = c.Kind == chunk.FuncDef && a.opts.SingleLineBrace
			} else if lookBrace && c.Kind == chunk.BraceOpen && c.Flags.Has(chunk.OneLiner) {
				braces.Add(id)
				lookBrace = false
			}
		}

		if c.Kind == chunk.BraceOpen {
			sub := 0
			id = a.varDefBrace(id, span, &sub)
			if sub > 0 {
				lookBrace, done = false, false
				newLines(sub, all...)
				if nl != nil {
					*nl += sub
				}
			}
			continue
		}

		if c.Kind == chunk.BraceClose {
			id = a.list.Next(id)
			break
		}

		if c.IsNewline() {
			lookBrace, done = false, false
			newLines(c.NLCount, all...)
			if nl != nil {
				*nl += c.NLCount
			}
		}

		// Nothing inside parens or squares.
		if c.Level > c.BraceLevel {
			id = a.list.Next(id)
			continue
		}

		if c.Kind != chunk.FuncClass && c.Flags&mask == chunk.Var1st &&
			(c.Level == sc.Level+1 || c.Level == 0) {
			if !done {
				a.log.Debug("var def add", "text", c.Text, "line", c.OrigLine, "col", c.Column)
				vars.Add(id)
				a.varDefExtras(id, colons, attrs)
			}
			done = true
		}
		if c.Kind == chunk.BitColon && !done {
			colons.Add(id)
			done = true
		}
		id = a.list.Next(id)
	}

	end(all...)
	return id
}

// varDefExtras adds the bit-field colon and the attribute that follow the
// variable at id, if those are aligned.
func (a *aligner) varDefExtras(id chunk.ID, colons, attrs *Accumulator) {
	if a.opts.VarDefColon {
		if next := a.list.NextNC(id); !next.IsNil() && a.list.At(next).Kind == chunk.BitColon {
			colons.Add(next)
		}
	}
	if a.opts.VarDefAttribute {
		for next := a.list.NextNC(id); !next.IsNil(); next = a.list.NextNC(next) {
			c := a.list.At(next)
			if c.Kind == chunk.Attribute {
				attrs.Add(next)
				break
			}
			if c.Kind == chunk.Semicolon || c.IsNewline() {
				break
			}
		}
	}
}

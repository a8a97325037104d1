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

// maxCallParams is the number of leading call arguments that are aligned.
const maxCallParams = 16

// funcProtos aligns the names of function prototypes, and of one-line
// function definitions when that is enabled:
//
//	int  foo(void);
//	void bar(int);
func (a *aligner) funcProtos(span int) {
	a.log.Debug("func protos", "span", span)

	s := a.stack(span, 0)
	s.Gap = a.opts.FuncProtoGap
	braces := a.stack(span, 0)
	braces.Gap = a.opts.SingleLineBraceGap

	lookBrace := false
	for id, c := range a.list.All() {
		switch {
		case c.IsNewline():
			lookBrace = false
			newLines(c.NLCount, s, braces)
		case a.isProto(c):
			if c.Parent == chunk.Operator && a.opts.OnOperator {
				s.Add(a.list.PrevNCNL(id))
			} else {
				s.Add(id)
			}
			lookBrace = c.Kind == chunk.FuncDef && a.opts.SingleLineBrace
		case lookBrace && c.Kind == chunk.BraceOpen && c.Flags.Has(chunk.OneLiner):
			braces.Add(id)
			lookBrace = false
		}
	}
	end(s, braces)
}

// isProto returns whether c names a prototype, or a function definition
// that may be aligned with prototypes.
func (a *aligner) isProto(c *chunk.Chunk) bool {
	return c.Kind == chunk.FuncProto || (c.Kind == chunk.FuncDef && a.opts.SingleLineFunc)
}

// ocMsgSpecs aligns Objective-C method specs.
func (a *aligner) ocMsgSpecs(span int) {
	a.log.Debug("oc msg specs", "span", span)

	s := a.stack(span, 0)
	for id, c := range a.list.All() {
		if c.IsNewline() {
			s.NewLines(c.NLCount)
		} else if c.Kind == chunk.OCMsgSpec {
			s.Add(id)
		}
	}
	s.End()
}

// funcParams aligns parameter names in the parameter lists of function
// declarations.
func (a *aligner) funcParams() {
	a.log.Debug("func params")

	for id := a.list.Next(a.list.Head()); !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		if c.Kind != chunk.FParenOpen {
			continue
		}
		switch c.Parent {
		case chunk.FuncProto, chunk.FuncDef, chunk.FuncClass, chunk.Typedef:
			id = a.funcParam(id)
			if id.IsNil() {
				return
			}
		}
	}
}

// funcParam aligns the parameters of the list opened at start, one per
// line. A line that goes on past its first comma ends the group without
// aligning it. Returns the chunk the scan stopped at.
func (a *aligner) funcParam(start chunk.ID) chunk.ID {
	s := a.stack(2, 0)
	s.StarStyle = a.opts.VarDefStarStyle
	s.AmpStyle = a.opts.VarDefAmpStyle

	level := a.list.At(start).Level
	done := false
	commas, count := 0, 0

	id := start
	for id = a.list.Next(id); !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		count++

		switch {
		case c.IsNewline():
			done = false
			commas, count = 0, 0
			continue
		case c.Level <= level:
		case !done && c.Flags.Has(chunk.VarDef):
			if count > 1 {
				s.Add(id)
			}
			done = true
			continue
		case commas > 0:
			if c.IsComment() {
				continue
			}
			commas = 2
		case c.Kind == chunk.Comma:
			commas++
			continue
		default:
			continue
		}
		break
	}

	if commas <= 1 {
		s.End()
	}
	return id
}

// sameCallParams aligns the arguments of consecutive calls to the same
// function, one accumulator per argument position:
//
//	foo(1,   "a", x);
//	foo(200, "b", longer);
//
// Numeric positions are right-aligned unless NumberLeft is set.
func (a *aligner) sameCallParams() {
	a.log.Debug("same call params")

	var params [maxCallParams]*Accumulator
	used := 0
	fcn := a.stack(3, 0)
	root := chunk.Nil
	count := 0

	for id, c := range a.list.All() {
		if c.Kind != chunk.FuncCall {
			if c.IsNewline() {
				newLines(c.NLCount, params[:used]...)
				fcn.NewLines(c.NLCount)
			}
			continue
		}

		fcn.Add(id)
		if !root.IsNil() {
			if c.Text == a.list.At(root).Text {
				count++
			} else {
				a.log.Debug("same call params ended", "calls", count)
				fcn.Flush()
				for _, s := range params[:used] {
					s.Flush()
				}
				root = chunk.Nil
			}
		}
		if root.IsNil() {
			root = id
			count = 1
		}

		args := a.callArgs(id)
		a.log.Debug("same call params", "line", c.OrigLine, "text", c.Text, "args", len(args))
		for i, arg := range args {
			if i >= used {
				params[i] = a.stack(3, 0)
				if !a.opts.NumberLeft && a.list.At(arg).Kind.IsNumber() {
					params[i].RightAlign = true
				}
				used = i + 1
			}
			params[i].Add(arg)
		}
	}

	fcn.End()
	end(params[:used]...)
}

// callArgs returns the first chunk of each argument of the call named by
// fn that starts on the call's first line.
func (a *aligner) callArgs(fn chunk.ID) []chunk.ID {
	level := a.list.At(fn).Level

	var args []chunk.ID
	comma := true
	id := a.list.NextKind(fn, chunk.FParenOpen, level)
	for id = a.list.Next(id); !id.IsNil(); id = a.list.Next(id) {
		c := a.list.At(id)
		if c.IsNewline() || len(args) >= maxCallParams || c.Kind == chunk.Semicolon ||
			(c.Kind == chunk.FParenClose && c.Level == level) {
			break
		}
		if c.Level != level+1 {
			continue
		}
		if comma {
			args = append(args, id)
			comma = false
		} else if c.Kind == chunk.Comma {
			comma = true
		}
	}
	return args
}

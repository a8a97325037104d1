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

package annotate

import (
	"fmt"
	"strings"

	"github.com/EricMusic/uncrustify/chunk"
)

// file is the token slice of one input, between lexing and list building.
type file struct {
	path  string
	toks  []tok
	match map[int]int
}

var controls = map[string]bool{"if": true, "for": true, "while": true, "switch": true}

var kindAliases = map[string]chunk.Kind{
	"ptr": chunk.PtrType,
	"ref": chunk.Byref,
}

var flagAliases = map[string]chunk.Flags{
	"var":   chunk.Var1st | chunk.VarDef,
	"right": chunk.RightComment,
}

func (f *file) prevCode(i int) int {
	for i--; i >= 0; i-- {
		if !f.toks[i].IsComment() && !f.toks[i].IsNewline() {
			return i
		}
	}
	return -1
}

func (f *file) nextCode(i int) int {
	for i++; i < len(f.toks); i++ {
		if !f.toks[i].IsComment() && !f.toks[i].IsNewline() {
			return i
		}
	}
	return -1
}

// setBracket changes the kind and parent of a bracket pair.
func (f *file) setBracket(open int, kind, parent chunk.Kind) {
	closer := f.match[open]
	f.toks[open].Kind, f.toks[open].Parent = kind, parent
	f.toks[closer].Kind, f.toks[closer].Parent = kind.Closer(), parent
}

// inferLexical assigns the roles that follow from the token sequence alone.
func (f *file) inferLexical() {
	f.markMacros()
	f.markCalls()
	f.markBraces()
	f.markComments()
	f.markMessages()
	f.markUnary()
	f.markTypedefs()
	f.markStatements()
}

func (f *file) markMacros() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.PPDefine || i+1 >= len(f.toks) {
			continue
		}
		name := &f.toks[i+1]
		switch name.Kind {
		case chunk.Word, chunk.Type, chunk.Keyword, chunk.Qualifier:
		default:
			continue
		}

		name.Kind = chunk.Macro
		if i+2 < len(f.toks) {
			paren := &f.toks[i+2]
			if paren.Kind == chunk.ParenOpen && paren.OrigLine == name.OrigLine &&
				paren.OrigCol == name.OrigCol+len(name.Text) {
				name.Kind = chunk.MacroFunc
				f.setBracket(i+2, chunk.FParenOpen, chunk.MacroFunc)
			}
		}
	}
}

func (f *file) markCalls() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.ParenOpen {
			continue
		}
		p := f.prevCode(i)
		if p < 0 {
			continue
		}

		prev := &f.toks[p]
		switch {
		case prev.Kind == chunk.Word:
			prev.Kind = chunk.FuncCall
			f.setBracket(i, chunk.FParenOpen, chunk.FuncCall)
		case prev.Kind == chunk.Keyword && controls[prev.Text]:
			f.setBracket(i, chunk.SParenOpen, chunk.Keyword)
		case prev.Kind == chunk.Attribute:
			f.setBracket(i, chunk.ParenOpen, chunk.Attribute)
		}
	}
}

func (f *file) markBraces() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.BraceOpen {
			continue
		}
		closer := f.match[i]
		if f.toks[closer].OrigLine == f.toks[i].OrigLine {
			f.toks[i].Flags |= chunk.OneLiner
			f.toks[closer].Flags |= chunk.OneLiner
		}
		f.setBracket(i, chunk.BraceOpen, f.braceOwner(i))
	}
}

// braceOwner finds the construct that a '{' opens the body of.
func (f *file) braceOwner(i int) chunk.Kind {
	p := f.prevCode(i)
	if p < 0 {
		return chunk.None
	}
	if f.toks[p].Kind == chunk.Assign {
		return chunk.Assign
	}

	level := f.toks[i].Level
	for ; p >= 0; p = f.prevCode(p) {
		t := &f.toks[p]
		if t.Level > level {
			continue
		}
		switch t.Kind {
		case chunk.Struct, chunk.Union, chunk.Enum, chunk.Class:
			return t.Kind
		case chunk.Semicolon, chunk.BraceOpen, chunk.BraceClose, chunk.Assign,
			chunk.ParenClose, chunk.SParenClose, chunk.FParenClose:
			return chunk.None
		}
	}
	return chunk.None
}

func (f *file) markComments() {
	for i := range f.toks {
		t := &f.toks[i]
		if !t.IsComment() {
			continue
		}
		afterNL := i == 0 || f.toks[i-1].IsNewline()
		beforeNL := i+1 == len(f.toks) || f.toks[i+1].IsNewline()
		switch {
		case afterNL && beforeNL:
			t.Parent = chunk.CommentWhole
		case beforeNL:
			t.Parent = chunk.CommentEnd
		case afterNL:
			t.Parent = chunk.CommentStart
		default:
			t.Parent = chunk.CommentEmbed
		}
	}
}

// markMessages finds Objective-C message sends: a '[' that does not
// subscript anything and holds a colon at its own level.
func (f *file) markMessages() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.SquareOpen {
			continue
		}
		if p := f.prevCode(i); p >= 0 {
			switch f.toks[p].Kind {
			case chunk.Word, chunk.Type, chunk.Macro, chunk.String,
				chunk.SquareClose, chunk.ParenClose, chunk.FParenClose:
				continue
			}
		}

		end := f.match[i]
		inner := f.toks[i].Level + 1
		send := false
		for j := i + 1; j < end; j++ {
			if f.toks[j].Level == inner && f.toks[j].Kind == chunk.Colon {
				send = true
				break
			}
		}
		if !send {
			continue
		}

		f.toks[i].Parent = chunk.OCMsg
		f.toks[end].Parent = chunk.OCMsg
		for j := i + 1; j < end; j++ {
			t := &f.toks[j]
			if t.Level == inner && t.Kind == chunk.Colon {
				t.Kind = chunk.OCColon
			}
			if t.Parent == chunk.None {
				t.Parent = chunk.OCMsg
			}
		}
	}
}

// markUnary finds prefix operators.
func (f *file) markUnary() {
	for i := range f.toks {
		t := &f.toks[i]
		if t.Kind != chunk.Arith {
			continue
		}
		if p := f.prevCode(i); p >= 0 && !f.prefixContext(p) {
			continue
		}
		switch t.Text {
		case "-":
			t.Kind = chunk.Neg
		case "+":
			t.Kind = chunk.Pos
		case "*":
			t.Kind = chunk.Deref
		case "&":
			t.Kind = chunk.Addr
		}
	}
}

// prefixContext returns whether an operator after p is a prefix operator.
func (f *file) prefixContext(p int) bool {
	t := &f.toks[p]
	switch t.Kind {
	case chunk.Assign, chunk.Compare, chunk.Comma, chunk.Semicolon,
		chunk.Colon, chunk.OCColon, chunk.Question,
		chunk.Arith, chunk.Neg, chunk.Pos, chunk.Deref, chunk.Addr,
		chunk.ParenOpen, chunk.SParenOpen, chunk.FParenOpen, chunk.SquareOpen,
		chunk.BraceOpen, chunk.BraceClose,
		chunk.Preproc, chunk.PPDefine, chunk.PPIf, chunk.Macro:
		return true
	case chunk.Keyword:
		return t.Text == "return" || t.Text == "case"
	}
	return false
}

// markTypedefs anchors the name a typedef introduces. Function typedefs get
// no anchor; their pointer parenthesis is marked instead.
func (f *file) markTypedefs() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.Typedef {
			continue
		}

		level := f.toks[i].Level
		name, paren, end := -1, -1, -1
	scan:
		for j := i + 1; j < len(f.toks); j++ {
			t := &f.toks[j]
			switch {
			case t.Level < level:
				break scan
			case t.Level > level:
				continue
			}
			switch t.Kind {
			case chunk.Semicolon:
				end = j
				break scan
			case chunk.ParenOpen, chunk.FParenOpen:
				if paren < 0 {
					paren = j
				}
			case chunk.Word, chunk.Type, chunk.FuncCall:
				name = j
			}
		}

		switch {
		case end < 0:
		case paren >= 0:
			f.toks[paren].Parent = chunk.Typedef
		case name >= 0:
			f.toks[name].Kind = chunk.Type
			f.toks[name].Flags |= chunk.Anchor
		}
	}
}

// markStatements flags the first token of every statement outside the
// preprocessor.
func (f *file) markStatements() {
	start := true
	for i := range f.toks {
		t := &f.toks[i]
		if t.IsComment() || t.IsNewline() || t.Flags.Has(chunk.InPreproc) {
			continue
		}
		if start {
			t.Flags |= chunk.StmtStart
			start = false
		}
		switch t.Kind {
		case chunk.Semicolon, chunk.BraceOpen, chunk.BraceClose:
			start = true
		}
	}
}

func (f *file) applyNotes(notes []note) error {
	byLine := make(map[int][]int)
	for i := range f.toks {
		if !f.toks[i].IsNewline() {
			line := f.toks[i].OrigLine
			byLine[line] = append(byLine[line], i)
		}
	}

	for _, n := range notes {
		target, seen := -1, 0
		for _, i := range byLine[n.line] {
			if f.toks[i].Text == n.selector {
				if seen++; seen == n.nth {
					target = i
					break
				}
			}
		}
		if target < 0 {
			return f.errorf(n, "no token %q (#%d) on this line", n.selector, n.nth)
		}
		if len(n.attrs) == 0 {
			return f.errorf(n, "annotation for %q has no attributes", n.selector)
		}
		for _, attr := range n.attrs {
			if err := f.apply(n, &f.toks[target], attr); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *file) apply(n note, t *tok, attr string) error {
	if name, ok := strings.CutPrefix(attr, "^"); ok {
		k, ok := lookupKind(name)
		if !ok {
			return f.errorf(n, "unknown parent kind %q", name)
		}
		t.Parent, t.fixedParent = k, true
		return nil
	}

	if fl, ok := flagAliases[strings.ToLower(attr)]; ok {
		t.Flags |= fl
		return nil
	}
	if fl, ok := chunk.LookupFlag(attr); ok {
		t.Flags |= fl
		return nil
	}
	if k, ok := lookupKind(attr); ok {
		t.Kind, t.fixedKind = k, true
		return nil
	}
	return f.errorf(n, "unknown attribute %q", attr)
}

func (f *file) errorf(n note, format string, args ...any) error {
	return &Error{Path: f.path, Line: n.line, Col: n.col, Message: fmt.Sprintf(format, args...)}
}

func lookupKind(name string) (chunk.Kind, bool) {
	if k, ok := kindAliases[strings.ToLower(name)]; ok {
		return k, true
	}
	return chunk.LookupKind(name)
}

// inferDependent assigns the roles that depend on annotations.
func (f *file) inferDependent() {
	for i := range f.toks {
		if f.toks[i].Flags.Has(chunk.Var1st) {
			f.toks[i].Flags |= chunk.VarDef
		}
	}
	f.markSignatures()
	f.markPointers()
}

// markSignatures gives function parentheses the kind of the name before
// them, and flags the contents of declaration parameter lists.
func (f *file) markSignatures() {
	for i := range f.toks {
		if f.toks[i].Kind != chunk.FParenOpen || f.toks[i].fixedParent {
			continue
		}
		p := f.prevCode(i)
		if p < 0 {
			continue
		}

		switch k := f.toks[p].Kind; k {
		case chunk.FuncProto, chunk.FuncDef, chunk.FuncClass:
			f.setBracket(i, chunk.FParenOpen, k)
			for j := i + 1; j < f.match[i]; j++ {
				f.toks[j].Flags |= chunk.InFcnDef
			}
		case chunk.FuncCall, chunk.MacroFunc:
			f.setBracket(i, chunk.FParenOpen, k)
		}
	}
}

// markPointers turns the '*' and '&' before a declared name into type
// qualifiers.
func (f *file) markPointers() {
	for i := range f.toks {
		t := &f.toks[i]
		if !t.Flags.Any(chunk.VarDef|chunk.Anchor) &&
			t.Kind != chunk.FuncProto && t.Kind != chunk.FuncDef {
			continue
		}

	walk:
		for p := f.prevCode(i); p >= 0; p = f.prevCode(p) {
			q := &f.toks[p]
			if q.fixedKind {
				if q.Kind == chunk.PtrType || q.Kind == chunk.Byref {
					continue
				}
				break
			}
			switch q.Text {
			case "*":
				q.Kind = chunk.PtrType
			case "&", "&&":
				q.Kind = chunk.Byref
			default:
				break walk
			}
		}
	}
}

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
	"github.com/EricMusic/uncrustify/internal/width"
)

// tok is a chunk under construction.
type tok struct {
	chunk.Chunk

	// Set when an annotation chose the kind or parent, so that inference
	// that runs afterwards leaves it alone.
	fixedKind, fixedParent bool
}

type lexer struct {
	path string
	src  string
	tab  int

	pos, line, col int

	inPreproc bool
	lineCode  bool // A token other than a comment was seen on this line.

	level, braceLevel int
	open              []int

	out   []tok
	match map[int]int // Opener index to closer index, and back.
}

var puncts = []string{
	"<<=", ">>=", "...", "->*",
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "::", "##",
}

var keywords = map[string]chunk.Kind{
	"typedef":       chunk.Typedef,
	"struct":        chunk.Struct,
	"union":         chunk.Union,
	"enum":          chunk.Enum,
	"class":         chunk.Class,
	"__attribute__": chunk.Attribute,
	"operator":      chunk.Operator,

	"const":    chunk.Qualifier,
	"volatile": chunk.Qualifier,
	"static":   chunk.Qualifier,
	"extern":   chunk.Qualifier,
	"inline":   chunk.Qualifier,
	"register": chunk.Qualifier,

	"void":     chunk.Type,
	"char":     chunk.Type,
	"short":    chunk.Type,
	"int":      chunk.Type,
	"long":     chunk.Type,
	"float":    chunk.Type,
	"double":   chunk.Type,
	"signed":   chunk.Type,
	"unsigned": chunk.Type,
	"bool":     chunk.Type,
	"_Bool":    chunk.Type,

	"if":       chunk.Keyword,
	"for":      chunk.Keyword,
	"while":    chunk.Keyword,
	"switch":   chunk.Keyword,
	"return":   chunk.Keyword,
	"else":     chunk.Keyword,
	"do":       chunk.Keyword,
	"case":     chunk.Keyword,
	"default":  chunk.Keyword,
	"break":    chunk.Keyword,
	"continue": chunk.Keyword,
	"goto":     chunk.Keyword,
	"sizeof":   chunk.Keyword,
}

var brackets = map[string]chunk.Kind{
	"(": chunk.ParenOpen, ")": chunk.ParenClose,
	"[": chunk.SquareOpen, "]": chunk.SquareClose,
	"{": chunk.BraceOpen, "}": chunk.BraceClose,
}

var directives = map[string]chunk.Kind{
	"define": chunk.PPDefine,
	"if":     chunk.PPIf,
	"ifdef":  chunk.PPIf,
	"ifndef": chunk.PPIf,
	"elif":   chunk.PPElse,
	"else":   chunk.PPElse,
	"endif":  chunk.PPEndif,
}

func (l *lexer) run() error {
	l.match = make(map[int]int)
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		rest := l.src[l.pos:]

		var err error
		switch {
		case c == '\n':
			l.newline()
		case c == ' ' || c == '\t' || c == '\r':
			l.advance(1)
		case c == '\\' && l.continues(l.pos+1):
			l.continuation()
		case strings.HasPrefix(rest, "//"):
			l.lineComment()
		case strings.HasPrefix(rest, "/*"):
			err = l.blockComment()
		case c == '"' || c == '\'' || strings.HasPrefix(rest, `@"`):
			err = l.quoted()
		case isDigit(c) || (c == '.' && len(rest) > 1 && isDigit(rest[1])):
			l.number()
		case isIdentStart(c) || (c == '@' && len(rest) > 1 && isIdentStart(rest[1])):
			l.ident()
		case c == '#' && !l.lineCode:
			l.directive()
		default:
			err = l.punct()
		}
		if err != nil {
			return err
		}
	}

	if len(l.open) > 0 {
		t := l.out[l.open[len(l.open)-1]]
		return l.errorf(t.OrigLine, t.OrigCol, "unmatched %q", t.Text)
	}
	return nil
}

func (l *lexer) errorf(line, col int, format string, args ...any) error {
	return &Error{Path: l.path, Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// advance consumes n bytes that do not contain a newline.
func (l *lexer) advance(n int) string {
	text := l.src[l.pos : l.pos+n]
	l.col = width.At(l.col, text, l.tab)
	l.pos += n
	return text
}

func (l *lexer) emit(kind chunk.Kind, text string, line, col int) int {
	t := tok{Chunk: chunk.Chunk{
		Kind:       kind,
		Text:       text,
		OrigLine:   line,
		OrigCol:    col,
		Level:      l.level,
		BraceLevel: l.braceLevel,
	}}
	if l.inPreproc {
		t.Flags |= chunk.InPreproc
	}
	l.out = append(l.out, t)
	return len(l.out) - 1
}

func (l *lexer) newline() {
	line, col := l.line, l.col
	count, end := 0, l.pos
	for p := l.pos; p < len(l.src); p++ {
		c := l.src[p]
		if c == '\n' {
			count++
			end = p + 1
			continue
		}
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
	}

	l.inPreproc = false
	i := l.emit(chunk.Newline, "\n", line, col)
	l.out[i].NLCount = count

	l.pos = end
	l.line += count
	l.col = 1
	l.lineCode = false
}

// continues reports whether only blanks separate p from the end of the line.
func (l *lexer) continues(p int) bool {
	for ; p < len(l.src); p++ {
		switch l.src[p] {
		case '\n':
			return true
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return false
}

func (l *lexer) continuation() {
	i := l.emit(chunk.NLCont, "\\", l.line, l.col)
	l.out[i].NLCount = 1

	l.pos += strings.IndexByte(l.src[l.pos:], '\n') + 1
	l.line++
	l.col = 1
	l.lineCode = true
}

func (l *lexer) lineComment() {
	line, col := l.line, l.col
	n := strings.IndexByte(l.src[l.pos:], '\n')
	if n < 0 {
		n = len(l.src) - l.pos
	}
	l.emit(chunk.CommentCPP, l.advance(n), line, col)
}

func (l *lexer) blockComment() error {
	line, col := l.line, l.col
	n := strings.Index(l.src[l.pos+2:], "*/")
	if n < 0 {
		return l.errorf(line, col, "unterminated comment")
	}
	text := l.src[l.pos : l.pos+n+4]
	l.pos += len(text)

	kind := chunk.Comment
	nl := strings.Count(text, "\n")
	if nl > 0 {
		kind = chunk.CommentMulti
		l.line += nl
		l.col = width.At(1, text[strings.LastIndexByte(text, '\n')+1:], l.tab)
	} else {
		l.col = width.At(l.col, text, l.tab)
	}

	i := l.emit(kind, text, line, col)
	l.out[i].NLCount = nl
	l.out[i].OrigColEnd = l.col
	return nil
}

func (l *lexer) quoted() error {
	line, col := l.line, l.col
	start := l.pos
	if l.src[start] == '@' {
		start++
	}
	q := l.src[start]
	for p := start + 1; p < len(l.src); p++ {
		switch l.src[p] {
		case '\\':
			p++
		case '\n':
			p = len(l.src)
		case q:
			l.lineCode = true
			l.emit(chunk.String, l.advance(p+1-l.pos), line, col)
			return nil
		}
	}
	return l.errorf(line, col, "unterminated literal")
}

func (l *lexer) number() {
	line, col := l.line, l.col
	p := l.pos
	hex := strings.HasPrefix(l.src[p:], "0x") || strings.HasPrefix(l.src[p:], "0X")
	for p < len(l.src) {
		c := l.src[p]
		if isIdent(c) || c == '.' {
			p++
			continue
		}
		if (c == '+' || c == '-') && !hex && (l.src[p-1] == 'e' || l.src[p-1] == 'E') {
			p++
			continue
		}
		break
	}

	text := l.advance(p - l.pos)
	kind := chunk.Number
	if strings.ContainsRune(text, '.') || (!hex && strings.ContainsAny(text, "eE")) {
		kind = chunk.NumberFP
	}
	l.lineCode = true
	l.emit(kind, text, line, col)
}

func (l *lexer) ident() {
	line, col := l.line, l.col
	p := l.pos + 1
	for p < len(l.src) && isIdent(l.src[p]) {
		p++
	}
	text := l.advance(p - l.pos)

	kind, ok := keywords[text]
	if !ok {
		kind = chunk.Word
		if strings.HasSuffix(text, "_t") {
			kind = chunk.Type
		}
	}
	l.lineCode = true
	l.emit(kind, text, line, col)
}

func (l *lexer) directive() {
	l.inPreproc = true
	l.lineCode = true
	line, col := l.line, l.col
	l.emit(chunk.Preproc, l.advance(1), line, col)

	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.advance(1)
	}
	if l.pos >= len(l.src) || !isIdentStart(l.src[l.pos]) {
		return
	}

	line, col = l.line, l.col
	p := l.pos
	for p < len(l.src) && isIdent(l.src[p]) {
		p++
	}
	text := l.advance(p - l.pos)
	kind, ok := directives[text]
	if !ok {
		kind = chunk.PPOther
	}
	l.emit(kind, text, line, col)
}

func (l *lexer) punct() error {
	line, col := l.line, l.col
	rest := l.src[l.pos:]
	n := 1
	for _, p := range puncts {
		if strings.HasPrefix(rest, p) {
			n = len(p)
			break
		}
	}
	text := l.advance(n)
	l.lineCode = true

	switch text {
	case "(", "[", "{":
		kind := brackets[text]
		i := l.emit(kind, text, line, col)
		l.open = append(l.open, i)
		l.level++
		if kind == chunk.BraceOpen {
			l.braceLevel++
		}
		return nil

	case ")", "]", "}":
		if len(l.open) == 0 {
			return l.errorf(line, col, "unexpected %q", text)
		}
		o := l.open[len(l.open)-1]
		opener := l.out[o].Kind
		if opener.Closer() != brackets[text] {
			return l.errorf(line, col, "%q does not match %q", text, l.out[o].Text)
		}
		l.open = l.open[:len(l.open)-1]
		l.level--
		if opener == chunk.BraceOpen {
			l.braceLevel--
		}
		i := l.emit(opener.Closer(), text, line, col)
		l.match[o], l.match[i] = i, o
		return nil
	}

	l.emit(punctKind(text), text, line, col)
	return nil
}

func punctKind(text string) chunk.Kind {
	switch text {
	case ";":
		return chunk.Semicolon
	case ",":
		return chunk.Comma
	case ":":
		return chunk.Colon
	case "?":
		return chunk.Question
	case ".", "->", "->*", "::":
		return chunk.Member
	case "==", "!=", "<", ">", "<=", ">=":
		return chunk.Compare
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return chunk.Assign
	}
	return chunk.Arith
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool { return isIdentStart(c) || isDigit(c) }

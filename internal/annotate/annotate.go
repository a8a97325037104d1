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

// Package annotate builds a [chunk.List] from C-family source text.
//
// It stands in for the lexer and the annotation pass of a full formatter:
// it tokenizes, computes nesting levels, and infers the roles that the
// alignment engine reads (function names, brace owners, comment placement,
// message sends, typedef names, and so on). Anything the inference cannot
// know, such as which names are declared variables, is written inline.
//
// # Annotations
//
// A line may end in "|@" followed by space-separated annotations, each of
// the form
//
//	selector:attr,attr,...
//
// The selector is the text of a token on that line; "text#n" picks the n-th
// token with that text. The last ':' in an annotation separates the selector
// from its attributes, so "::bitcolon" selects a colon. An attribute is
//
//   - a kind name, such as "ptrtype", "funcproto" or "bitcolon";
//   - a flag name, such as "var1st", "anchor" or "oneliner";
//   - '^' followed by a kind name, which sets the parent.
//
// The short forms "ptr", "var" and "right" mean "ptrtype", "var1st" and
// "rightcomment". For example:
//
//	int   a;     |@ a:var1st
//	char *bbbb;  |@ bbbb:var1st
//
// The annotation text, and any whitespace before it, is not part of the
// source.
package annotate

import (
	"fmt"
	"strings"

	"github.com/EricMusic/uncrustify/chunk"
)

// Error is a problem with the input text.
type Error struct {
	Path      string
	Line, Col int
	Message   string
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Message)
}

// Parse tokenizes and annotates src. Tabs in src are measured with the
// given tab size; zero means [chunk.DefaultTabSize].
func Parse(path, src string, tabSize int) (*chunk.List, error) {
	if tabSize <= 0 {
		tabSize = chunk.DefaultTabSize
	}

	code, notes := splitAnnotations(src)

	lex := lexer{path: path, src: code, tab: tabSize, line: 1, col: 1}
	if err := lex.run(); err != nil {
		return nil, err
	}

	f := &file{path: path, toks: lex.out, match: lex.match}
	f.inferLexical()
	if err := f.applyNotes(notes); err != nil {
		return nil, err
	}
	f.inferDependent()

	list := &chunk.List{TabSize: tabSize}
	for i := range f.toks {
		list.Append(f.toks[i].Chunk)
	}
	return list, nil
}

// MustParse is like [Parse], but panics on error. It is intended for tests.
func MustParse(src string) *chunk.List {
	list, err := Parse("<test>", src, 0)
	if err != nil {
		panic(err)
	}
	return list
}

// note is one "selector:attrs" annotation.
type note struct {
	line, col int
	selector  string
	nth       int
	attrs     []string
}

// splitAnnotations strips annotations and trailing whitespace from every
// line.
func splitAnnotations(src string) (string, []note) {
	lines := strings.Split(src, "\n")
	var notes []note
	for i, line := range lines {
		if idx := strings.Index(line, "|@"); idx >= 0 {
			col := idx + 3
			for _, field := range strings.Fields(line[idx+2:]) {
				notes = append(notes, parseNote(i+1, col, field))
				col += len(field) + 1
			}
			line = line[:idx]
		}
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n"), notes
}

func parseNote(line, col int, field string) note {
	n := note{line: line, col: col, nth: 1}
	sep := strings.LastIndexByte(field, ':')
	if sep <= 0 {
		n.selector = field
		return n
	}

	n.selector = field[:sep]
	n.attrs = strings.Split(field[sep+1:], ",")

	if hash := strings.LastIndexByte(n.selector, '#'); hash > 0 {
		var nth int
		if _, err := fmt.Sscanf(n.selector[hash+1:], "%d", &nth); err == nil && nth > 0 &&
			fmt.Sprint(nth) == n.selector[hash+1:] {
			n.selector, n.nth = n.selector[:hash], nth
		}
	}
	return n
}

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
	"strconv"
	"strings"
)

// ID addresses a [Chunk] within its [List]. IDs start at one; the zero ID
// means "no chunk".
type ID int32

// Nil is the zero ID.
const Nil ID = 0

// IsNil returns whether this ID refers to no chunk.
func (id ID) IsNil() bool {
	return id == Nil
}

// StarStyle says how '*' and '&' qualifiers between a type and the aligned
// name take part in alignment.
type StarStyle uint8

const (
	// StarIgnore aligns only the name; qualifiers stay with the type.
	//
	//	void     foo;
	//	char *   foo;
	StarIgnore StarStyle = iota
	// StarInclude aligns the first qualifier before the name.
	//
	//	void     foo;
	//	char     *foo;
	StarInclude
	// StarDangle aligns the name and lets qualifiers hang to its left.
	//
	//	void     foo;
	//	char    *foo;
	StarDangle
)

// String implements [fmt.Stringer].
func (s StarStyle) String() string {
	switch s {
	case StarIgnore:
		return "ignore"
	case StarInclude:
		return "include"
	case StarDangle:
		return "dangle"
	default:
		return fmt.Sprintf("chunk.StarStyle(%d)", int(s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s StarStyle) MarshalText() ([]byte, error) {
	if s > StarDangle {
		return nil, fmt.Errorf("chunk: invalid star style %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts a style
// name or its number.
func (s *StarStyle) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for style := StarIgnore; style <= StarDangle; style++ {
		if name == style.String() || name == strconv.Itoa(int(style)) {
			*s = style
			return nil
		}
	}
	return fmt.Errorf("chunk: unknown star style %q", text)
}

// Chunk is a single token.
//
// Everything except Column, the engine-owned flags and Align is written by
// the lexer and the annotation pass, and is read-only to the alignment
// engine.
type Chunk struct {
	Kind   Kind
	Parent Kind // The construct this chunk belongs to.
	Flags  Flags

	Text string
	Len  int // Rendered width of Text; for multi-line text, of its last line.

	// Source position, one-based. OrigColEnd is the column just past the
	// token's last character.
	OrigLine, OrigCol, OrigColEnd int

	// Column is the output column, one-based.
	Column int

	// Level counts enclosing brackets of any kind; BraceLevel counts only
	// braces.
	Level, BraceLevel int

	// NLCount is the number of line breaks a newline chunk (or a multi-line
	// comment) represents.
	NLCount int

	Align AlignData
}

// AlignData is the bookkeeping an alignment group leaves on its members.
type AlignData struct {
	Start  ID  // The chunk that was offered to the accumulator.
	Ref    ID  // The anchor: the last chunk of the construct to the left.
	Next   ID  // The next member of the same group.
	ColAdj int // Offset between this chunk and the aligned column.

	// Settings of the group, recorded on its first member so the group can
	// be aligned again later.
	Gap                 int
	RightAlign          bool
	StarStyle, AmpStyle StarStyle

	// Message-send bookkeeping.
	MsgAlign, StrAlign bool
	MsgLines           int // Lines seen so far in the construct.
	MsgLine            int // One-based line within the construct.
	MsgLineStart       int // Column of the first token on that line.
	MsgLineEnd         int // Column of the newline ending that line.
	MsgRefColon        int // Column of that line's reference colon.
}

// IsNewline returns whether this chunk ends a line.
func (c *Chunk) IsNewline() bool {
	return c.Kind == Newline || c.Kind == NLCont
}

// IsComment returns whether this chunk is a comment.
func (c *Chunk) IsComment() bool {
	return c.Kind == Comment || c.Kind == CommentCPP || c.Kind == CommentMulti
}

// IsStar returns whether this chunk is a '*' other than an overloaded
// operator symbol.
func (c *Chunk) IsStar() bool {
	return c.Text == "*" && c.Kind != OperatorVal
}

// IsAddr returns whether this chunk is a by-reference '&'.
func (c *Chunk) IsAddr() bool {
	return c.Kind == Byref || (c.Text == "&" && c.Kind != OperatorVal)
}

// IsTypedefParen returns whether this is the '(' of a function-pointer
// typedef.
func (c *Chunk) IsTypedefParen() bool {
	return c.Text == "(" && c.Parent == Typedef
}

// IsQualifier returns whether this chunk is skipped over when looking for
// the anchor of an aligned name.
func (c *Chunk) IsQualifier() bool {
	return c.IsStar() || c.IsAddr() || c.IsTypedefParen()
}

// String implements [fmt.Stringer].
func (c *Chunk) String() string {
	return fmt.Sprintf("%v %q @%d:%d col=%d lvl=%d/%d",
		c.Kind, c.Text, c.OrigLine, c.OrigCol, c.Column, c.Level, c.BraceLevel)
}

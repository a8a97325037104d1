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
	"strings"
)

// Kind is the syntactic category of a [Chunk]. The same type is used for
// [Chunk.Parent], which names the construct a chunk belongs to.
//
// Opening brackets are always immediately followed by their closer; see
// [Kind.Closer].
type Kind byte

const (
	None Kind = iota // The zero kind; also "no parent".

	Newline      // One or more line breaks; see Chunk.NLCount.
	NLCont       // A backslash-newline.
	Comment      // A /* */ comment on one line.
	CommentCPP   // A // comment.
	CommentMulti // A /* */ comment spanning several lines.

	Word      // An identifier with no more specific role.
	Type      // A type name.
	Qualifier // const, volatile, static and friends.
	Keyword   // Any other keyword.
	Number    // An integer literal.
	NumberFP  // A floating-point literal.
	String    // A string or character literal.

	Pos         // Unary plus.
	Neg         // Unary minus.
	Arith       // A binary operator.
	PtrType     // A '*' that is part of a type.
	Byref       // A '&' that is part of a type.
	Addr        // Unary address-of.
	Deref       // Unary dereference.
	Assign      // '=' and compound assignments.
	Compare     // Comparisons.
	Comma       // ','.
	Semicolon   // ';'.
	Colon       // A colon with no more specific role.
	BitColon    // The colon of a bit-field declaration.
	OCColon     // The colon of an Objective-C selector.
	Member      // '.' and '->'.
	Question    // '?'.
	ParenOpen   // '(' of a grouping expression.
	ParenClose  // ')' of a grouping expression.
	SParenOpen  // '(' after if/for/while/switch.
	SParenClose // ')' after if/for/while/switch.
	FParenOpen  // '(' of a function call or declaration.
	FParenClose // ')' of a function call or declaration.
	SquareOpen  // '['.
	SquareClose // ']'.
	BraceOpen   // '{'.
	BraceClose  // '}'.
	VBraceOpen  // A virtual brace opening a braceless body.
	VBraceClose // A virtual brace closing a braceless body.
	TSquare     // '[]' written as one token.

	Preproc   // The '#' starting a preprocessor line.
	PPDefine  // define
	PPIf      // if, ifdef, ifndef, elif
	PPElse    // else
	PPEndif   // endif
	PPOther   // Any other directive.
	Macro     // The name of an object-like macro.
	MacroFunc // The name of a function-like macro.

	Typedef   // typedef
	Struct    // struct
	Union     // union
	Enum      // enum
	Class     // class
	Attribute // __attribute__

	FuncCall    // The name in a function call.
	FuncProto   // The name in a function prototype.
	FuncDef     // The name in a function definition.
	FuncClass   // A constructor or destructor name.
	Operator    // The operator keyword.
	OperatorVal // The symbol following the operator keyword.

	OCMsg     // An Objective-C message send; used as a parent.
	OCMsgSpec // The '-' or '+' starting an Objective-C method spec.

	CommentWhole // Parent of a comment alone on its line.
	CommentEnd   // Parent of a comment that ends a line after code.
	CommentStart // Parent of a comment that starts a line before code.
	CommentEmbed // Parent of a comment with code on both sides.

	kindCount
)

var kindNames = [kindCount]string{
	None: "None", Newline: "Newline", NLCont: "NLCont", Comment: "Comment",
	CommentCPP: "CommentCPP", CommentMulti: "CommentMulti",
	Word: "Word", Type: "Type", Qualifier: "Qualifier", Keyword: "Keyword",
	Number: "Number", NumberFP: "NumberFP", String: "String",
	Pos: "Pos", Neg: "Neg", Arith: "Arith", PtrType: "PtrType", Byref: "Byref",
	Addr: "Addr", Deref: "Deref", Assign: "Assign", Compare: "Compare",
	Comma: "Comma", Semicolon: "Semicolon", Colon: "Colon", BitColon: "BitColon",
	OCColon: "OCColon", Member: "Member", Question: "Question",
	ParenOpen: "ParenOpen", ParenClose: "ParenClose",
	SParenOpen: "SParenOpen", SParenClose: "SParenClose",
	FParenOpen: "FParenOpen", FParenClose: "FParenClose",
	SquareOpen: "SquareOpen", SquareClose: "SquareClose",
	BraceOpen: "BraceOpen", BraceClose: "BraceClose",
	VBraceOpen: "VBraceOpen", VBraceClose: "VBraceClose", TSquare: "TSquare",
	Preproc: "Preproc", PPDefine: "PPDefine", PPIf: "PPIf", PPElse: "PPElse",
	PPEndif: "PPEndif", PPOther: "PPOther", Macro: "Macro", MacroFunc: "MacroFunc",
	Typedef: "Typedef", Struct: "Struct", Union: "Union", Enum: "Enum",
	Class: "Class", Attribute: "Attribute",
	FuncCall: "FuncCall", FuncProto: "FuncProto", FuncDef: "FuncDef",
	FuncClass: "FuncClass", Operator: "Operator", OperatorVal: "OperatorVal",
	OCMsg: "OCMsg", OCMsgSpec: "OCMsgSpec",
	CommentWhole: "CommentWhole", CommentEnd: "CommentEnd",
	CommentStart: "CommentStart", CommentEmbed: "CommentEmbed",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("chunk.Kind(%d)", int(k))
}

// LookupKind finds a kind by its name, ignoring case.
func LookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return None, false
}

// IsOpen returns whether this is an opening bracket.
func (k Kind) IsOpen() bool {
	switch k {
	case ParenOpen, SParenOpen, FParenOpen, SquareOpen, BraceOpen, VBraceOpen:
		return true
	default:
		return false
	}
}

// Closer returns the closing bracket paired with an opening one, or
// [None] if k does not open anything.
func (k Kind) Closer() Kind {
	if !k.IsOpen() {
		return None
	}
	return k + 1
}

// IsNumber returns whether k is a numeric literal or a sign attached to one.
func (k Kind) IsNumber() bool {
	switch k {
	case Number, NumberFP, Pos, Neg:
		return true
	default:
		return false
	}
}

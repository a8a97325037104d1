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
	"math/bits"
	"strings"
)

// Flags is a set of boolean markers on a [Chunk].
//
// Most flags are inputs written by the annotation pass. AlignStart and
// WasAligned are written by the alignment engine.
type Flags uint32

const (
	InPreproc    Flags = 1 << iota // Part of a preprocessor line.
	StmtStart                      // First token of a statement.
	VarDef                         // A declared variable name.
	Var1st                         // The first variable of a declaration.
	VarInline                      // A variable declared after an inline struct body.
	InFcnDef                       // Inside the parameter list of a function declaration.
	OneLiner                       // A brace whose body is on a single line.
	RightComment                   // A comment eligible for trailing-comment alignment.
	Anchor                         // The name introduced by a typedef.
	AlignStart                     // First token of an aligned group.
	WasAligned                     // Moved by some alignment pass.
	DontIndent                     // Must keep its column when reindenting.

	flagCount = iota
)

var flagNames = [flagCount]string{
	"InPreproc", "StmtStart", "VarDef", "Var1st", "VarInline", "InFcnDef",
	"OneLiner", "RightComment", "Anchor", "AlignStart", "WasAligned",
	"DontIndent",
}

// Has returns whether every flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any returns whether some flag in mask is set.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// String implements [fmt.Stringer].
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}

	var names []string
	for f != 0 {
		bit := bits.TrailingZeros32(uint32(f))
		f &^= 1 << bit
		if bit < flagCount {
			names = append(names, flagNames[bit])
		} else {
			names = append(names, fmt.Sprintf("1<<%d", bit))
		}
	}
	return strings.Join(names, "|")
}

// LookupFlag finds a single flag by its name, ignoring case.
func LookupFlag(name string) (Flags, bool) {
	for i, n := range flagNames {
		if strings.EqualFold(n, name) {
			return 1 << i, true
		}
	}
	return 0, false
}

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

// Package width measures how many columns a token occupies when rendered,
// and snaps columns to tab stops.
//
// Columns throughout this module are one-based, as in the token positions
// produced by the lexer.
package width

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/exp/constraints"
)

// String returns the number of terminal cells s occupies when it starts at
// column one. Tabs advance to the next multiple of tabstop.
//
// Only the last line of a multi-line string is measured.
func String(s string, tabstop int) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return At(1, s, tabstop) - 1
}

// At returns the column immediately after s, when s is written starting at
// column col.
func At(col int, s string, tabstop int) int {
	if tabstop <= 0 {
		tabstop = 1
	}

	for i, part := range strings.Split(s, "\t") {
		if i > 0 {
			col = NextTabColumn(col, tabstop)
		}
		col += uniseg.StringWidth(part)
	}
	return col
}

// IsTabColumn returns whether col lies on a tab stop.
func IsTabColumn[T constraints.Integer](col, tabstop T) bool {
	return tabstop <= 0 || (col-1)%tabstop == 0
}

// NextTabColumn returns the first tab stop strictly after col.
func NextTabColumn[T constraints.Integer](col, tabstop T) T {
	if tabstop <= 0 {
		return col + 1
	}
	return col + tabstop - (col-1)%tabstop
}

// RoundUp returns col if it is already a tab stop, otherwise the next one.
func RoundUp[T constraints.Integer](col, tabstop T) T {
	if IsTabColumn(col, tabstop) {
		return col
	}
	return NextTabColumn(col, tabstop)
}

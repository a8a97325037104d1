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

// preprocessor aligns the values of #define lines that are within the
// configured span of each other:
//
//	#define FOO_VAL     15
//	#define MAX_TIMEOUT 60
//
// Function-like macros form their own groups, aligned on the token after
// the parameter list. A macro whose value starts on the next line is left
// alone.
func (a *aligner) preprocessor() {
	span := a.opts.PPDefineSpan
	a.log.Debug("preprocessor", "span", span)

	values := a.stack(span, 0)
	values.Gap = a.opts.PPDefineGap
	funcs := a.stack(span, 0)
	funcs.Gap = a.opts.PPDefineFuncGap
	if funcs.Gap == 0 {
		funcs.Gap = a.opts.PPDefineGap
	}

	for id := a.list.Head(); !id.IsNil(); {
		c := a.list.At(id)

		// Backslash continuations do not count.
		if c.Kind == chunk.Newline {
			newLines(c.NLCount, values, funcs)
		}
		if c.Kind != chunk.PPDefine {
			id = a.list.NextNC(id)
			continue
		}

		id = a.list.NextNC(id)
		if id.IsNil() {
			break
		}
		a.log.Debug("define", "text", a.list.At(id).Text, "line", a.list.At(id).OrigLine)

		s := values
		if a.list.At(id).Kind == chunk.MacroFunc {
			s = funcs
			open := a.list.NextNC(id)
			if open.IsNil() {
				break
			}
			id = a.list.NextKind(open, chunk.FParenClose, a.list.At(open).Level)
			if id.IsNil() {
				break
			}
		}

		id = a.list.Next(id)
		if id.IsNil() {
			break
		}
		if !a.list.At(id).IsNewline() {
			s.Add(id)
		}
	}
	end(values, funcs)
}

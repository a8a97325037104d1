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

// Package chunk is the token model the alignment engine operates on.
//
// A [List] owns every token ("chunk") of one source file, in source order,
// addressed by a stable [ID]. The lexer and the annotation pass build the
// list; the alignment passes in package align only ever move tokens
// horizontally, by writing [Chunk.Column] and the fields of [AlignData].
// Token count and order never change once a list is built.
//
// Navigation mirrors what a formatter needs: neighbors, the next token that
// is not a comment or newline, the next token of a kind at a nesting level,
// and the matching closer of a bracket. [List.Preproc] returns a [Walker]
// that never crosses between preprocessor and ordinary lines.
package chunk

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

// Package uncrustify lines up related tokens across neighboring lines of
// C-family source code.
//
// The work is done by package align, which operates on a token list from
// package chunk. This package ties the two to the annotated-text reader so
// that a file can be aligned in one call:
//
//	out, err := uncrustify.Format("foo.c", src, align.Options{
//	    VarDefSpan:   2,
//	    AssignSpan:   2,
//	    RightCmtSpan: 3,
//	})
//
// A [Formatter] aligns many files at once, using as many goroutines as
// allowed by its MaxParallelism field. Each file gets its own token list;
// the alignment passes themselves are single-threaded.
//
// Options can be read from YAML or TOML files with package config.
package uncrustify

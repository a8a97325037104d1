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

// Package align lines up parallel constructs in a [chunk.List].
//
// Every pass walks the list once, offers candidate chunks to one or more
// [Accumulator] values, and lets them decide on a shared column. A pass
// never adds, removes or reorders chunks and never changes line breaks;
// it only moves chunks right or left on their line.
//
// [All] runs the passes in a fixed order, each one enabled by [Options].
// Later passes see the columns earlier passes produced. The passes are
// also exported one by one.
package align

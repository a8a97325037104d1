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

package uncrustify

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/EricMusic/uncrustify/align"
	"github.com/EricMusic/uncrustify/internal/annotate"
)

// Formatter aligns annotated source text.
type Formatter struct {
	// The options every file is aligned with.
	Options align.Options
	// The maximum number of files to format at once. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// File is one input to [Formatter.FormatFiles].
type File struct {
	Path string
	Text string
}

// Format parses src and runs every enabled alignment pass over it,
// returning the aligned text.
func (f *Formatter) Format(path, src string) (string, error) {
	opts := f.Options.WithDefaults()
	list, err := annotate.Parse(path, src, opts.OutputTabSize)
	if err != nil {
		return "", err
	}

	opts.Logger = opts.Logger.With("file", path)
	align.All(list, opts)
	return list.Render(), nil
}

// FormatFiles formats files in parallel. The results are in the same order
// as files. The first error cancels the files not yet started.
func (f *Formatter) FormatFiles(ctx context.Context, files ...File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	par := f.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	out := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			text, err := f.Format(file.Path, file.Text)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", file.Path, err)
			}
			out[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Format aligns src with opts.
func Format(path, src string, opts align.Options) (string, error) {
	f := Formatter{Options: opts}
	return f.Format(path, src)
}

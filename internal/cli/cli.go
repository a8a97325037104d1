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

// Package cli implements the alignfmt command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/EricMusic/uncrustify"
	"github.com/EricMusic/uncrustify/config"
)

// Execute runs the command with the process arguments.
func Execute(ctx context.Context) error {
	return NewCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

type flags struct {
	config  string
	write   bool
	jobs    int
	verbose bool
}

// NewCommand returns the root command. Input without file arguments is read
// from stdin; output goes to stdout unless --write is given.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "alignfmt [flags] [file...]",
		Short:         "Align related tokens in annotated C-family source",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, args, stdin, stdout)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "options file (.yaml, .yml or .toml)")
	fl.BoolVarP(&f.write, "write", "w", false, "rewrite files in place")
	fl.IntVarP(&f.jobs, "jobs", "j", 0, "files to format at once (default: number of CPUs)")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, f flags, args []string, stdin io.Reader, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	fmtr := uncrustify.Formatter{MaxParallelism: f.jobs}
	if f.config != "" {
		opts, err := config.Load(f.config)
		if err != nil {
			return err
		}
		fmtr.Options = opts
		logger.Debug("loaded options", "path", f.config)
	}
	fmtr.Options.Logger = logger

	if len(args) == 0 {
		if f.write {
			return errors.New("--write needs file arguments")
		}
		src, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err := fmtr.Format("<stdin>", string(src))
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, out)
		return err
	}

	files := make([]uncrustify.File, len(args))
	for i, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[i] = uncrustify.File{Path: path, Text: string(src)}
	}

	outs, err := fmtr.FormatFiles(ctx, files...)
	if err != nil {
		return err
	}

	for i, out := range outs {
		path := files[i].Path
		if !f.write {
			if _, err := io.WriteString(stdout, out); err != nil {
				return err
			}
			continue
		}
		if out == files[i].Text {
			logger.Debug("unchanged", "path", path)
			continue
		}
		if err := writeFile(path, out); err != nil {
			return err
		}
		logger.Info("aligned", "path", path)
	}

	logger.Debugf("formatted %d files (%s)", len(files), time.Since(start).Round(time.Millisecond))
	return nil
}

// writeFile replaces the contents of path, keeping its permissions.
func writeFile(path, text string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), fi.Mode().Perm())
}

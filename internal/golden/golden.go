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

// Package golden runs table-driven formatting tests whose table lives in
// the file system.
//
// Each case is a YAML file holding the options to format with and the
// source to format:
//
//	options:
//	  align_var_def_span: 2
//	source: |
//	  int a; |@ a:var
//	  char *bbbb; |@ bbbb:var
//
// The expected output of case "foo.yaml" lives next to it in
// "foo.yaml.out".
package golden

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/EricMusic/uncrustify/align"
)

// OutputExtension is appended to a case's file name to find its expected
// output.
const OutputExtension = "out"

// Case is one decoded test case.
type Case struct {
	Options align.Options `yaml:"options"`
	Source  string        `yaml:"source"`
}

// ParseCase decodes the text of a case file.
func ParseCase(text string) (Case, error) {
	var c Case
	dec := yaml.NewDecoder(bytes.NewReader([]byte(text)))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Case{}, fmt.Errorf("golden: %w", err)
	}
	return c, nil
}

// Corpus is a directory of test cases.
type Corpus struct {
	// The directory holding the cases, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob of cases whose expected output
	// should be rewritten instead of checked.
	Refresh string

	// Test formats one case and returns the output.
	Test func(t *testing.T, path string, c Case) string
}

// Run runs every case under Root as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (filepath.Ext(p) == ".yaml" || filepath.Ext(p) == ".yml") {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking test data:", err)
	}
	slices.Sort(cases)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading case %q: %v", path, err)
			}
			tc, err := ParseCase(string(text))
			if err != nil {
				t.Fatalf("golden: %s: %v", path, err)
			}

			got := c.Test(t, name, tc)
			out := path + "." + OutputExtension

			if ok, _ := doublestar.Match(refresh, filepath.ToSlash(name)); ok {
				if err := os.WriteFile(out, []byte(got), 0o644); err != nil {
					t.Errorf("golden: error while writing %q: %v", out, err)
				}
				return
			}

			want, err := os.ReadFile(out)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("golden: error while loading %q: %v", out, err)
			}
			if diff := Diff(got, string(want)); diff != "" {
				t.Errorf("output mismatch for %q:\n%s", out, diff)
			}
		})
	}
}

// Diff returns a colorized unified diff from want to got, or "" if they
// are equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}

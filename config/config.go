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

// Package config reads [align.Options] from configuration files.
//
// Options are keyed by their uncrustify names, for example:
//
//	align_var_def_span: 2
//	align_var_def_star_style: dangle
//	align_right_cmt_span: 3
//
// YAML and TOML are supported. Unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/EricMusic/uncrustify/align"
	"github.com/EricMusic/uncrustify/chunk"
)

var (
	// ErrUnknownFormat is returned for a file whose format cannot be
	// determined from its name.
	ErrUnknownFormat = errors.New("config: unknown format")
	// ErrInvalidOption wraps every validation failure.
	ErrInvalidOption = errors.New("config: invalid option")
)

// Format is a configuration file syntax.
type Format int

const (
	YAML Format = iota
	TOML
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("config.Format(%d)", int(f))
	}
}

// FormatOf picks a format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the options in the file at path.
func Load(path string) (align.Options, error) {
	format, err := FormatOf(path)
	if err != nil {
		return align.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return align.Options{}, fmt.Errorf("config: %w", err)
	}
	opts, err := Parse(data, format)
	if err != nil {
		return align.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes and validates options. Empty data yields zero options.
func Parse(data []byte, format Format) (align.Options, error) {
	var opts align.Options
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return align.Options{}, fmt.Errorf("config: decoding yaml: %w", err)
		}

	case TOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&opts)
		if err != nil {
			return align.Options{}, fmt.Errorf("config: decoding toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			return align.Options{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidOption, strings.Join(keys, ", "))
		}

	default:
		return align.Options{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err := Validate(opts); err != nil {
		return align.Options{}, err
	}
	return opts, nil
}

// Validate reports every option with an out-of-range value.
func Validate(opts align.Options) error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidOption, name, v))
		}
	}
	style := func(name string, s chunk.StarStyle) {
		if s > chunk.StarDangle {
			errs = append(errs, fmt.Errorf("%w: %s: unknown star style %d", ErrInvalidOption, name, int(s)))
		}
	}

	check("output_tab_size", opts.OutputTabSize)
	check("indent_columns", opts.IndentColumns)

	check("align_typedef_span", opts.TypedefSpan)
	check("align_typedef_gap", opts.TypedefGap)
	style("align_typedef_star_style", opts.TypedefStarStyle)
	style("align_typedef_amp_style", opts.TypedefAmpStyle)

	check("align_oc_msg_colon_span", opts.OCMsgColonSpan)
	check("align_oc_msg_spec_span", opts.OCMsgSpecSpan)

	check("align_var_def_span", opts.VarDefSpan)
	check("align_var_def_thresh", opts.VarDefThresh)
	check("align_var_def_gap", opts.VarDefGap)
	style("align_var_def_star_style", opts.VarDefStarStyle)
	style("align_var_def_amp_style", opts.VarDefAmpStyle)
	check("align_var_def_colon_gap", opts.VarDefColonGap)
	check("align_var_struct_span", opts.VarStructSpan)
	check("align_var_struct_thresh", opts.VarStructThresh)
	check("align_var_struct_gap", opts.VarStructGap)

	check("align_assign_span", opts.AssignSpan)
	check("align_assign_thresh", opts.AssignThresh)
	check("align_enum_equ_span", opts.EnumEquSpan)
	check("align_enum_equ_thresh", opts.EnumEquThresh)

	check("align_struct_init_span", opts.StructInitSpan)

	check("align_func_proto_span", opts.FuncProtoSpan)
	check("align_func_proto_gap", opts.FuncProtoGap)
	check("align_single_line_brace_gap", opts.SingleLineBraceGap)

	check("align_pp_define_span", opts.PPDefineSpan)
	check("align_pp_define_gap", opts.PPDefineGap)
	check("align_pp_define_func_gap", opts.PPDefineFuncGap)

	check("align_right_cmt_span", opts.RightCmtSpan)
	check("align_right_cmt_gap", opts.RightCmtGap)
	check("align_right_cmt_at_col", opts.RightCmtAtCol)

	return errors.Join(errs...)
}

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

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/EricMusic/uncrustify/chunk"
)

// Options configures [All] and the individual passes.
//
// A zero span disables the pass it belongs to; a zero threshold means no
// limit. Field tags carry the option names used in configuration files.
type Options struct {
	// Debug output. Nil discards it.
	Logger *log.Logger `yaml:"-" toml:"-"`

	// The width of a tab stop in the output. Defaults to 8.
	OutputTabSize int `yaml:"output_tab_size" toml:"output_tab_size"`
	// The number of columns per brace level. Defaults to 8.
	IndentColumns int `yaml:"indent_columns" toml:"indent_columns"`

	// Snap aligned columns to tab stops.
	OnTabstop bool `yaml:"align_on_tabstop" toml:"align_on_tabstop"`
	// Left-align numbers in call arguments; in initializer bodies, right-align
	// numbers within their slot instead.
	NumberLeft bool `yaml:"align_number_left" toml:"align_number_left"`

	TypedefSpan      int             `yaml:"align_typedef_span" toml:"align_typedef_span"`
	TypedefGap       int             `yaml:"align_typedef_gap" toml:"align_typedef_gap"`
	TypedefStarStyle chunk.StarStyle `yaml:"align_typedef_star_style" toml:"align_typedef_star_style"`
	TypedefAmpStyle  chunk.StarStyle `yaml:"align_typedef_amp_style" toml:"align_typedef_amp_style"`

	LeftShift bool `yaml:"align_left_shift" toml:"align_left_shift"`

	OCMsgColonSpan     int  `yaml:"align_oc_msg_colon_span" toml:"align_oc_msg_colon_span"`
	OCMsgOnFirstColon  bool `yaml:"align_oc_msg_on_first_colon" toml:"align_oc_msg_on_first_colon"`
	OCMsgStringLiteral bool `yaml:"align_oc_msg_string_literal" toml:"align_oc_msg_string_literal"`
	OCMsgSpecSpan      int  `yaml:"align_oc_msg_spec_span" toml:"align_oc_msg_spec_span"`

	VarDefSpan      int             `yaml:"align_var_def_span" toml:"align_var_def_span"`
	VarDefThresh    int             `yaml:"align_var_def_thresh" toml:"align_var_def_thresh"`
	VarDefGap       int             `yaml:"align_var_def_gap" toml:"align_var_def_gap"`
	VarDefStarStyle chunk.StarStyle `yaml:"align_var_def_star_style" toml:"align_var_def_star_style"`
	VarDefAmpStyle  chunk.StarStyle `yaml:"align_var_def_amp_style" toml:"align_var_def_amp_style"`
	VarDefColon     bool            `yaml:"align_var_def_colon" toml:"align_var_def_colon"`
	VarDefColonGap  int             `yaml:"align_var_def_colon_gap" toml:"align_var_def_colon_gap"`
	VarDefAttribute bool            `yaml:"align_var_def_attribute" toml:"align_var_def_attribute"`
	VarDefInline    bool            `yaml:"align_var_def_inline" toml:"align_var_def_inline"`
	VarStructSpan   int             `yaml:"align_var_struct_span" toml:"align_var_struct_span"`
	VarStructThresh int             `yaml:"align_var_struct_thresh" toml:"align_var_struct_thresh"`
	VarStructGap    int             `yaml:"align_var_struct_gap" toml:"align_var_struct_gap"`
	MixVarProto     bool            `yaml:"align_mix_var_proto" toml:"align_mix_var_proto"`

	AssignSpan    int `yaml:"align_assign_span" toml:"align_assign_span"`
	AssignThresh  int `yaml:"align_assign_thresh" toml:"align_assign_thresh"`
	EnumEquSpan   int `yaml:"align_enum_equ_span" toml:"align_enum_equ_span"`
	EnumEquThresh int `yaml:"align_enum_equ_thresh" toml:"align_enum_equ_thresh"`

	StructInitSpan int `yaml:"align_struct_init_span" toml:"align_struct_init_span"`

	FuncProtoSpan      int  `yaml:"align_func_proto_span" toml:"align_func_proto_span"`
	FuncProtoGap       int  `yaml:"align_func_proto_gap" toml:"align_func_proto_gap"`
	OnOperator         bool `yaml:"align_on_operator" toml:"align_on_operator"`
	SingleLineFunc     bool `yaml:"align_single_line_func" toml:"align_single_line_func"`
	SingleLineBrace    bool `yaml:"align_single_line_brace" toml:"align_single_line_brace"`
	SingleLineBraceGap int  `yaml:"align_single_line_brace_gap" toml:"align_single_line_brace_gap"`

	FuncParams         bool `yaml:"align_func_params" toml:"align_func_params"`
	SameFuncCallParams bool `yaml:"align_same_func_call_params" toml:"align_same_func_call_params"`

	PPDefineSpan    int `yaml:"align_pp_define_span" toml:"align_pp_define_span"`
	PPDefineGap     int `yaml:"align_pp_define_gap" toml:"align_pp_define_gap"`
	PPDefineFuncGap int `yaml:"align_pp_define_func_gap" toml:"align_pp_define_func_gap"`

	RightCmtSpan  int  `yaml:"align_right_cmt_span" toml:"align_right_cmt_span"`
	RightCmtGap   int  `yaml:"align_right_cmt_gap" toml:"align_right_cmt_gap"`
	RightCmtMix   bool `yaml:"align_right_cmt_mix" toml:"align_right_cmt_mix"`
	RightCmtAtCol int  `yaml:"align_right_cmt_at_col" toml:"align_right_cmt_at_col"`

	NLCont bool `yaml:"align_nl_cont" toml:"align_nl_cont"`
}

// WithDefaults fills in the tab size, indent width and logger if they are
// unset.
func (o Options) WithDefaults() Options {
	if o.OutputTabSize <= 0 {
		o.OutputTabSize = 8
	}
	if o.IndentColumns <= 0 {
		o.IndentColumns = 8
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

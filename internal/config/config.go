// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for the packages of this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textcmp.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// TrimTrailing removes trailing spaces and tabs from every row before comparison. Leading
	// whitespace is never touched.
	TrimTrailing bool

	// CollapseSpace replaces every run of spaces and tabs after the leading whitespace with a
	// single space.
	CollapseSpace bool

	// IgnoreCase lower-cases rows before comparison.
	IgnoreCase bool

	// IgnoreOrder compares inputs as multisets of rows instead of sequences.
	IgnoreOrder bool

	// Selector is the element tag that identifies a record in XML inputs.
	Selector string

	// KeepEmptyText emits whitespace-only text nodes when flattening records instead of
	// skipping them.
	KeepEmptyText bool

	// LabelX and LabelY name the two inputs in rendered output.
	LabelX, LabelY string

	// Context is the number of matches to include as a prefix and postfix for hunks. A negative
	// value disables hunk windowing: a single hunk stretches from the first difference to the
	// end of both inputs.
	Context int
}

// Default is the default configuration.
var Default = Config{
	TrimTrailing:  true,
	CollapseSpace: false,
	IgnoreCase:    false,
	IgnoreOrder:   false,
	Selector:      "Incident",
	KeepEmptyText: false,
	LabelX:        "A",
	LabelY:        "B",
	Context:       -1,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an API.
type Flag int

const (
	KeepTrailingSpace Flag = 1 << iota
	CollapseWhitespace
	IgnoreCase
	IgnoreOrder
	Selector
	KeepEmptyText
	Labels
	Context
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case KeepTrailingSpace:
		return "textcmp.KeepTrailingSpace"
	case CollapseWhitespace:
		return "textcmp.CollapseWhitespace"
	case IgnoreCase:
		return "textcmp.IgnoreCase"
	case IgnoreOrder:
		return "textcmp.IgnoreOrder"
	case Selector:
		return "textcmp.RecordSelector"
	case KeepEmptyText:
		return "xmlrec.KeepEmptyText"
	case Labels:
		return "unidiff.Labels"
	case Context:
		return "seqdiff.Context"
	default:
		panic("never reached")
	}
}

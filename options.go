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

package textcmp

import "znkr.io/textcmp/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// IgnoreOrder compares the inputs as multisets of rows instead of sequences: [Compare] reports
// per-value count differences instead of a unified diff.
func IgnoreOrder() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreOrder = true
		return config.IgnoreOrder
	}
}

// KeepTrailingSpace keeps trailing spaces and tabs significant in order-insensitive comparison.
// By default every row is compared with its trailing whitespace removed.
func KeepTrailingSpace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TrimTrailing = false
		return config.KeepTrailingSpace
	}
}

// CollapseWhitespace collapses every run of spaces and tabs after the leading whitespace into a
// single space before order-insensitive comparison. Leading whitespace is never altered.
func CollapseWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CollapseSpace = true
		return config.CollapseWhitespace
	}
}

// IgnoreCase compares rows case-insensitively in order-insensitive comparison.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// RecordSelector sets the element tag that identifies a record in XML inputs. The default is
// "Incident".
func RecordSelector(tag string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Selector = tag
		return config.Selector
	}
}

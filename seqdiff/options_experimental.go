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

//go:build experimental

package seqdiff

import "znkr.io/textcmp/internal/config"

// Context sets the number of matches to include as a prefix and postfix of each hunk, splitting
// the output into multiple bounded hunks the way classic diff tools do. Without this option a
// single hunk covers both inputs with full context.
//
// It's experimental because the single full-context hunk is the compatibility contract of this
// module's output; bounded hunks exist for callers that want the classic tool behavior, and
// whether that's worth a second output shape is still under evaluation.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

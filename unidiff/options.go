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

package unidiff

import "znkr.io/textcmp/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Labels sets the names used for the two inputs in the `---` and `+++` header of the rendered
// diff. The defaults are "A" and "B".
func Labels(x, y string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LabelX = x
		cfg.LabelY = y
		return config.Labels
	}
}

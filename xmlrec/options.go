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

package xmlrec

import "znkr.io/textcmp/internal/config"

// Option configures the behavior of flattening operations.
type Option = config.Option

// KeepEmptyText emits whitespace-only text nodes as empty-string entries instead of dropping
// them.
func KeepEmptyText() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.KeepEmptyText = true
		return config.KeepEmptyText
	}
}

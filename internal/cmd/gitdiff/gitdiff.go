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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// It renders every changed file with this module's differ, which makes it easy to eyeball the
// output on real repositories. The result looks like a git diff but is not one: hunks are not
// windowed, a single hunk spans the whole file with full context.
package main

import (
	"fmt"
	"os"

	"znkr.io/textcmp/unidiff"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, oldMode, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]
	_, _, _, _, _, _, _ = path, oldFile, oldHex, oldMode, newFile, newHex, newMode

	var old []byte
	if oldFile != "/dev/null" {
		var err error
		old, err = os.ReadFile(oldFile)
		if err != nil {
			return fmt.Errorf("reading old file: %v", err)
		}
	}

	var new []byte
	if newFile != "/dev/null" {
		var err error
		new, err = os.ReadFile(newFile)
		if err != nil {
			return fmt.Errorf("reading new file: %v", err)
		}
	}

	diff := unidiff.Unified(string(old), string(new), unidiff.Labels("a/"+path, "b/"+path))

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", oldHex[:10], newHex[:10], newMode)
	os.Stdout.WriteString(diff)

	return nil
}

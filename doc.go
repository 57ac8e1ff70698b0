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

// Package textcmp compares two texts and reports their differences.
//
// The entry point is [Compare], which produces either a unified diff of rows (the default) or an
// order-insensitive report of per-value count differences ([IgnoreOrder]). Order-insensitive
// comparison of XML inputs works on records instead of rows: every element matching the record
// selector (default "Incident", see [RecordSelector]) is flattened into a canonical string, so
// neither formatting nor element order shows up as a difference. An input that fails to parse as
// XML degrades to row comparison with a diagnostic note instead of failing.
//
// Rows are canonicalized before order-insensitive comparison: trailing whitespace is trimmed by
// default and [KeepTrailingSpace], [CollapseWhitespace] and [IgnoreCase] adjust this. Leading
// whitespace is never altered, indentation is always significant. Order-sensitive comparison
// works on raw rows, only line terminators are normalized.
//
// The subpackages provide direct access to the building blocks: [znkr.io/textcmp/unidiff]
// renders unified diffs, [znkr.io/textcmp/seqdiff] computes edit scripts over arbitrary slices,
// [znkr.io/textcmp/multiset] compares bags of values with duplicate counting, and
// [znkr.io/textcmp/xmlrec] flattens XML records.
//
// [znkr.io/textcmp/unidiff]: https://pkg.go.dev/znkr.io/textcmp/unidiff
// [znkr.io/textcmp/seqdiff]: https://pkg.go.dev/znkr.io/textcmp/seqdiff
// [znkr.io/textcmp/multiset]: https://pkg.go.dev/znkr.io/textcmp/multiset
// [znkr.io/textcmp/xmlrec]: https://pkg.go.dev/znkr.io/textcmp/xmlrec
package textcmp

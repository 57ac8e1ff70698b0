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

// Package xmlrec flattens XML documents into canonical record strings for order-insensitive
// comparison.
//
// A record is an element matching a configurable selector tag (default "Incident"). Flattening
// encodes a record's attributes and descendant text into a single sorted string so that two
// records with the same content compare equal regardless of attribute order or sibling order.
package xmlrec

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"znkr.io/textcmp/internal/canon"
	"znkr.io/textcmp/internal/config"
)

// ParseError reports a malformed XML document.
type ParseError struct {
	Msg string // Parser diagnostic with whitespace collapsed to single spaces.
}

func (e *ParseError) Error() string {
	return "parse XML: " + e.Msg
}

// Parse parses text as an XML document. A malformed document yields a [*ParseError].
func Parse(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, &ParseError{Msg: canon.CollapseSpace(err.Error())}
	}
	if doc.Root() == nil {
		return nil, &ParseError{Msg: "document has no root element"}
	}
	return doc, nil
}

// Records parses text and flattens it in one step.
func Records(text string, opts ...Option) ([]string, error) {
	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Flatten(doc, opts...), nil
}

// Flatten returns one canonical string per record in document order.
//
// A record is an element whose tag matches the configured selector. Matching is top-most: a
// record nested inside another record is folded into the enclosing record's string instead of
// producing its own. The canonical string is a header of the record's tag and sorted attributes,
// followed by one entry per attribute and text node of the record's subtree. Every entry has the
// form path=value with the value quoted like a Go string literal, attributes are addressed as
// path/@name and text nodes as path/#text. Entries are sorted and joined with '|', making the
// string independent of attribute order and of the order of siblings:
//
//	<Incident id="4"><Msg>disk full</Msg></Incident>
//
// flattens to
//
//	<Incident id="4">|/@id="4"|/Msg/#text="disk full"
//
// Text values are always trimmed. Whitespace-only text nodes are dropped unless [KeepEmptyText]
// is set, and interior whitespace runs collapse to a single space when whitespace collapsing is
// enabled.
func Flatten(doc *etree.Document, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Selector|config.CollapseWhitespace|config.KeepEmptyText)
	root := doc.Root()
	if root == nil {
		return nil
	}
	var recs []string
	for _, e := range findRecords(nil, root, cfg.Selector) {
		recs = append(recs, canonicalRecord(e, cfg))
	}
	return recs
}

// findRecords collects the top-most elements matching selector in document order. It doesn't
// descend into matches, nested records belong to the enclosing record.
func findRecords(recs []*etree.Element, e *etree.Element, selector string) []*etree.Element {
	if e.Tag == selector || e.FullTag() == selector {
		return append(recs, e)
	}
	for _, c := range e.ChildElements() {
		recs = findRecords(recs, c, selector)
	}
	return recs
}

func canonicalRecord(rec *etree.Element, cfg config.Config) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(rec.FullTag())
	for _, a := range sortedAttrs(rec) {
		b.WriteByte(' ')
		b.WriteString(a.FullKey())
		b.WriteByte('=')
		b.WriteString(strconv.Quote(a.Value))
	}
	b.WriteByte('>')

	entries := appendEntries(nil, rec, "", cfg)
	slices.Sort(entries)
	for _, entry := range entries {
		b.WriteByte('|')
		b.WriteString(entry)
	}
	return b.String()
}

func appendEntries(entries []string, e *etree.Element, path string, cfg config.Config) []string {
	for _, a := range sortedAttrs(e) {
		entries = append(entries, path+"/@"+a.FullKey()+"="+strconv.Quote(a.Value))
	}
	for _, child := range e.Child {
		switch c := child.(type) {
		case *etree.Element:
			entries = appendEntries(entries, c, path+"/"+c.FullTag(), cfg)
		case *etree.CharData:
			text := c.Data
			if !cfg.KeepEmptyText && strings.TrimSpace(text) == "" {
				continue
			}
			if cfg.CollapseSpace {
				text = canon.CollapseSpace(text)
			} else {
				text = strings.TrimSpace(text)
			}
			entries = append(entries, path+"/#text="+strconv.Quote(text))
		}
	}
	return entries
}

func sortedAttrs(e *etree.Element) []etree.Attr {
	attrs := slices.Clone(e.Attr)
	slices.SortFunc(attrs, func(a, b etree.Attr) int { return cmp.Compare(a.FullKey(), b.FullKey()) })
	return attrs
}

// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It is designed to simplify testing of the observerguard components by handling
// common boilerplate code for parsing source fragments and locating nodes.
package testsource

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/observerguard/internal/jsast"
)

// Parse parses a JavaScript source fragment.
//
// The tree is closed when the test finishes.
func Parse(tb testing.TB, src string) (root *sitter.Node, source []byte) {
	tb.Helper()

	return ParseFile(tb, "test.js", src)
}

// ParseFile parses source with the grammar selected by the file name extension.
func ParseFile(tb testing.TB, name, src string) (root *sitter.Node, source []byte) {
	tb.Helper()

	source = []byte(src)

	tree, err := jsast.Parse(context.Background(), name, source)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(tree.Close)

	return tree.RootNode(), source
}

// Find returns the first node of the given kind, in pre-order, whose source
// text equals text. An empty text matches any node of that kind.
func Find(tb testing.TB, root *sitter.Node, source []byte, kind, text string) *sitter.Node {
	tb.Helper()

	if n := find(root, source, kind, text); n != nil {
		return n
	}

	tb.Fatalf("Can't find %s %q", kind, text)

	return nil
}

func find(n *sitter.Node, source []byte, kind, text string) *sitter.Node {
	if n.Type() == kind && (text == "" || n.Content(source) == text) {
		return n
	}

	for i := range int(n.NamedChildCount()) {
		if found := find(n.NamedChild(i), source, kind, text); found != nil {
			return found
		}
	}

	return nil
}

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
package jsast_test

import (
	"context"
	"errors"
	"testing"

	. "fillmore-labs.com/observerguard/internal/jsast"
)

func TestDialectOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Dialect
	}{
		{"src/panel.js", JavaScript},
		{"src/Panel.JSX", JavaScript},
		{"lib/index.mjs", JavaScript},
		{"lib/index.cjs", JavaScript},
		{"src/list.ts", TypeScript},
		{"src/list.mts", TypeScript},
		{"src/view.tsx", TSX},
		{"src/types.d.cts", TypeScript},
		{"README.md", NoDialect},
		{"main.go", NoDialect},
		{"Makefile", NoDialect},
	}

	for _, tt := range tests {
		if got := DialectOf(tt.path); got != tt.want {
			t.Errorf("DialectOf(%q) = %s, want %s", tt.path, got, tt.want)
		}

		if got, want := IsScript(tt.path), tt.want != NoDialect; got != want {
			t.Errorf("IsScript(%q) = %t, want %t", tt.path, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		src  string
	}{
		{"JavaScript", "a.js", "const ro = new ResizeObserver(cb);\n"},
		{"JSX", "a.jsx", "const el = <div ref={ref} />;\n"},
		{"TypeScript", "a.ts", "let ro: ResizeObserver | null = null;\n"},
		{"TSX", "a.tsx", "const el: JSX.Element = <div />;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Parse(context.Background(), tt.path, []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			defer tree.Close()

			root := tree.RootNode()
			if got, want := root.Type(), Program; got != want {
				t.Errorf("Got root %s, want %s", got, want)
			}

			if root.HasError() {
				t.Errorf("Unexpected syntax error in %s", root.String())
			}
		})
	}
}

func TestParseUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), "style.css", []byte("a {}"))
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("Got error %v, want %v", err, ErrUnsupportedFile)
	}
}

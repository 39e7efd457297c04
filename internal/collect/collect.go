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

// Package collect implements the collection phase: a single walk over a syntax
// tree that fills a [ledger.State] with observer declarations, aliases and
// tracked method invocations.
package collect

import (
	"context"
	"runtime/trace"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/observerguard/internal/jsast"
	"fillmore-labs.com/observerguard/internal/ledger"
)

// DefaultObserverTypes are the constructors recognized as observer-producing.
var DefaultObserverTypes = []string{"MutationObserver", "ResizeObserver", "IntersectionObserver"}

// cancelCheckInterval is the number of visited nodes between context checks.
const cancelCheckInterval = 1024

// Collector walks the syntax tree of a single translation unit.
type Collector struct {
	observerTypes map[string]struct{}
}

// New creates a [Collector] recognizing the default observer types plus extra.
func New(extra ...string) Collector {
	types := make(map[string]struct{}, len(DefaultObserverTypes)+len(extra))
	for _, t := range slices.Concat(DefaultObserverTypes, extra) {
		if t == "" {
			continue
		}

		types[t] = struct{}{}
	}

	return Collector{observerTypes: types}
}

// Collect walks the tree rooted at root and returns the accumulated state.
//
// Nodes are handled at exit, after all their children. When ctx is canceled
// the walk stops and the context error is returned together with a nil state,
// so that a partially traversed unit is never verified.
func (c Collector) Collect(ctx context.Context, root *sitter.Node, src []byte) (*ledger.State, error) {
	defer trace.StartRegion(ctx, "Collect").End()

	u := unit{Collector: c, src: src, state: ledger.New()}

	if root == nil {
		return u.state, nil
	}

	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	visited := 0

	for {
		if visited++; visited%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if cursor.GoToFirstChild() {
			continue
		}

		// Leaf: exit it and every ancestor without further siblings.
		for {
			u.exit(cursor.CurrentNode())

			if cursor.GoToNextSibling() {
				break
			}

			if !cursor.GoToParent() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				return u.state, nil
			}
		}
	}
}

// unit holds the per-walk state.
type unit struct {
	Collector
	src   []byte
	state *ledger.State
}

func (u *unit) exit(n *sitter.Node) {
	if !n.IsNamed() {
		return
	}

	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case jsast.AssignmentExpr:
		u.handleAssignment(n)

	case jsast.CallExpression:
		u.handleCall(n)

	case jsast.VariableDeclarator:
		u.handleDeclarator(n)
		// keep-sorted end
	}
}

func (u *unit) isNewObserver(n *sitter.Node) bool {
	name, ok := jsast.ConstructedType(n, u.src)
	if !ok {
		return false
	}

	_, ok = u.observerTypes[name]

	return ok
}

func location(n *sitter.Node) ledger.Location {
	return ledger.Location{Start: n.StartByte(), End: n.EndByte()}
}

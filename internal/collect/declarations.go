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

package collect

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/observerguard/internal/identity"
	"fillmore-labs.com/observerguard/internal/jsast"
)

// handleDeclarator processes variable declarators (let x = ..., const x = ...).
//
//   - "const ro = new ResizeObserver(fn)" declares the observer ro.
//   - "const other = ro" aliases the declared observer ro to other.
func (u *unit) handleDeclarator(n *sitter.Node) {
	name, value := n.ChildByFieldName(jsast.FieldName), n.ChildByFieldName(jsast.FieldValue)
	if name == nil || value == nil || name.Type() != jsast.Identifier {
		return // destructuring or no initializer
	}

	switch {
	case u.isNewObserver(value):
		u.state.Declarations.Record(name.Content(u.src), location(name))

	case value.Type() == jsast.Identifier:
		declared := value.Content(u.src)
		if _, ok := u.state.Declarations.Lookup(declared); !ok {
			return
		}

		u.state.Aliases.Record(declared, identity.Identity(name.Content(u.src)), location(n))
	}
}

// handleAssignment processes assignment expressions.
//
//   - "this.ro = new ResizeObserver(fn)" declares the observer ro.
//   - "this.ro = temp" aliases the declared observer temp to this.ro.
func (u *unit) handleAssignment(n *sitter.Node) {
	left, right := n.ChildByFieldName(jsast.FieldLeft), n.ChildByFieldName(jsast.FieldRight)
	if left == nil || right == nil {
		return
	}

	switch {
	case u.isNewObserver(right):
		name, ok := bindingName(left, u.src)
		if !ok {
			return // computed property or pattern
		}

		u.state.Declarations.Record(name, location(n))

	case right.Type() == jsast.Identifier:
		declared := right.Content(u.src)
		if _, ok := u.state.Declarations.Lookup(declared); !ok {
			return
		}

		assignedTo, ok := identity.Resolve(left, u.src)
		if !ok {
			return
		}

		u.state.Aliases.Record(declared, assignedTo, location(n))
	}
}

// bindingName returns the simple name an assignment binds to:
// the identifier itself, or the property name of a member access.
func bindingName(left *sitter.Node, src []byte) (string, bool) {
	if left.Type() == jsast.Identifier {
		return left.Content(src), true
	}

	return jsast.PropertyName(left, src)
}

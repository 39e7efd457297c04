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

// Package identity resolves syntax nodes to canonical receiver identities.
//
// An identity is the string form of a dotted access chain: a bare local
// name, or a field of the current instance rendered as "this.<name>".
// Deeper chains collapse onto their object, so "this.ref.current" and
// "this.ref" denote the same identity.
package identity

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/observerguard/internal/jsast"
)

// Identity is the canonical form of a receiver or target expression.
//
// Two identities denote the same object iff their strings are equal.
// The zero value is never produced by [Resolve].
type Identity string

// String implements [fmt.Stringer].
func (i Identity) String() string { return string(i) }

// Valid reports whether the identity was resolved.
func (i Identity) Valid() bool { return i != "" }

// Resolve computes the identity of an expression.
//
// The second result is false when the expression shape is not supported
// (calls, subscripts, parenthesized expressions, a bare this, ...).
// Callers decide how to treat unresolvable expressions; Resolve never fails.
func Resolve(n *sitter.Node, src []byte) (Identity, bool) {
	if n == nil {
		return "", false
	}

	switch n.Type() {
	case jsast.Identifier:
		return Identity(n.Content(src)), true

	case jsast.MemberExpression:
		object := n.ChildByFieldName(jsast.FieldObject)
		if object == nil {
			return "", false
		}

		if object.Type() != jsast.This {
			return Resolve(object, src)
		}

		property := n.ChildByFieldName(jsast.FieldProperty)
		if property == nil {
			return "", false
		}

		return Identity("this." + property.Content(src)), true

	default:
		return "", false
	}
}

// Receiver resolves the object a member-access callee is invoked on.
//
// For "this.ro.observe" this is "this.ro", for "temp.observe" it is "temp".
func Receiver(callee *sitter.Node, src []byte) (Identity, bool) {
	if callee == nil || callee.Type() != jsast.MemberExpression {
		return "", false
	}

	return Resolve(callee.ChildByFieldName(jsast.FieldObject), src)
}

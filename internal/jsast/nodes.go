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

// Package jsast provides helpers for JavaScript and TypeScript syntax trees
// produced by tree-sitter.
package jsast

import sitter "github.com/smacker/go-tree-sitter"

// Node kinds of the tree-sitter JavaScript and TypeScript grammars.
const (
	// keep-sorted start
	Arguments           = "arguments"
	AssignmentExpr      = "assignment_expression"
	CallExpression      = "call_expression"
	Comment             = "comment"
	Identifier          = "identifier"
	MemberExpression    = "member_expression"
	NewExpression       = "new_expression"
	PrivatePropertyName = "private_property_identifier"
	Program             = "program"
	PropertyIdentifier  = "property_identifier"
	This                = "this"
	VariableDeclarator  = "variable_declarator"
	// keep-sorted end
)

// Field names of the tree-sitter JavaScript and TypeScript grammars.
const (
	FieldArguments   = "arguments"
	FieldConstructor = "constructor"
	FieldFunction    = "function"
	FieldLeft        = "left"
	FieldName        = "name"
	FieldObject      = "object"
	FieldProperty    = "property"
	FieldRight       = "right"
	FieldValue       = "value"
)

// FirstArgument returns the first argument of a call or new expression, or nil.
// Comments inside the argument list are skipped.
func FirstArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName(FieldArguments)
	if args == nil || args.Type() != Arguments {
		return nil
	}

	for i := range int(args.NamedChildCount()) {
		arg := args.NamedChild(i)
		if arg == nil || arg.Type() == Comment {
			continue
		}

		return arg
	}

	return nil
}

// PropertyName returns the simple property name of a member expression.
// The second result is false for anything but a plain or private property.
func PropertyName(member *sitter.Node, src []byte) (string, bool) {
	if member == nil || member.Type() != MemberExpression {
		return "", false
	}

	property := member.ChildByFieldName(FieldProperty)
	if property == nil {
		return "", false
	}

	switch property.Type() {
	case PropertyIdentifier, PrivatePropertyName:
		return property.Content(src), true
	}

	return "", false
}

// ConstructedType returns the constructor name of a "new T(...)" expression
// when T is a plain identifier.
func ConstructedType(n *sitter.Node, src []byte) (string, bool) {
	if n == nil || n.Type() != NewExpression {
		return "", false
	}

	constructor := n.ChildByFieldName(FieldConstructor)
	if constructor == nil || constructor.Type() != Identifier {
		return "", false
	}

	return constructor.Content(src), true
}

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
	"fillmore-labs.com/observerguard/internal/ledger"
)

// handleCall records observe, unobserve and disconnect calls on a member access.
func (u *unit) handleCall(n *sitter.Node) {
	callee := n.ChildByFieldName(jsast.FieldFunction)
	if callee == nil || callee.Type() != jsast.MemberExpression {
		return
	}

	method, ok := jsast.PropertyName(callee, u.src)
	if !ok {
		return
	}

	kind, ok := ledger.KindOf(method)
	if !ok {
		return
	}

	receiver, ok := identity.Receiver(callee, u.src)
	if !ok {
		return
	}

	if !kind.TakesTarget() {
		u.state.Methods.Record(kind, receiver, ledger.DisconnectKey, ledger.Invocation{Loc: location(n)})
		return
	}

	arg := jsast.FirstArgument(n)
	if arg == nil {
		return // observe() without a target is not tracked
	}

	target, ok := identity.Resolve(arg, u.src)
	if !ok {
		target = ledger.UnresolvedTarget
	}

	u.state.Methods.Record(kind, receiver, target, ledger.Invocation{Loc: location(n), Argument: arg.Content(u.src)})
}

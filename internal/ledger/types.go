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

package ledger

import "fillmore-labs.com/observerguard/internal/identity"

// Location is a source span in byte offsets, [Start, End).
type Location struct {
	Start, End uint32
}

// Kind classifies a tracked method call.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Observe is a call of observe(target).
	Observe Kind = iota // observe
	// Unobserve is a call of unobserve(target).
	Unobserve // unobserve
	// Disconnect is a call of disconnect().
	Disconnect // disconnect

	numKinds = iota
)

// KindOf classifies a method name. The second result is false for untracked methods.
func KindOf(method string) (Kind, bool) {
	switch method {
	case "observe":
		return Observe, true

	case "unobserve":
		return Unobserve, true

	case "disconnect":
		return Disconnect, true

	default:
		return 0, false
	}
}

// TakesTarget reports whether calls of this kind carry a target argument.
func (k Kind) TakesTarget() bool {
	return k != Disconnect
}

const (
	// DisconnectKey is the target under which disconnect calls are recorded.
	DisconnectKey identity.Identity = "<disconnect>"

	// UnresolvedTarget is the target under which calls with an unresolvable
	// first argument are recorded. It never matches another target.
	UnresolvedTarget identity.Identity = "<unresolved>"
)

// Declaration records where a binding name was constructed as an observer.
type Declaration struct {
	Loc Location
}

// Alias records that a declared observer was stored into another receiver.
type Alias struct {
	AssignedTo identity.Identity
	Loc        Location
}

// Invocation records a single tracked call site.
type Invocation struct {
	Loc Location

	// Argument is the source text of the first argument, empty for disconnect.
	Argument string
}

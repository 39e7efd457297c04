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

import (
	"iter"

	"fillmore-labs.com/observerguard/internal/identity"
)

// Declarations maps binding names to their latest observer construction.
type Declarations struct {
	m orderedMap[string, Declaration]
}

// Record stores a declaration. A redeclared name keeps only the latest location.
func (d *Declarations) Record(name string, loc Location) {
	if d.m.m == nil {
		d.m = newOrderedMap[string, Declaration]()
	}

	d.m.put(name, Declaration{Loc: loc})
}

// Lookup returns the declaration for a binding name.
func (d *Declarations) Lookup(name string) (Declaration, bool) {
	return d.m.get(name)
}

// Len returns the number of declared names.
func (d *Declarations) Len() int { return d.m.len() }

// All iterates over all declarations in insertion order.
func (d *Declarations) All() iter.Seq2[string, Declaration] { return d.m.all() }

// Aliases maps declared binding names to the receiver they were stored into.
type Aliases struct {
	m orderedMap[string, Alias]
}

// Record stores an alias. Only one alias per name is retained, the last one wins.
func (a *Aliases) Record(name string, assignedTo identity.Identity, loc Location) {
	if a.m.m == nil {
		a.m = newOrderedMap[string, Alias]()
	}

	a.m.put(name, Alias{AssignedTo: assignedTo, Loc: loc})
}

// Lookup returns the alias of a declared binding name.
func (a *Aliases) Lookup(name string) (Alias, bool) {
	return a.m.get(name)
}

// Len returns the number of aliased names.
func (a *Aliases) Len() int { return a.m.len() }

// Targets is the insertion ordered set of targets recorded for one receiver.
type Targets struct {
	m orderedMap[identity.Identity, Invocation]
}

// Lookup returns the invocation recorded for a target.
func (t Targets) Lookup(target identity.Identity) (Invocation, bool) {
	return t.m.get(target)
}

// Len returns the number of distinct targets.
func (t Targets) Len() int { return t.m.len() }

// All iterates over all targets in insertion order.
func (t Targets) All() iter.Seq2[identity.Identity, Invocation] { return t.m.all() }

// Ledger records tracked method invocations, partitioned by [Kind].
type Ledger struct {
	kinds [numKinds]orderedMap[identity.Identity, Targets]
}

// Record merges an invocation into the ledger.
//
// Entries for other targets of the same receiver are kept; a repeated
// (receiver, target) pair only updates the recorded invocation.
func (l *Ledger) Record(kind Kind, receiver, target identity.Identity, inv Invocation) {
	if kind >= numKinds {
		return
	}

	receivers := &l.kinds[kind]
	if receivers.m == nil {
		*receivers = newOrderedMap[identity.Identity, Targets]()
	}

	targets, ok := receivers.get(receiver)
	if !ok {
		targets = Targets{m: newOrderedMap[identity.Identity, Invocation]()}
		receivers.put(receiver, targets)
	}

	targets.m.put(target, inv)
}

// Targets returns the targets recorded for a receiver under a kind.
func (l *Ledger) Targets(kind Kind, receiver identity.Identity) (Targets, bool) {
	if kind >= numKinds {
		return Targets{}, false
	}

	return l.kinds[kind].get(receiver)
}

// Has reports whether a receiver has at least one record of the given kind.
func (l *Ledger) Has(kind Kind, receiver identity.Identity) bool {
	t, ok := l.Targets(kind, receiver)

	return ok && t.Len() > 0
}

// Receivers iterates over all receivers of a kind in insertion order.
func (l *Ledger) Receivers(kind Kind) iter.Seq2[identity.Identity, Targets] {
	if kind >= numKinds {
		return func(func(identity.Identity, Targets) bool) {}
	}

	return l.kinds[kind].all()
}

// State is the analysis context of one translation unit.
//
// A fresh State is created per unit and is consumed by exactly one verification.
type State struct {
	Declarations Declarations
	Aliases      Aliases
	Methods      Ledger
}

// New creates an empty [State].
func New() *State {
	return &State{}
}

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

// Package verify implements the verification phase: a pure function from a
// collected [ledger.State] to findings of one [Rule].
//
// Verification runs once after the whole unit was traversed, since an observe
// call may precede (setup) or follow (teardown) its matching unobserve or
// disconnect call.
package verify

import (
	"errors"
	"fmt"

	"fillmore-labs.com/observerguard/internal/identity"
	"fillmore-labs.com/observerguard/internal/ledger"
)

// ErrUnknownRule is returned for unknown rule identifiers.
var ErrUnknownRule = errors.New("unknown rule")

// Finding is a rule violation at an observe call.
type Finding struct {
	Rule Rule
	Loc  ledger.Location

	// Name is the reported receiver: the alias target when the observer was
	// aliased, the observing receiver otherwise.
	Name identity.Identity

	// Target is the display form of the observed target, set for [MatchingTarget].
	Target string
}

// Message returns the diagnostic message.
func (f Finding) Message() string {
	switch f.Rule {
	case MissingUnobserve:
		return fmt.Sprintf("%s does not have a corresponding unobserve or disconnect", f.Name)

	case MatchingTarget:
		return fmt.Sprintf("there isn't an unobserve invoke for %s with target %s", f.Name, f.Target)

	default:
		return fmt.Sprintf("%s: %s", f.Rule, f.Name)
	}
}

// Verify applies rule to the collected state.
//
// Findings are returned in the order the observe calls were first recorded;
// calling Verify repeatedly on the same state yields identical results.
func Verify(s *ledger.State, rule Rule) []Finding {
	if s == nil {
		return nil
	}

	var findings []Finding

	for receiver, observed := range s.Methods.Receivers(ledger.Observe) {
		p := partnerOf(s, receiver)

		for target, inv := range observed.All() {
			var (
				f  Finding
				ok bool
			)

			switch rule {
			case MissingUnobserve:
				f, ok = checkComplete(s, p, inv)

			case MatchingTarget:
				f, ok = checkTarget(s, p, target, inv)
			}

			if ok {
				findings = append(findings, f)
			}
		}
	}

	return findings
}

// partner is the receiver whose records are checked against an observed receiver.
type partner struct {
	// id is the partner identity, or the observed receiver when there is none.
	id identity.Identity

	// found is true when a partner was resolved.
	found bool
}

// partnerOf resolves the authoritative partner of an observed receiver:
// the receiver itself when it has direct unobserve or disconnect records,
// else the receiver its declaration was stored into (one hop only).
func partnerOf(s *ledger.State, receiver identity.Identity) partner {
	if s.Methods.Has(ledger.Unobserve, receiver) || s.Methods.Has(ledger.Disconnect, receiver) {
		return partner{id: receiver, found: true}
	}

	if alias, ok := s.Aliases.Lookup(receiver.String()); ok {
		return partner{id: alias.AssignedTo, found: true}
	}

	return partner{id: receiver}
}

func checkComplete(s *ledger.State, p partner, inv ledger.Invocation) (Finding, bool) {
	if p.found && (s.Methods.Has(ledger.Unobserve, p.id) || s.Methods.Has(ledger.Disconnect, p.id)) {
		return Finding{}, false
	}

	return Finding{Rule: MissingUnobserve, Loc: inv.Loc, Name: p.id}, true
}

func checkTarget(s *ledger.State, p partner, target identity.Identity, inv ledger.Invocation) (Finding, bool) {
	if !p.found {
		return Finding{}, false
	}

	unobserved, ok := s.Methods.Targets(ledger.Unobserve, p.id)
	if !ok || unobserved.Len() == 0 {
		return Finding{}, false // disconnect only, or nothing at all
	}

	if target != ledger.UnresolvedTarget {
		if _, ok := unobserved.Lookup(target); ok {
			return Finding{}, false
		}
	}

	return Finding{Rule: MatchingTarget, Loc: inv.Loc, Name: p.id, Target: displayTarget(target, inv)}, true
}

func displayTarget(target identity.Identity, inv ledger.Invocation) string {
	if target == ledger.UnresolvedTarget && inv.Argument != "" {
		return inv.Argument
	}

	return target.String()
}

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

package verify

import "fmt"

// Rule selects the verification algorithm.
type Rule uint8

//go:generate go tool stringer -type Rule -linecomment
const (
	// MissingUnobserve reports observed receivers without any unobserve or disconnect.
	MissingUnobserve Rule = iota // no-missing-unobserve-or-disconnect
	// MatchingTarget reports observed targets without a matching unobserve.
	MatchingTarget // matching-unobserve-target
)

// Rules lists all rules in declaration order.
var Rules = [...]Rule{MissingUnobserve, MatchingTarget}

// ParseRule returns the rule with the given identifier.
func ParseRule(id string) (Rule, error) {
	for _, r := range Rules {
		if r.String() == id {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, id)
}

// Description returns a one line description of the rule.
func (r Rule) Description() string {
	switch r {
	case MissingUnobserve:
		return "Missing disconnect or unobserve if observe exists"

	case MatchingTarget:
		return "Target for unobserve should match target observed previously"

	default:
		return r.String()
	}
}

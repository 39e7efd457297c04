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

// Package ledger holds the state accumulated while walking one translation unit.
//
// A [State] combines three accumulators:
//
//   - [Declarations]: binding names constructed from an observer type,
//   - [Aliases]: declared names later stored into another receiver,
//   - [Ledger]: observe, unobserve and disconnect call sites by receiver and target.
//
// Declarations are keyed by binding name, while invocations are keyed by the
// canonical [identity.Identity] of the call receiver. Aliases bridge both
// namespaces. All maps preserve insertion order, so that everything derived
// from a State is deterministic.
//
// [identity.Identity]: fillmore-labs.com/observerguard/internal/identity.Identity
package ledger

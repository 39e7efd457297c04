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

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// orderedMap is a typed view on an insertion ordered [linkedhashmap.Map].
//
// Overwriting an existing key keeps its original position.
type orderedMap[K comparable, V any] struct {
	m *linkedhashmap.Map
}

func newOrderedMap[K comparable, V any]() orderedMap[K, V] {
	return orderedMap[K, V]{m: linkedhashmap.New()}
}

func (o orderedMap[K, V]) put(key K, value V) {
	o.m.Put(key, value)
}

func (o orderedMap[K, V]) get(key K) (V, bool) {
	if o.m == nil {
		var zero V
		return zero, false
	}

	v, ok := o.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	return v.(V), true
}

func (o orderedMap[K, V]) len() int {
	if o.m == nil {
		return 0
	}

	return o.m.Size()
}

func (o orderedMap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if o.m == nil {
			return
		}

		for it := o.m.Iterator(); it.Next(); {
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}

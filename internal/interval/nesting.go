// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides interval data structures keyed by integer
// offsets.
package interval

import (
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is an interval in a [Nesting], together with its value.
type Entry[K Endpoint, V any] struct {
	Start, End K // The interval range, half-open: [Start, End).
	Value      V
}

// Contains returns whether k lies within this entry's interval.
func (e Entry[K, V]) Contains(k K) bool {
	return e.Start <= k && k < e.End
}

// Nesting is a collection of intervals (and associated values) arranged in
// layers: within a layer, no two intervals overlap.
//
// Each interval is placed in the first layer where it overlaps nothing.
// When the intervals form a tree (any two are either disjoint or one contains
// the other) and are inserted parent-first, the layer an interval lands in
// is its depth in that tree.
//
// A zero Nesting is empty and ready to use.
type Nesting[K Endpoint, V any] struct {
	// Keys in each tree are the ends of the intervals.
	layers []*btree.Map[K, *Entry[K, V]]
}

// Len returns the number of intervals in this collection.
func (n *Nesting[K, V]) Len() int {
	var total int
	for _, layer := range n.layers {
		total += layer.Len()
	}
	return total
}

// Clear resets this collection without discarding allocated memory
// (where possible).
func (n *Nesting[K, V]) Clear() {
	for _, layer := range n.layers {
		layer.Clear()
	}
}

// Insert adds a new interval to the collection.
//
// Empty intervals (start >= end) contain no points and are not inserted;
// Insert returns false for them.
func (n *Nesting[K, V]) Insert(start, end K, value V) bool {
	if start >= end {
		return false
	}

	var found *btree.Map[K, *Entry[K, V]]
	for _, layer := range n.layers {
		// Intervals in a layer are disjoint, so sorting them by end also
		// sorts them by start. The only interval that could overlap
		// [start, end) is the first one that ends after start.
		if next := first(layer, start); next == nil || end <= next.Start {
			found = layer
			break
		}
	}

	if found == nil {
		found = new(btree.Map[K, *Entry[K, V]])
		n.layers = append(n.layers, found)
	}

	found.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
	return true
}

// Containing returns an iterator over every interval that contains k, from
// the shallowest layer to the deepest.
func (n *Nesting[K, V]) Containing(k K) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, layer := range n.layers {
			next := first(layer, k)
			if next == nil || !next.Contains(k) {
				continue
			}
			if !yield(*next) {
				return
			}
		}
	}
}

// Layers returns an iterator over the layers in this collection.
//
// Within each layer, entries are yielded in order.
func (n *Nesting[K, V]) Layers() iter.Seq[iter.Seq[Entry[K, V]]] {
	return func(yield func(iter.Seq[Entry[K, V]]) bool) {
		for _, layer := range n.layers {
			if layer.Len() == 0 {
				return
			}

			entries := func(yield func(Entry[K, V]) bool) {
				layer.Scan(func(_ K, value *Entry[K, V]) bool { return yield(*value) })
			}

			if !yield(entries) {
				return
			}
		}
	}
}

// first returns the first entry in layer whose end is strictly greater
// than k, or nil.
func first[K Endpoint, V any](layer *btree.Map[K, *Entry[K, V]], k K) *Entry[K, V] {
	iter := layer.Iter()
	if !iter.Seek(k) {
		return nil
	}
	if iter.Key() == k && !iter.Next() {
		return nil
	}
	return iter.Value()
}

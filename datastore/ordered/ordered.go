/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ordered provides a sorted secondary index of (description, id) keys.
package ordered

import (
	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used by New.
const DefaultDegree = 16

// Key orders entries by Description, then ID. Including the ID keeps entries
// with equal descriptions distinct.
type Key struct {
	Description string
	ID          string
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	if k.Description != other.Description {
		return k.Description < other.Description
	}
	return k.ID < other.ID
}

// Index is a sorted set of Keys. It is not safe for concurrent mutation;
// callers serialize access.
type Index struct {
	tree *btree.BTreeG[Key]
}

// New creates an empty Index.
func New() *Index {
	return NewWithDegree(DefaultDegree)
}

// NewWithDegree creates an empty Index backed by a B-tree of the given degree.
func NewWithDegree(degree int) *Index {
	return &Index{tree: btree.NewG[Key](degree, Key.Less)}
}

// Insert adds key and reports whether it was already present.
func (x *Index) Insert(key Key) bool {
	_, replaced := x.tree.ReplaceOrInsert(key)
	return replaced
}

// Delete removes key and reports whether it was present.
func (x *Index) Delete(key Key) bool {
	_, found := x.tree.Delete(key)
	return found
}

// Has reports whether key is present.
func (x *Index) Has(key Key) bool {
	return x.tree.Has(key)
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return x.tree.Len()
}

// Ascend calls fn for each key in ascending order until fn returns false.
func (x *Index) Ascend(fn func(Key) bool) {
	x.tree.Ascend(btree.ItemIteratorG[Key](fn))
}

// Keys returns all keys in ascending order.
func (x *Index) Keys() []Key {
	keys := make([]Key, 0, x.tree.Len())
	x.tree.Ascend(func(k Key) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

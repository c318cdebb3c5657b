/*
Package datastore defines the primary-table interface the registry stores
items in.

	type DataStore[T any] interface {
	    Get(key string) (T, bool)
	    Put(entity T) error
	    Delete(key string) bool
	    Len() int
	    Keys() []string
	}

Implementations:
  - memory: map-backed table keyed by a caller-supplied key function
  - ordered: not a DataStore; a B-tree of (description, id) keys used as a
    secondary index that resolves through the primary table

The package uses Go generics so the table is typed at compile time.
*/
package datastore

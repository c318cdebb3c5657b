/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

// DataStore is a keyed table of entities. Each entity's key is derived from
// the entity itself, so a stored entity can never sit under a foreign key.
type DataStore[T any] interface {
	Get(key string) (T, bool)

	Put(entity T) error

	Delete(key string) bool

	Len() int

	Keys() []string
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"sync"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/itemstore/datastore"
	"github.com/suparena/itemstore/datastore/memory"
	"github.com/suparena/itemstore/datastore/ordered"
	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/storagemodels"
)

// Registry owns a set of items under two indexes: a primary table keyed by
// id and an ordered index of (description, id) keys that resolves through
// the primary table. Both indexes always hold the same set of items.
//
// A Registry is safe for concurrent use. Events are delivered to the sink
// after the registry's lock is released, and the sink is never called
// concurrently. Events from one goroutine arrive in the order its calls
// completed; across goroutines, delivery order may differ from mutation
// order (an added event can follow the removed event for the same id).
type Registry struct {
	mu     sync.RWMutex
	byID   datastore.DataStore[storagemodels.Item]
	byDesc *ordered.Index
	sink   Sink
	now    func() time.Time
	emitMu sync.Mutex
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Registry{
		byID:   memory.New[storagemodels.Item]().WithKeyFunc(storagemodels.Item.ID),
		byDesc: ordered.NewWithDegree(options.degree),
		sink:   options.sink,
		now:    options.clock,
	}
}

// Add stores item. It fails with a DuplicateItemError if the id is already
// registered, leaving both indexes untouched.
func (r *Registry) Add(item storagemodels.Item) error {
	if item.ID() == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	r.mu.Lock()
	if _, exists := r.byID.Get(item.ID()); exists {
		r.mu.Unlock()
		return errors.NewDuplicateItemError(item.ID())
	}
	if err := r.byID.Put(item); err != nil {
		r.mu.Unlock()
		return err
	}
	r.byDesc.Insert(keyOf(item))
	r.mu.Unlock()

	r.emit(storagemodels.ActionAdded, item)
	return nil
}

// FindByID returns the item registered under id, or an ItemNotFoundError.
func (r *Registry) FindByID(id string) (storagemodels.Item, error) {
	r.mu.RLock()
	item, exists := r.byID.Get(id)
	r.mu.RUnlock()

	if !exists {
		return storagemodels.Item{}, errors.NewItemNotFoundError(id)
	}

	r.emit(storagemodels.ActionFound, item)
	return item, nil
}

// Remove deletes the item registered under id from both indexes, or fails
// with an ItemNotFoundError.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	item, exists := r.byID.Get(id)
	if !exists {
		r.mu.Unlock()
		return errors.NewItemNotFoundError(id)
	}
	r.byID.Delete(id)
	r.byDesc.Delete(keyOf(item))
	r.mu.Unlock()

	r.emit(storagemodels.ActionRemoved, item)
	return nil
}

// ListByDescription returns one Listing per item in ascending order of
// description. Items sharing a description are ordered by id.
func (r *Registry) ListByDescription() []storagemodels.Listing {
	r.mu.RLock()
	items := make([]storagemodels.Item, 0, r.byDesc.Len())
	r.byDesc.Ascend(func(k ordered.Key) bool {
		if item, ok := r.byID.Get(k.ID); ok {
			items = append(items, item)
		}
		return true
	})
	r.mu.RUnlock()

	listings := make([]storagemodels.Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, storagemodels.ListingOf(item))
		r.emit(storagemodels.ActionListed, item)
	}
	return listings
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID.Len()
}

// Contains reports whether id is registered. It emits no event.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.byID.Get(id)
	return exists
}

func (r *Registry) emit(action storagemodels.Action, item storagemodels.Item) {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()
	r.sink.Notify(storagemodels.NewEvent(action, item, strfmt.DateTime(r.now())))
}

func keyOf(item storagemodels.Item) ordered.Key {
	return ordered.Key{Description: item.Description(), ID: item.ID()}
}

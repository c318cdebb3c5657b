/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides a map-backed implementation of datastore.DataStore.
package memory

import (
	"sort"
	"sync"

	"github.com/suparena/itemstore/errors"
)

// DataStore is an in-memory datastore.DataStore[T]
type DataStore[T any] struct {
	mu         sync.RWMutex
	data       map[string]T
	getKeyFunc func(entity T) string
}

// New creates a new in-memory DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithKeyFunc sets the function used to extract keys from entities
func (m *DataStore[T]) WithKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// Get retrieves an entity by key
func (m *DataStore[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, exists := m.data[key]
	return entity, exists
}

// Put stores an entity under its extracted key, replacing any previous one.
func (m *DataStore[T]) Put(entity T) error {
	if m.getKeyFunc == nil {
		return errors.NewValidationError("key", "no key function configured")
	}

	key := m.getKeyFunc(entity)
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entity
	return nil
}

// Delete removes an entity by key and reports whether it was present
func (m *DataStore[T]) Delete(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return false
	}
	delete(m.data, key)
	return true
}

// Len returns the number of stored entities
func (m *DataStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns the stored keys in ascending order
func (m *DataStore[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetData replaces the internal data map with a copy of data
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]T, len(data))
	for k, v := range data {
		m.data[k] = v
	}
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	return m.Len()
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

// GetData returns a copy of the internal data map
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Item is an inventory record. Its fields are fixed at construction;
// an update is modeled as a remove followed by an add.
type Item struct {
	id          string
	description string
	location    string
}

// NewItem constructs an Item.
func NewItem(id, description, location string) Item {
	return Item{id: id, description: description, location: location}
}

// ID returns the caller-supplied unique identifier.
func (i Item) ID() string { return i.id }

// Description returns the display text. Descriptions are not unique.
func (i Item) Description() string { return i.description }

// Location returns the free-form placement text.
func (i Item) Location() string { return i.location }

// Listing is one entry of an ordered enumeration by description.
type Listing struct {
	ID          string
	Description string
	Location    string
}

// ListingOf returns the Listing for item.
func ListingOf(item Item) Listing {
	return Listing{
		ID:          item.id,
		Description: item.description,
		Location:    item.location,
	}
}

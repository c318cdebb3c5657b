/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/go-openapi/strfmt"
)

// Action names what a registry operation did.
type Action string

const (
	ActionAdded   Action = "added"
	ActionFound   Action = "found"
	ActionRemoved Action = "removed"
	ActionListed  Action = "listed"
)

// Event is the confirmation record emitted for each successful operation.
type Event struct {
	Action      Action          `json:"action"`
	ItemID      string          `json:"itemId"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	At          strfmt.DateTime `json:"at"`
}

// NewEvent builds an Event describing action on item.
func NewEvent(action Action, item Item, at strfmt.DateTime) Event {
	return Event{
		Action:      action,
		ItemID:      item.id,
		Description: item.description,
		Location:    item.location,
		At:          at,
	}
}

// String renders the event as a single human-readable line.
func (e Event) String() string {
	switch e.Action {
	case ActionAdded:
		return fmt.Sprintf("Successfully added ID : %s", e.ItemID)
	case ActionFound:
		return fmt.Sprintf("Successfully found item, ID : %s (Desc: %s, at %s)", e.ItemID, e.Description, e.Location)
	case ActionRemoved:
		return fmt.Sprintf("Successfully removed ID : %s", e.ItemID)
	case ActionListed:
		return fmt.Sprintf("Description: %s, Location: %s", e.Description, e.Location)
	default:
		return fmt.Sprintf("%s ID : %s", e.Action, e.ItemID)
	}
}

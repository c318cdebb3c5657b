/*
Package storagemodels defines the records exchanged with the registry.

Item:
An immutable inventory record built with NewItem and read through accessors:

	item := storagemodels.NewItem("ITEM001", "LED Light", "Aisle 3, Shelf 1")
	item.ID()          // "ITEM001"
	item.Description() // "LED Light"
	item.Location()    // "Aisle 3, Shelf 1"

Listing:
One entry of an ordered enumeration by description.

Event:
The confirmation record a registry emits for each successful operation:

	type Event struct {
	    Action      Action          // added, found, removed or listed
	    ItemID      string
	    Description string
	    Location    string
	    At          strfmt.DateTime // from the registry's clock
	}

Event.String renders the console line for the action.
*/
package storagemodels

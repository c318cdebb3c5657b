/*
Package itemstore provides an in-memory inventory registry.

Items are added, looked up by id, removed, and listed in description order.
The Registry keeps two indexes over the same items:
  - a primary table keyed by id that owns every record
  - an ordered index of (description, id) keys that resolves through it

Because the ordered index is keyed by id as well as description, items that
share a description are all listed and removing one never disturbs another.

Basic Usage:

	reg := itemstore.New(itemstore.WithSink(itemstore.WriterSink(os.Stdout)))

	err := reg.Add(storagemodels.NewItem("ITEM001", "LED Light", "Aisle 3, Shelf 1"))
	if errors.IsAlreadyExists(err) {
	    // id taken; registry unchanged
	}

	item, err := reg.FindByID("ITEM001")
	err = reg.Remove("ITEM003") // errors.IsNotFound(err) == true

	for _, l := range reg.ListByDescription() {
	    fmt.Println(l.Description, l.Location)
	}

Failures are returned, never logged by the registry itself. Confirmation
records for successful operations go to the configured Sink.
*/
package itemstore

/*
Package errors provides semantic error types for the itemstore registry.

The registry fails in exactly two ways, each with its own type carrying the
offending id:

	var (
	    ErrNotFound      = errors.New("item not found")
	    ErrAlreadyExists = errors.New("item already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	)

Usage:

	item, err := reg.FindByID("ITEM003")
	if err != nil {
	    if errors.IsNotFound(err) {
	        id, _ := errors.ItemID(err)
	        fmt.Printf("no item %s\n", id)
	    }
	    return err
	}

	err := errors.NewDuplicateItemError("ITEM001")
	err := errors.NewItemNotFoundError("ITEM003")
	err := errors.NewValidationError("id", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors

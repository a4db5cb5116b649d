package customer

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// Reader provides read operations for customers
type Reader interface {
	Get(ctx context.Context, id string) (Customer, error)
	// List returns all records in creation order
	List(ctx context.Context) ([]Customer, error)
}

// Writer provides write operations for customers
type Writer interface {
	/* Upsert creates the record if the id is unseen, otherwise merges the
	 * supplied fields into it. The existence check and the merge are one
	 * atomic step. Returns the resulting record and whether it was created.
	 */
	Upsert(ctx context.Context, id string, update Update) (Customer, bool, error)
	/* Patch merges the supplied fields into an existing record
	 * Returns ErrNotFound if the id does not exist
	 */
	Patch(ctx context.Context, id string, update Update) (Customer, error)
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	Reader
	Writer
}

// store/store.go
package store

import "errors"

// Collection names used by the application
const (
	StudentsCollection        = "students"
	InstitutionsCollection    = "institutions"
	TripsCollection           = "trips"
	FuelExpensesCollection    = "fuelExpenses"
	GeneralExpensesCollection = "generalExpenses"
)

// Sentinel errors shared by all store implementations so repositories stay
// backend-agnostic
var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("document store unavailable")
)

// Record is a stored document together with its store-assigned id
type Record struct {
	ID   string
	Data map[string]interface{}
}

// Update is a partial patch. Set applies only the supplied fields; Delete
// removes fields entirely, so that the field is absent afterward rather than
// present with an empty value. Queries filtering on field existence depend on
// this distinction.
type Update struct {
	Set    map[string]interface{}
	Delete []string
}

// WriteOp is one operation inside a batched write
type WriteOp struct {
	Collection string
	ID         string
	Kind       OpKind
	Patch      Update
}

// OpKind discriminates batched write operations
type OpKind int

const (
	OpPatch OpKind = iota
	OpDelete
)

// Store is the document-store contract: schemaless collections of id-keyed
// documents. Two implementations exist, an in-memory store used for tests and
// offline mode, and a Postgres-backed store; callers select one at startup.
type Store interface {
	// List returns every document in a collection
	List(collection string) ([]Record, error)

	// Query returns documents whose fields equal every entry in filter
	Query(collection string, filter map[string]interface{}) ([]Record, error)

	// Add stores a new document and returns its store-assigned id
	Add(collection string, doc map[string]interface{}) (string, error)

	// Patch applies a partial update to one document
	Patch(collection, id string, update Update) error

	// Delete removes one document
	Delete(collection, id string) error

	// Batch applies the given patch/delete operations together. Atomicity
	// holds per batch within one store; there is no cross-batch transaction.
	Batch(ops []WriteOp) error
}

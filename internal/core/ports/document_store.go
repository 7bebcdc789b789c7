package ports

import "context"

// Document is the loosely-typed representation handed to the document store.
// The typed domain model and this storage shape are deliberately two layers
// connected by explicit mapping functions in the service package.
type Document map[string]any

// DocumentStore is the generic persistence capability: one implementation
// reused per entity type, parameterized by logical collection name.
type DocumentStore interface {
	// Create persists doc into the named collection and returns the
	// store-assigned id as a string. Failures wrap domain.ErrStorage.
	Create(ctx context.Context, collection string, doc Document) (string, error)

	// List returns up to limit documents matching filter (empty filter = all).
	// Each returned document exposes the store-assigned id under the public
	// "id" key; internal id representations are never leaked. Order is
	// store-defined.
	List(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)

	// Ping reports connectivity. Used only by the diagnostic endpoint.
	Ping(ctx context.Context) error

	// Collections lists collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)
}

// Package storage provides the persistence adapter for the store: one
// serialized JSON blob per entity collection, written under a fixed,
// well-known key. There is no schema version field; format changes are not
// backward-compatible and are not detected.
package storage

// Well-known keys, one per collection.
const (
	KeyCustomers    = "foodbazar_customers"
	KeyProducts     = "foodbazar_products"
	KeyTransactions = "foodbazar_transactions"
)

// Backend is the key-value blob store the store persists into. Writes are
// synchronous and unbuffered: every mutating store operation saves the entire
// affected collection immediately.
type Backend interface {
	// Load returns the blob stored under key. The second return value is
	// false when the key has never been written (distinct from an error).
	Load(key string) ([]byte, bool, error)

	// Save writes the blob under key, replacing any previous value.
	Save(key string, blob []byte) error

	// Delete removes the key. Removing an absent key is not an error.
	Delete(key string) error

	// Close releases the backend's resources.
	Close() error
}

// Package store owns the three entity collections and is the single source of
// truth for reads and writes. Every mutating operation persists the entire
// affected collection to the storage backend before returning.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/infrastructure/storage"
)

// Store holds the customer, product and transaction collections in memory,
// in insertion order, and mirrors them to a storage backend. It is safe for
// concurrent use; all mutations run under a single write lock.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	log     zerolog.Logger

	customers    []entity.Customer
	products     []entity.Product
	transactions []entity.Transaction
}

// New creates a store bound to the given backend. Each collection is loaded
// from its well-known key; a collection whose key was never written is seeded
// with the built-in demo dataset and persisted immediately, so a fresh
// environment is never empty.
func New(backend storage.Backend, log zerolog.Logger) (*Store, error) {
	s := &Store{backend: backend, log: log}

	if err := loadOrSeed(backend, storage.KeyCustomers, &s.customers, seedCustomers); err != nil {
		return nil, err
	}
	if err := loadOrSeed(backend, storage.KeyProducts, &s.products, seedProducts); err != nil {
		return nil, err
	}
	if err := loadOrSeed(backend, storage.KeyTransactions, &s.transactions, seedTransactions); err != nil {
		return nil, err
	}

	log.Info().
		Int("customers", len(s.customers)).
		Int("products", len(s.products)).
		Int("transactions", len(s.transactions)).
		Msg("store initialized")

	return s, nil
}

func loadOrSeed[T any](backend storage.Backend, key string, dst *[]T, seed func() []T) error {
	blob, found, err := backend.Load(key)
	if err != nil {
		return err
	}
	if !found {
		*dst = seed()
		return persist(backend, key, *dst)
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func persist[T any](backend storage.Backend, key string, collection []T) error {
	if collection == nil {
		collection = []T{}
	}
	blob, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return backend.Save(key, blob)
}

// Customers returns a copy of the customer collection in insertion order.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Customer(nil), s.customers...)
}

// Customer returns the customer with the given id. Absence is reported via
// the second return value, not as an error.
func (s *Store) Customer(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// AddCustomer appends the customer and persists the collection. The store
// performs no field validation; callers construct entities and obtain IDs
// from NextCustomerID.
func (s *Store) AddCustomer(c entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	s.log.Debug().Str("id", c.ID).Msg("customer added")
	return persist(s.backend, storage.KeyCustomers, s.customers)
}

// UpdateCustomer replaces the stored customer with the same ID. It reports
// false, without error, when no such customer exists.
func (s *Store) UpdateCustomer(c entity.Customer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return true, persist(s.backend, storage.KeyCustomers, s.customers)
		}
	}
	return false, nil
}

// DeleteCustomer removes the customer with the given id. Deleting a customer
// does not cascade to their historical transactions; those keep the name
// snapshot taken at commit time. Absence reports false without error.
func (s *Store) DeleteCustomer(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.log.Debug().Str("id", id).Msg("customer deleted")
			return true, persist(s.backend, storage.KeyCustomers, s.customers)
		}
	}
	return false, nil
}

// Products returns a copy of the product collection in insertion order.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// AddProduct appends the product and persists the collection.
func (s *Store) AddProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.log.Debug().Str("id", p.ID).Msg("product added")
	return persist(s.backend, storage.KeyProducts, s.products)
}

// UpdateProduct replaces the stored product with the same ID. It reports
// false, without error, when no such product exists.
func (s *Store) UpdateProduct(p entity.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return true, persist(s.backend, storage.KeyProducts, s.products)
		}
	}
	return false, nil
}

// DeleteProduct removes the product with the given id. Past transactions keep
// their productName/price snapshots. Absence reports false without error.
func (s *Store) DeleteProduct(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.log.Debug().Str("id", id).Msg("product deleted")
			return true, persist(s.backend, storage.KeyProducts, s.products)
		}
	}
	return false, nil
}

// Transactions returns a copy of the transaction collection in insertion order.
func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTransactions(s.transactions)
}

// Transaction returns the transaction with the given id.
func (s *Store) Transaction(id string) (entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			t.Items = t.CloneItems()
			return t, true
		}
	}
	return entity.Transaction{}, false
}

// TransactionsByCustomer returns the customer's transactions in insertion
// order. An unknown customer yields an empty slice, not an error.
func (s *Store) TransactionsByCustomer(customerID string) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Transaction
	for _, t := range s.transactions {
		if t.CustomerID == customerID {
			t.Items = t.CloneItems()
			out = append(out, t)
		}
	}
	return out
}

// DeleteTransaction removes the transaction with the given id. The customer
// counter and stock side effects of the original commit are NOT reversed.
func (s *Store) DeleteTransaction(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.log.Debug().Str("id", id).Msg("transaction deleted")
			return true, persist(s.backend, storage.KeyTransactions, s.transactions)
		}
	}
	return false, nil
}

// CommitResult reports which side effects of a commit were applied. The
// transaction itself is always appended; a missing customer or product
// reference skips only its own side effect.
type CommitResult struct {
	Transaction     entity.Transaction `json:"transaction"`
	CustomerApplied bool               `json:"customerApplied"`
	SkippedProducts []string           `json:"skippedProducts,omitempty"`
}

// CommitTransaction appends the transaction and applies its side effects in
// one critical section: the referenced customer's totalPurchases/totalSpent
// counters are incremented and each referenced product's stock is decremented
// by the item quantity. No other operation can observe the transaction log
// updated with stale counters.
//
// Missing references are skipped, never rejected: the transaction commits
// regardless and the result says what was skipped. All three collections are
// persisted after the in-memory mutations; a persistence error is returned
// with the in-memory state already applied.
func (s *Store) CommitTransaction(t entity.Transaction) (CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Items = t.CloneItems()
	s.transactions = append(s.transactions, t)

	result := CommitResult{Transaction: t}

	for i := range s.customers {
		if s.customers[i].ID == t.CustomerID {
			s.customers[i].TotalPurchases++
			s.customers[i].TotalSpent += t.TotalAmount
			result.CustomerApplied = true
			break
		}
	}

	productsTouched := false
	for _, item := range t.Items {
		found := false
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				s.products[i].Stock -= item.Quantity
				found = true
				productsTouched = true
				break
			}
		}
		if !found {
			result.SkippedProducts = append(result.SkippedProducts, item.ProductID)
		}
	}

	s.log.Info().
		Str("id", t.ID).
		Str("customer", t.CustomerID).
		Float64("total", t.TotalAmount).
		Bool("customerApplied", result.CustomerApplied).
		Strs("skippedProducts", result.SkippedProducts).
		Msg("transaction committed")

	if err := persist(s.backend, storage.KeyTransactions, s.transactions); err != nil {
		return result, err
	}
	if result.CustomerApplied {
		if err := persist(s.backend, storage.KeyCustomers, s.customers); err != nil {
			return result, err
		}
	}
	if productsTouched {
		if err := persist(s.backend, storage.KeyProducts, s.products); err != nil {
			return result, err
		}
	}
	return result, nil
}

// ResetToSeedData discards all persisted state and reseeds the three
// collections from the built-in dataset. Calling it twice in a row yields the
// same collections as calling it once.
func (s *Store) ResetToSeedData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{storage.KeyCustomers, storage.KeyProducts, storage.KeyTransactions} {
		if err := s.backend.Delete(key); err != nil {
			return err
		}
	}

	s.customers = seedCustomers()
	s.products = seedProducts()
	s.transactions = seedTransactions()

	s.log.Info().Msg("store reset to seed data")

	if err := persist(s.backend, storage.KeyCustomers, s.customers); err != nil {
		return err
	}
	if err := persist(s.backend, storage.KeyProducts, s.products); err != nil {
		return err
	}
	return persist(s.backend, storage.KeyTransactions, s.transactions)
}

func cloneTransactions(in []entity.Transaction) []entity.Transaction {
	out := append([]entity.Transaction(nil), in...)
	for i := range out {
		out[i].Items = out[i].CloneItems()
	}
	return out
}

package store

import (
	"fmt"
	"strconv"
	"strings"
)

// ID prefixes follow the <prefix><zero-padded sequence> convention.
const (
	customerIDPrefix    = "C"
	productIDPrefix     = "P"
	transactionIDPrefix = "T"
)

// NextCustomerID issues the next customer ID (C001, C002, ...).
func (s *Store) NextCustomerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.customers))
	for i, c := range s.customers {
		ids[i] = c.ID
	}
	return nextID(customerIDPrefix, ids)
}

// NextProductID issues the next product ID (P001, P002, ...).
func (s *Store) NextProductID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.products))
	for i, p := range s.products {
		ids[i] = p.ID
	}
	return nextID(productIDPrefix, ids)
}

// NextTransactionID issues the next transaction ID (T001, T002, ...).
func (s *Store) NextTransactionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.transactions))
	for i, t := range s.transactions {
		ids[i] = t.ID
	}
	return nextID(transactionIDPrefix, ids)
}

// nextID returns prefix + zero-padded(max existing sequence + 1). Deriving
// the sequence from the highest existing suffix rather than the collection
// length means a deleted entity can never cause an ID to be reissued.
func nextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

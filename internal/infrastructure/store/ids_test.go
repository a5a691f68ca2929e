package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		expected string
	}{
		{"empty collection", "C", nil, "C001"},
		{"sequential", "C", []string{"C001", "C002", "C003"}, "C004"},
		{"gap does not reissue", "T", []string{"T001", "T005"}, "T006"},
		{"unparseable ids ignored", "P", []string{"P002", "Pabc", "legacy"}, "P003"},
		{"pads past three digits", "T", []string{"T999"}, "T1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextID(tt.prefix, tt.existing))
		})
	}
}

func TestNextIDAfterDelete(t *testing.T) {
	s, _ := newTestStore(t)

	// Deleting a non-latest customer must not cause C002 to be reissued
	ok, err := s.DeleteCustomer("C002")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "C006", s.NextCustomerID())
}

func TestNextIDsFromSeed(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, "C006", s.NextCustomerID())
	assert.Equal(t, "P011", s.NextProductID())
	assert.Equal(t, "T006", s.NextTransactionID())
}

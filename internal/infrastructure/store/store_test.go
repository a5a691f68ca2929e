package store

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/domain/enum"
	"github.com/foodbazar/retail-api/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	s, err := New(backend, zerolog.Nop())
	require.NoError(t, err)
	return s, backend
}

func TestNewSeedsEmptyBackend(t *testing.T) {
	s, backend := newTestStore(t)

	assert.Len(t, s.Customers(), 5)
	assert.Len(t, s.Products(), 10)
	assert.Len(t, s.Transactions(), 5)

	// Seeding writes the blobs immediately
	for _, key := range []string{storage.KeyCustomers, storage.KeyProducts, storage.KeyTransactions} {
		_, found, err := backend.Load(key)
		require.NoError(t, err)
		assert.True(t, found, "key %s should be persisted after seeding", key)
	}
}

func TestNewLoadsPersistedState(t *testing.T) {
	s1, backend := newTestStore(t)

	err := s1.AddCustomer(entity.Customer{ID: "C006", Name: "Test Customer", JoinDate: "2026-08-01"})
	require.NoError(t, err)

	// A second store over the same backend loads, not reseeds
	s2, err := New(backend, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, s2.Customers(), 6)

	c, ok := s2.Customer("C006")
	require.True(t, ok)
	assert.Equal(t, "Test Customer", c.Name)
}

func TestSeedCountersMatchTransactions(t *testing.T) {
	s, _ := newTestStore(t)

	for _, c := range s.Customers() {
		var purchases int
		var spent float64
		for _, tx := range s.TransactionsByCustomer(c.ID) {
			purchases++
			spent += tx.TotalAmount
		}
		assert.Equal(t, c.TotalPurchases, purchases, "customer %s purchase count", c.ID)
		assert.InDelta(t, c.TotalSpent, spent, 0.001, "customer %s spend", c.ID)
	}
}

func TestUpdateCustomerAbsentIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.UpdateCustomer(entity.Customer{ID: "C999", Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, s.Customers(), 5)
	_, found := s.Customer("C999")
	assert.False(t, found)
}

func TestDeleteCustomerAbsentIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.DeleteCustomer("C999")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, s.Customers(), 5)
}

func TestDeleteCustomerKeepsTransactions(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.DeleteCustomer("C001")
	require.NoError(t, err)
	require.True(t, ok)

	// History survives with the name snapshot
	txs := s.TransactionsByCustomer("C001")
	require.Len(t, txs, 2)
	assert.Equal(t, "Aarav Sharma", txs[0].CustomerName)
}

func TestCommitTransactionAppliesSideEffects(t *testing.T) {
	s, _ := newTestStore(t)

	before, ok := s.Product("P001")
	require.True(t, ok)

	result, err := s.CommitTransaction(entity.Transaction{
		ID: "T006", CustomerID: "C004", CustomerName: "Priya Nair",
		Date: time.Now().UTC(),
		Items: []entity.TransactionItem{
			{ProductID: "P001", ProductName: "Whole Milk", Quantity: 2, Price: 3.50, Subtotal: 7.00},
		},
		TotalAmount: 7.00, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
	})
	require.NoError(t, err)

	assert.True(t, result.CustomerApplied)
	assert.Empty(t, result.SkippedProducts)
	assert.Len(t, s.Transactions(), 6)

	c, ok := s.Customer("C004")
	require.True(t, ok)
	assert.Equal(t, 1, c.TotalPurchases)
	assert.InDelta(t, 7.00, c.TotalSpent, 0.001)

	p, ok := s.Product("P001")
	require.True(t, ok)
	assert.Equal(t, before.Stock-2, p.Stock)
}

func TestCommitTransactionMissingCustomer(t *testing.T) {
	s, _ := newTestStore(t)

	result, err := s.CommitTransaction(entity.Transaction{
		ID: "T006", CustomerID: "C999", CustomerName: "Walk-in",
		Date: time.Now().UTC(),
		Items: []entity.TransactionItem{
			{ProductID: "P003", ProductName: "Bananas", Quantity: 5, Price: 0.60, Subtotal: 3.00},
		},
		TotalAmount: 3.00, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
	})
	require.NoError(t, err)

	// The transaction lands, only the counter update is skipped
	assert.False(t, result.CustomerApplied)
	assert.Len(t, s.Transactions(), 6)

	p, ok := s.Product("P003")
	require.True(t, ok)
	assert.Equal(t, 295, p.Stock)
}

func TestCommitTransactionMissingProduct(t *testing.T) {
	s, _ := newTestStore(t)

	result, err := s.CommitTransaction(entity.Transaction{
		ID: "T006", CustomerID: "C005", CustomerName: "Vikram Rao",
		Date: time.Now().UTC(),
		Items: []entity.TransactionItem{
			{ProductID: "P999", ProductName: "Discontinued", Quantity: 1, Price: 2.00, Subtotal: 2.00},
			{ProductID: "P006", ProductName: "Whole Wheat Bread", Quantity: 1, Price: 2.75, Subtotal: 2.75},
		},
		TotalAmount: 4.75, PaymentMethod: enum.PaymentCard, Status: enum.StatusCompleted,
	})
	require.NoError(t, err)

	assert.True(t, result.CustomerApplied)
	assert.Equal(t, []string{"P999"}, result.SkippedProducts)

	p, ok := s.Product("P006")
	require.True(t, ok)
	assert.Equal(t, 59, p.Stock)
}

func TestCommitTransactionPersistsAllCollections(t *testing.T) {
	s1, backend := newTestStore(t)

	_, err := s1.CommitTransaction(entity.Transaction{
		ID: "T006", CustomerID: "C004", CustomerName: "Priya Nair",
		Date: time.Now().UTC(),
		Items: []entity.TransactionItem{
			{ProductID: "P010", ProductName: "Eggs", Quantity: 2, Price: 4.20, Subtotal: 8.40},
		},
		TotalAmount: 8.40, PaymentMethod: enum.PaymentMobile, Status: enum.StatusCompleted,
	})
	require.NoError(t, err)

	s2, err := New(backend, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, s2.Transactions(), 6)
	c, ok := s2.Customer("C004")
	require.True(t, ok)
	assert.Equal(t, 1, c.TotalPurchases)
	p, ok := s2.Product("P010")
	require.True(t, ok)
	assert.Equal(t, 198, p.Stock)
}

func TestCommitTransactionConcurrent(t *testing.T) {
	s, _ := newTestStore(t)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			_, err := s.CommitTransaction(entity.Transaction{
				ID: s.NextTransactionID(), CustomerID: "C005", CustomerName: "Vikram Rao",
				Date: time.Now().UTC(),
				Items: []entity.TransactionItem{
					{ProductID: "P003", ProductName: "Bananas", Quantity: 1, Price: 0.60, Subtotal: 0.60},
				},
				TotalAmount: 0.60, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Transactions(), 5+n)
	c, ok := s.Customer("C005")
	require.True(t, ok)
	assert.Equal(t, n, c.TotalPurchases)
	assert.InDelta(t, 6.00, c.TotalSpent, 0.001)
	p, ok := s.Product("P003")
	require.True(t, ok)
	assert.Equal(t, 290, p.Stock)
}

func TestDeleteTransactionDoesNotReverseSideEffects(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CommitTransaction(entity.Transaction{
		ID: "T006", CustomerID: "C004", CustomerName: "Priya Nair",
		Date: time.Now().UTC(),
		Items: []entity.TransactionItem{
			{ProductID: "P001", ProductName: "Whole Milk", Quantity: 1, Price: 3.50, Subtotal: 3.50},
		},
		TotalAmount: 3.50, PaymentMethod: enum.PaymentCash, Status: enum.StatusCompleted,
	})
	require.NoError(t, err)

	ok, err := s.DeleteTransaction("T006")
	require.NoError(t, err)
	require.True(t, ok)

	c, _ := s.Customer("C004")
	assert.Equal(t, 1, c.TotalPurchases)
	p, _ := s.Product("P001")
	assert.Equal(t, 119, p.Stock)
}

func TestResetToSeedData(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddCustomer(entity.Customer{ID: "C006", Name: "Extra"}))
	ok, err := s.DeleteProduct("P001")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.ResetToSeedData())

	assert.Len(t, s.Customers(), 5)
	assert.Len(t, s.Products(), 10)
	assert.Len(t, s.Transactions(), 5)
	_, found := s.Customer("C006")
	assert.False(t, found)

	// Resetting again changes nothing
	require.NoError(t, s.ResetToSeedData())
	assert.Len(t, s.Customers(), 5)
	assert.Len(t, s.Products(), 10)
	assert.Len(t, s.Transactions(), 5)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s, _ := newTestStore(t)

	customers := s.Customers()
	customers[0].Name = "Mutated"
	c, ok := s.Customer(customers[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "Mutated", c.Name)

	txs := s.Transactions()
	txs[0].Items[0].Quantity = 9999
	stored, ok := s.Transaction(txs[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, 9999, stored.Items[0].Quantity)
}

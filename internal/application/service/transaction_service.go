package service

import (
	"math"
	"time"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/domain/enum"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/pkg/apperror"
	"github.com/foodbazar/retail-api/pkg/validator"
)

// TransactionService handles point-of-sale transactions
type TransactionService struct {
	store *store.Store
}

// NewTransactionService creates a new transaction service
func NewTransactionService(s *store.Store) *TransactionService {
	return &TransactionService{store: s}
}

// TransactionItemInput is one receipt line of the create input. Price and
// ProductName are optional fallbacks, used only when the referenced product no
// longer exists in the catalog; for a known product the catalog values win.
type TransactionItemInput struct {
	ProductID   string   `validate:"required"`
	ProductName string
	Quantity    int      `validate:"gt=0"`
	Price       *float64 `validate:"omitempty,gte=0"`
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	CustomerID    string                 `validate:"required"`
	CustomerName  string
	PaymentMethod string                 `validate:"required,oneof=cash card mobile"`
	Items         []TransactionItemInput `validate:"required,min=1,dive"`
}

// CreateTransaction builds a receipt from the input and commits it. Name and
// price snapshots come from the current catalog; each line's subtotal is
// quantity times the snapshotted price and the total is the sum of subtotals.
// The commit never fails on missing references: the result reports whether the
// customer counters were applied and which product stocks were skipped.
func (s *TransactionService) CreateTransaction(input *CreateTransactionInput) (*store.CommitResult, error) {
	if fieldErrors := validator.ValidateStruct(input); fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customerName := input.CustomerName
	if customer, ok := s.store.Customer(input.CustomerID); ok {
		customerName = customer.Name
	}

	items := make([]entity.TransactionItem, 0, len(input.Items))
	var total float64
	for _, in := range input.Items {
		name := in.ProductName
		var price float64
		if in.Price != nil {
			price = *in.Price
		}
		if product, ok := s.store.Product(in.ProductID); ok {
			name = product.Name
			price = product.Price
		}
		subtotal := round2(price * float64(in.Quantity))
		items = append(items, entity.TransactionItem{
			ProductID:   in.ProductID,
			ProductName: name,
			Quantity:    in.Quantity,
			Price:       price,
			Subtotal:    subtotal,
		})
		total += subtotal
	}

	transaction := entity.Transaction{
		ID:            s.store.NextTransactionID(),
		CustomerID:    input.CustomerID,
		CustomerName:  customerName,
		Date:          time.Now().UTC(),
		Items:         items,
		TotalAmount:   round2(total),
		PaymentMethod: enum.PaymentMethod(input.PaymentMethod),
		Status:        enum.StatusCompleted,
	}

	result, err := s.store.CommitTransaction(transaction)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTransactions returns all transactions in insertion order.
func (s *TransactionService) ListTransactions() []entity.Transaction {
	return s.store.Transactions()
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(id string) (*entity.Transaction, error) {
	transaction, ok := s.store.Transaction(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction. Counter and stock side effects of
// the original commit stay applied.
func (s *TransactionService) DeleteTransaction(id string) error {
	ok, err := s.store.DeleteTransaction(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFoundError("Transaction")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

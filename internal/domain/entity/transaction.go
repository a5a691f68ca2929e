package entity

import (
	"time"

	"github.com/foodbazar/retail-api/internal/domain/enum"
)

// Transaction is a point-of-sale receipt. CustomerName and the per-item
// ProductName/Price are snapshots taken at commit time; later edits or
// deletions of the referenced entities do not rewrite them.
type Transaction struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customerId"`
	CustomerName  string                 `json:"customerName"`
	Date          time.Time              `json:"date"`
	Items         []TransactionItem      `json:"items"`
	TotalAmount   float64                `json:"totalAmount"`
	PaymentMethod enum.PaymentMethod     `json:"paymentMethod"`
	Status        enum.TransactionStatus `json:"status"`
}

// TransactionItem is one line of a receipt. Subtotal is Quantity times the
// snapshotted Price.
type TransactionItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// CloneItems returns a copy of the item slice so callers cannot mutate
// stored transactions through a shared backing array.
func (t Transaction) CloneItems() []TransactionItem {
	return append([]TransactionItem(nil), t.Items...)
}

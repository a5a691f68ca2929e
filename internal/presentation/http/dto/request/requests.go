// Package request holds the JSON bodies accepted by the API. Field names use
// the camelCase convention of the dashboard frontend.
package request

// CreateCustomerRequest is the body for POST /customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest is the body for PUT /customers/:id. Omitted fields
// are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CreateProductRequest is the body for POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Unit        string  `json:"unit"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
}

// UpdateProductRequest is the body for PUT /products/:id. Omitted fields are
// left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Unit        *string  `json:"unit"`
	Supplier    *string  `json:"supplier"`
	Description *string  `json:"description"`
}

// TransactionItemRequest is one receipt line of a transaction body. Price and
// productName are only honored when the product is missing from the catalog.
type TransactionItemRequest struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price"`
}

// CreateTransactionRequest is the body for POST /transactions.
type CreateTransactionRequest struct {
	CustomerID    string                   `json:"customerId"`
	CustomerName  string                   `json:"customerName"`
	PaymentMethod string                   `json:"paymentMethod"`
	Items         []TransactionItemRequest `json:"items"`
}

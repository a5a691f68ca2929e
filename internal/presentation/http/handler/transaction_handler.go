package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodbazar/retail-api/internal/application/service"
	"github.com/foodbazar/retail-api/internal/presentation/http/dto/request"
	"github.com/foodbazar/retail-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles listing transactions
func (h *TransactionHandler) List(c *gin.Context) {
	transactions := h.transactionService.ListTransactions()
	response.OK(c, "Transactions retrieved successfully", transactions)
}

// Create handles committing a transaction. The response data is the commit
// result: the stored transaction plus which side effects were applied.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.TransactionItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.TransactionItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	result, err := h.transactionService.CreateTransaction(&service.CreateTransactionInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction committed successfully", result)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	transaction, err := h.transactionService.GetTransaction(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", transaction)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

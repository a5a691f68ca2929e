package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbazar/retail-api/internal/application/service"
	"github.com/foodbazar/retail-api/internal/config"
	"github.com/foodbazar/retail-api/internal/infrastructure/storage"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/internal/presentation/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	s, err := store.New(storage.NewMemoryBackend(), zerolog.Nop())
	require.NoError(t, err)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "foodbazar-api-test", Env: "test", Port: "0"},
		Store:     config.StoreConfig{LowStockThreshold: 100},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	handlers := &Handlers{
		Customer:    handler.NewCustomerHandler(service.NewCustomerService(s)),
		Product:     handler.NewProductHandler(service.NewProductService(s, cfg.Store.LowStockThreshold)),
		Transaction: handler.NewTransactionHandler(service.NewTransactionService(s)),
		Dashboard:   handler.NewDashboardHandler(service.NewDashboardService(s, cfg.Store.LowStockThreshold)),
		Admin:       handler.NewAdminHandler(s),
	}

	return Setup(handlers, &Deps{Cfg: cfg, Log: zerolog.Nop()})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListCustomers(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/customers", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var customers []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &customers))
	assert.Len(t, customers, 5)
	assert.Equal(t, "C001", customers[0]["id"])
}

func TestGetCustomerNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/customers/C999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Customer not found", env.Message)
}

func TestCreateCustomer(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Anita Desai","email":"anita.desai@example.com","phone":"+91 98111 22334","address":"5 Residency Road, Pune"}`
	w := doRequest(router, http.MethodPost, "/api/v1/customers", body)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var customer map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &customer))
	assert.Equal(t, "C006", customer["id"])
	assert.EqualValues(t, 0, customer["totalPurchases"])
}

func TestCreateCustomerValidationError(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Bad Email","email":"nope","phone":"1","address":"x"}`
	w := doRequest(router, http.MethodPost, "/api/v1/customers", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, string(env.Errors), "Email")
}

func TestCommitTransaction(t *testing.T) {
	router := newTestRouter(t)

	body := `{"customerId":"C004","paymentMethod":"card","items":[{"productId":"P001","quantity":2}]}`
	w := doRequest(router, http.MethodPost, "/api/v1/transactions", body)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var result struct {
		Transaction struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"totalAmount"`
		} `json:"transaction"`
		CustomerApplied bool `json:"customerApplied"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "T006", result.Transaction.ID)
	assert.InDelta(t, 7.00, result.Transaction.TotalAmount, 0.001)
	assert.True(t, result.CustomerApplied)

	// The customer's history now includes the new receipt
	w = doRequest(router, http.MethodGet, "/api/v1/customers/C004/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var txs []map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &txs))
	assert.Len(t, txs, 1)
}

func TestLowStockProducts(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/products/low-stock", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &products))
	assert.Len(t, products, 5)
}

func TestDashboardStats(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &stats))
	assert.EqualValues(t, 5, stats["totalCustomers"])
	assert.EqualValues(t, 10, stats["totalProducts"])
	assert.InDelta(t, 58.90, stats["totalRevenue"].(float64), 0.001)
}

func TestReportInvalidRange(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/reports?range=14days", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestAdminReset(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Temp","email":"temp@example.com","phone":"1","address":"x"}`
	w := doRequest(router, http.MethodPost, "/api/v1/customers", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/admin/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/customers", "")
	var customers []map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &customers))
	assert.Len(t, customers, 5)
}

func TestDeleteProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodDelete, "/api/v1/products/P001", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/products/P001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/internal/presentation/http/dto/response"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	store *store.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// Reset discards all data and reseeds the demo dataset.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.store.ResetToSeedData(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store reset to seed data", nil)
}

package service

import (
	"strings"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/pkg/apperror"
	"github.com/foodbazar/retail-api/pkg/validator"
)

// ProductService handles product catalog operations
type ProductService struct {
	store             *store.Store
	lowStockThreshold int
}

// NewProductService creates a new product service
func NewProductService(s *store.Store, lowStockThreshold int) *ProductService {
	return &ProductService{store: s, lowStockThreshold: lowStockThreshold}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string  `validate:"required"`
	Category    string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Unit        string  `validate:"required"`
	Supplier    string
	Description string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(input *CreateProductInput) (*entity.Product, error) {
	if fieldErrors := validator.ValidateStruct(input); fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := entity.Product{
		ID:          s.store.NextProductID(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Unit:        input.Unit,
		Supplier:    input.Supplier,
		Description: input.Description,
	}

	if err := s.store.AddProduct(product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts lists products, optionally filtered by exact category and by a
// case-insensitive substring match on name or supplier. A filter matching
// nothing yields an empty slice, not an error.
func (s *ProductService) ListProducts(category, search string) []entity.Product {
	products := s.store.Products()
	if category == "" && search == "" {
		return products
	}
	needle := strings.ToLower(search)
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Supplier), needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(id string) (*entity.Product, error) {
	product, ok := s.store.Product(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}
	return &product, nil
}

// UpdateProductInput represents the update product input; nil fields are left
// unchanged.
type UpdateProductInput struct {
	ID          string
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Unit        *string
	Supplier    *string
	Description *string
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(input *UpdateProductInput) (*entity.Product, error) {
	product, ok := s.store.Product(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Supplier != nil {
		product.Supplier = *input.Supplier
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if _, err := s.store.UpdateProduct(product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product. Past transactions keep their
// productName/price snapshots.
func (s *ProductService) DeleteProduct(id string) error {
	ok, err := s.store.DeleteProduct(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

// LowStockProducts returns products whose stock is below the configured
// threshold, in catalog order.
func (s *ProductService) LowStockProducts() []entity.Product {
	var low []entity.Product
	for _, p := range s.store.Products() {
		if p.Stock < s.lowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// Categories returns the distinct product categories in first-seen order.
func (s *ProductService) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.store.Products() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

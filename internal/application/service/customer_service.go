package service

import (
	"strings"
	"time"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/pkg/apperror"
	"github.com/foodbazar/retail-api/pkg/validator"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	store *store.Store
}

// NewCustomerService creates a new customer service
func NewCustomerService(s *store.Store) *CustomerService {
	return &CustomerService{store: s}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Address string `validate:"required"`
}

// CreateCustomer creates a new customer. The join date is set to today and
// both purchase counters start at zero; only transaction commits move them.
func (s *CustomerService) CreateCustomer(input *CreateCustomerInput) (*entity.Customer, error) {
	if fieldErrors := validator.ValidateStruct(input); fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer := entity.Customer{
		ID:       s.store.NextCustomerID(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		JoinDate: time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.store.AddCustomer(customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers lists customers, optionally filtered by a case-insensitive
// substring match on name, email or phone. An empty result is a valid result.
func (s *CustomerService) ListCustomers(search string) []entity.Customer {
	customers := s.store.Customers()
	if search == "" {
		return customers
	}
	needle := strings.ToLower(search)
	filtered := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(id string) (*entity.Customer, error) {
	customer, ok := s.store.Customer(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return &customer, nil
}

// UpdateCustomerInput represents the update customer input; nil fields are
// left unchanged. Counters are never updatable through this path.
type UpdateCustomerInput struct {
	ID      string
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// UpdateCustomer updates a customer's identity fields
func (s *CustomerService) UpdateCustomer(input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, ok := s.store.Customer(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if _, err := s.store.UpdateCustomer(customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer deletes a customer. Historical transactions are left intact;
// they keep the customerName snapshot taken at commit time.
func (s *CustomerService) DeleteCustomer(id string) error {
	ok, err := s.store.DeleteCustomer(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFoundError("Customer")
	}
	return nil
}

// CustomerTransactions returns the customer's transactions in insertion order.
func (s *CustomerService) CustomerTransactions(customerID string) []entity.Transaction {
	return s.store.TransactionsByCustomer(customerID)
}

package repository

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when the phone number is already registered.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository defines customer persistence.
type CustomerRepository interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByPhone retrieves a customer by phone number.
	FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// UpdateCustomer updates name and email.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
}

// DeliveryAddressRepository defines delivery address persistence.
type DeliveryAddressRepository interface {
	// CreateAddress persists a new delivery address.
	CreateAddress(ctx context.Context, address *entity.DeliveryAddress) error

	// FindAddressByID retrieves an address by ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAddress, error)
}

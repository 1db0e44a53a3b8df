package postgres

import (
	"context"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Omit("Addresses").Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindCustomerByPhone retrieves a customer by phone number.
func (repo *customerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

func (repo *customerRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateCustomer updates name and email.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"email":      customer.Email,
			"updated_at": customer.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

type deliveryAddressRepository struct {
	db *gorm.DB
}

// NewDeliveryAddressRepository is the constructor for deliveryAddressRepository.
func NewDeliveryAddressRepository(db *gorm.DB) repository.DeliveryAddressRepository {
	return &deliveryAddressRepository{db: db}
}

// CreateAddress persists a new delivery address.
func (repo *deliveryAddressRepository) CreateAddress(ctx context.Context, address *entity.DeliveryAddress) error {
	addressM := fromDeliveryAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by ID.
func (repo *deliveryAddressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAddress, error) {
	var addressM model.DeliveryAddressModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("delivery address not found")
		}

		return nil, errors.Wrap(err, "failed to find delivery address")
	}

	return toDeliveryAddressDomain(&addressM), nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeliveryAddressDomain(data *model.DeliveryAddressModel) *entity.DeliveryAddress {
	if data == nil {
		return nil
	}

	return &entity.DeliveryAddress{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		Reference:    data.Reference,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDeliveryAddressDomain(data *entity.DeliveryAddress) *model.DeliveryAddressModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAddressModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		Reference:    data.Reference,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

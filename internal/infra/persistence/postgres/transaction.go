package postgres

import (
	"context"

	"pizzeria/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) StoreSettingsRepo() repository.StoreSettingsRepository {
	return NewStoreSettingsRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderItemRepo() repository.OrderItemRepository {
	return NewOrderItemRepository(f.tx)
}

func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) DeliveryAddressRepo() repository.DeliveryAddressRepository {
	return NewDeliveryAddressRepository(f.tx)
}

func (f *gormRepositoryFactory) StaffRepo() repository.StaffRepository {
	return NewStaffRepository(f.tx)
}

func (f *gormRepositoryFactory) StaffSessionRepo() repository.StaffSessionRepository {
	return NewStaffSessionRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. An error or panic from fn rolls it
// back; the error fn returned is passed through unwrapped so callers can
// still match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "transaction failed")
	default:
		return nil
	}
}

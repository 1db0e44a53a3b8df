package repository

import "context"

// TransactionManager runs multi-step writes atomically: checkout (order,
// items, customer upsert), status transitions with their row lock, and staff
// session rotation.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. The error
	// from fn is returned as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	StoreSettingsRepo() StoreSettingsRepository
	OrderRepo() OrderRepository
	OrderItemRepo() OrderItemRepository
	CustomerRepo() CustomerRepository
	DeliveryAddressRepo() DeliveryAddressRepository
	StaffRepo() StaffRepository
	StaffSessionRepo() StaffSessionRepository
}

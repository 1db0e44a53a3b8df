package impl

import (
	"context"
	"testing"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	mockRepo "pizzeria/internal/mocks/repository"
	mockSvc "pizzeria/internal/mocks/service"
	mockUsecase "pizzeria/internal/mocks/usecase"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixtures struct {
	service      *checkoutService
	gate         *mockUsecase.MockStoreStatusUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
	addressRepo  *mockRepo.MockDeliveryAddressRepository
	orderRepo    *mockRepo.MockOrderRepository
	itemRepo     *mockRepo.MockOrderItemRepository
	cartRepo     *mockRepo.MockCartRepository
	menuRepo     *mockRepo.MockMenuRepository
	qrcode       *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	t.Helper()

	fx := checkoutFixtures{
		gate:         mockUsecase.NewMockStoreStatusUsecase(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		addressRepo:  mockRepo.NewMockDeliveryAddressRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		itemRepo:     mockRepo.NewMockOrderItemRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		menuRepo:     mockRepo.NewMockMenuRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewCheckoutService(CheckoutServiceParams{
		Gate:           fx.gate,
		TxManager:      fx.txManager,
		CartRepo:       fx.cartRepo,
		MenuRepo:       fx.menuRepo,
		QRCodeService:  fx.qrcode,
		Feed:           newTestHub(t),
		EventPublisher: fx.publisher,
		Metrics:        newTestRecorder(),
		Logger:         newDiscardLogger(),
	}).(*checkoutService)
	fx.service.now = fixedClock()

	return fx
}

// runTransactions executes the callback against the mocked repository factory.
func (fx checkoutFixtures) runTransactions() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().CustomerRepo().Return(fx.customerRepo).Maybe()
	fx.repoFactory.EXPECT().DeliveryAddressRepo().Return(fx.addressRepo).Maybe()
	fx.repoFactory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
	fx.repoFactory.EXPECT().OrderItemRepo().Return(fx.itemRepo).Maybe()
}

func newCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		CartID:        "cart-1",
		CustomerName:  "Ana Souza",
		Phone:         "11999990000",
		Email:         "ana@example.com",
		PaymentMethod: entity.PaymentMethodPix,
		Address: usecase.AddressInput{
			Street:       "Rua Augusta",
			Number:       "1200",
			Neighborhood: "Consolação",
			City:         "São Paulo",
		},
	}
}

func TestCheckoutService_ClosedStoreTouchesNothing(t *testing.T) {
	fx := createTestCheckoutService(t)

	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(domainerrors.ErrStoreClosed).Twice()

	assert.ErrorIs(t, fx.service.CheckoutPreflight(context.Background()), domainerrors.ErrStoreClosed)

	_, err := fx.service.Checkout(context.Background(), newCheckoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrStoreClosed)
}

func TestCheckoutService_RejectsInvalidInput(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(nil)

	input := newCheckoutInput()
	input.PaymentMethod = "crypto"
	_, err := fx.service.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)

	fx.cartRepo.EXPECT().GetCart(mock.Anything, "cart-1").Return(&entity.Cart{ID: "cart-1"}, nil)
	_, err = fx.service.Checkout(context.Background(), newCheckoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlacesOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	pizza := margherita()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ana Souza", Phone: "11999990000", Email: "ana@example.com"}

	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().GetCart(mock.Anything, "cart-1").Return(&entity.Cart{
		ID:    "cart-1",
		Lines: []entity.CartLine{{MenuItemID: pizza.ID, Quantity: 2, Notes: "well done"}},
	}, nil)
	fx.menuRepo.EXPECT().FindMenuItemsByIDs(mock.Anything, []uuid.UUID{pizza.ID}).Return(map[uuid.UUID]*entity.MenuItem{pizza.ID: pizza}, nil)
	fx.runTransactions()

	fx.customerRepo.EXPECT().FindCustomerByPhone(mock.Anything, "11999990000").Return(customer, nil)
	fx.addressRepo.EXPECT().
		CreateAddress(mock.Anything, mock.MatchedBy(func(a *entity.DeliveryAddress) bool {
			return a.CustomerID == customer.ID && a.Street == "Rua Augusta"
		})).
		Return(nil)
	fx.orderRepo.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusPending && o.Total == 2*pizza.Price && o.CustomerID == customer.ID
		})).
		Return(nil)
	fx.itemRepo.EXPECT().
		CreateOrderItems(mock.Anything, mock.MatchedBy(func(items []*entity.OrderItem) bool {
			return len(items) == 1 && items[0].Name == "Margherita" && items[0].Quantity == 2 && items[0].Notes == "well done"
		})).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(mock.Anything, "cart-1").Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Status == "pending" && e.PreviousStatus == ""
		})).
		Return(nil)
	fx.qrcode.EXPECT().TrackingURL(mock.Anything).Return("https://pizzeria.example/track/x")

	result, err := fx.service.Checkout(context.Background(), newCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, result.Order.Status)
	assert.Equal(t, entity.PaymentStatusPending, result.Order.PaymentStatus)
	assert.Equal(t, 2*pizza.Price, result.Order.Total)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "https://pizzeria.example/track/x", result.TrackingURL)
}

func TestCheckoutService_CreatesNewCustomer(t *testing.T) {
	fx := createTestCheckoutService(t)
	pizza := margherita()

	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().GetCart(mock.Anything, "cart-1").Return(&entity.Cart{
		ID:    "cart-1",
		Lines: []entity.CartLine{{MenuItemID: pizza.ID, Quantity: 1}},
	}, nil)
	fx.menuRepo.EXPECT().FindMenuItemsByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.MenuItem{pizza.ID: pizza}, nil)
	fx.runTransactions()

	fx.customerRepo.EXPECT().FindCustomerByPhone(mock.Anything, "11999990000").Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		CreateCustomer(mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "Ana Souza" && c.Phone == "11999990000"
		})).
		Return(nil)
	fx.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	fx.itemRepo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Clear(mock.Anything, "cart-1").Return(errors.New("redis timeout"))
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
	fx.qrcode.EXPECT().TrackingURL(mock.Anything).Return("")

	result, err := fx.service.Checkout(context.Background(), newCheckoutInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.Order.CustomerID)
}

func TestCheckoutService_TransactionFailure(t *testing.T) {
	fx := createTestCheckoutService(t)
	pizza := margherita()

	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().GetCart(mock.Anything, "cart-1").Return(&entity.Cart{
		ID:    "cart-1",
		Lines: []entity.CartLine{{MenuItemID: pizza.ID, Quantity: 1}},
	}, nil)
	fx.menuRepo.EXPECT().FindMenuItemsByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.MenuItem{pizza.ID: pizza}, nil)
	fx.runTransactions()

	fx.customerRepo.EXPECT().FindCustomerByPhone(mock.Anything, mock.Anything).Return(&entity.Customer{ID: uuid.New(), Name: "Ana Souza", Email: "ana@example.com"}, nil)
	fx.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	fx.itemRepo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything).Return(errors.New("constraint violation"))

	_, err := fx.service.Checkout(context.Background(), newCheckoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrOrderCreationFailed)
}

func TestCheckoutService_UnavailableItem(t *testing.T) {
	fx := createTestCheckoutService(t)
	pizza := margherita()
	pizza.Available = false

	fx.gate.EXPECT().CheckInteraction(mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().GetCart(mock.Anything, "cart-1").Return(&entity.Cart{
		ID:    "cart-1",
		Lines: []entity.CartLine{{MenuItemID: pizza.ID, Quantity: 1}},
	}, nil)
	fx.menuRepo.EXPECT().FindMenuItemsByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.MenuItem{pizza.ID: pizza}, nil)

	_, err := fx.service.Checkout(context.Background(), newCheckoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemUnavailable)
}

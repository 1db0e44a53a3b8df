package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	gate          usecase.InteractionGate
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	menuRepo      repository.MenuRepository
	qrcodeService service.QRCodeService
	effects       *orderSideEffects
	logger        *slog.Logger
	now           func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Gate           usecase.StoreStatusUsecase
	TxManager      repository.TransactionManager
	CartRepo       repository.CartRepository
	MenuRepo       repository.MenuRepository
	QRCodeService  service.QRCodeService
	Feed           service.ChangeFeed
	EventPublisher service.EventPublisher
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		gate:          params.Gate,
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		menuRepo:      params.MenuRepo,
		qrcodeService: params.QRCodeService,
		effects: &orderSideEffects{
			feed:      params.Feed,
			publisher: params.EventPublisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CheckoutPreflight gates entering the checkout step.
func (s *checkoutService) CheckoutPreflight(ctx context.Context) error {
	return s.gate.CheckInteraction(ctx)
}

// Checkout re-checks the gate at submission, prices the cart and writes every
// row of the order in one transaction.
func (s *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := s.gate.CheckInteraction(ctx); err != nil {
		return nil, err
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	cart, err := s.cartRepo.GetCart(ctx, input.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	priced, err := priceCart(ctx, s.menuRepo, cart)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var (
		order *entity.Order
		items []*entity.OrderItem
	)

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := s.findOrCreateCustomer(ctx, repoFactory.CustomerRepo(), input, now)
		if err != nil {
			return err
		}

		address := newDeliveryAddress(customer.ID, &input.Address, now)
		if err := repoFactory.DeliveryAddressRepo().CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create delivery address")
		}

		order = entity.NewPendingOrder(customer.ID, address.ID, input.PaymentMethod, priced.Total, strings.TrimSpace(input.Notes), now)
		if err := repoFactory.OrderRepo().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		items = newOrderItems(order.ID, priced)
		if err := repoFactory.OrderItemRepo().CreateOrderItems(ctx, items); err != nil {
			return errors.Wrap(err, "failed to create order items")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Checkout failed", slog.String("cart_id", input.CartID), slog.Any("error", err))

		return nil, domainerrors.ErrOrderCreationFailed.WrapMessage(err.Error())
	}

	if err := s.cartRepo.Clear(ctx, input.CartID); err != nil {
		s.log(ctx).Warn("Failed to clear cart after checkout", slog.String("cart_id", input.CartID), slog.Any("error", err))
	}

	s.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.Int64("total", order.Total),
		slog.Int("items", len(items)),
	)
	s.effects.afterWrite(ctx, order, entity.ChangeTypeInsert, "")

	return &usecase.CheckoutResult{
		Order:       order,
		Items:       items,
		TrackingURL: s.qrcodeService.TrackingURL(order.ID),
	}, nil
}

// findOrCreateCustomer identifies the customer by phone and refreshes name and email.
func (s *checkoutService) findOrCreateCustomer(ctx context.Context, repo repository.CustomerRepository, input *usecase.CheckoutInput, now time.Time) (*entity.Customer, error) {
	phone := strings.TrimSpace(input.Phone)
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.Email)

	customer, err := repo.FindCustomerByPhone(ctx, phone)
	switch {
	case err == nil:
		if customer.Name == name && customer.Email == email {
			return customer, nil
		}
		customer.Name = name
		customer.Email = email
		customer.UpdatedAt = now
		if err := repo.UpdateCustomer(ctx, customer); err != nil {
			return nil, errors.Wrap(err, "failed to update customer")
		}

		return customer, nil

	case errors.Is(err, repository.ErrCustomerNotFound):
		customer = &entity.Customer{
			ID:        uuid.New(),
			Name:      name,
			Phone:     phone,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.CreateCustomer(ctx, customer); err != nil {
			return nil, errors.Wrap(err, "failed to create customer")
		}

		return customer, nil

	default:
		return nil, errors.Wrap(err, "failed to find customer")
	}
}

func newDeliveryAddress(customerID uuid.UUID, input *usecase.AddressInput, now time.Time) *entity.DeliveryAddress {
	return &entity.DeliveryAddress{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Street:       strings.TrimSpace(input.Street),
		Number:       strings.TrimSpace(input.Number),
		Complement:   strings.TrimSpace(input.Complement),
		Neighborhood: strings.TrimSpace(input.Neighborhood),
		City:         strings.TrimSpace(input.City),
		Reference:    strings.TrimSpace(input.Reference),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newOrderItems(orderID uuid.UUID, priced *entity.PricedCart) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		items = append(items, &entity.OrderItem{
			ID:         uuid.New(),
			OrderID:    orderID,
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
		})
	}

	return items
}

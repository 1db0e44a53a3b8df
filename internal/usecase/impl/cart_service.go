package impl

import (
	"context"
	"log/slog"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxLineQuantity = 50

type cartService struct {
	gate     usecase.InteractionGate
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Gate     usecase.StoreStatusUsecase
	CartRepo repository.CartRepository
	MenuRepo repository.MenuRepository
	Logger   *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return newCartService(params.Gate, params.CartRepo, params.MenuRepo, params.Logger)
}

func newCartService(gate usecase.InteractionGate, cartRepo repository.CartRepository, menuRepo repository.MenuRepository, logger *slog.Logger) *cartService {
	return &cartService{
		gate:     gate,
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		logger:   logger,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*entity.PricedCart, error) {
	cart, err := s.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return priceCart(ctx, s.menuRepo, cart)
}

// AddItem adds to an existing line or creates one.
func (s *cartService) AddItem(ctx context.Context, cartID string, menuItemID uuid.UUID, quantity int, notes string) (*entity.PricedCart, error) {
	if err := s.gate.CheckInteraction(ctx); err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > maxLineQuantity {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if err := s.ensureOrderable(ctx, menuItemID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	line := entity.CartLine{MenuItemID: menuItemID, Quantity: quantity, Notes: notes}
	for _, existing := range cart.Lines {
		if existing.MenuItemID == menuItemID {
			line.Quantity += existing.Quantity
			if notes == "" {
				line.Notes = existing.Notes
			}
		}
	}
	if line.Quantity > maxLineQuantity {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("too many units of one item")
	}

	if err := s.cartRepo.SetLine(ctx, cartID, line); err != nil {
		s.log(ctx).Error("Failed to add cart item", slog.String("cart_id", cartID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to write cart line")
	}

	return s.GetCart(ctx, cartID)
}

// UpdateItemQuantity sets the quantity of a line; zero removes it.
func (s *cartService) UpdateItemQuantity(ctx context.Context, cartID string, menuItemID uuid.UUID, quantity int) (*entity.PricedCart, error) {
	if err := s.gate.CheckInteraction(ctx); err != nil {
		return nil, err
	}
	if quantity < 0 || quantity > maxLineQuantity {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.removeLine(ctx, cartID, menuItemID)
	}

	cart, err := s.cartRepo.GetCart(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	for _, existing := range cart.Lines {
		if existing.MenuItemID != menuItemID {
			continue
		}
		existing.Quantity = quantity
		if err := s.cartRepo.SetLine(ctx, cartID, existing); err != nil {
			return nil, errors.Wrap(err, "failed to write cart line")
		}

		return s.GetCart(ctx, cartID)
	}

	return nil, domainerrors.ErrNotFound.WithDetails("item is not in the cart")
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, menuItemID uuid.UUID) (*entity.PricedCart, error) {
	if err := s.gate.CheckInteraction(ctx); err != nil {
		return nil, err
	}

	return s.removeLine(ctx, cartID, menuItemID)
}

func (s *cartService) removeLine(ctx context.Context, cartID string, menuItemID uuid.UUID) (*entity.PricedCart, error) {
	if err := s.cartRepo.RemoveLine(ctx, cartID, menuItemID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart line")
	}

	return s.GetCart(ctx, cartID)
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	if err := s.gate.CheckInteraction(ctx); err != nil {
		return err
	}

	return errors.Wrap(s.cartRepo.Clear(ctx, cartID), "failed to clear cart")
}

func (s *cartService) ensureOrderable(ctx context.Context, menuItemID uuid.UUID) error {
	item, err := s.menuRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find menu item")
	}
	if !item.Available {
		return domainerrors.ErrMenuItemUnavailable.WithDetails(item.Name + " is unavailable")
	}

	return nil
}

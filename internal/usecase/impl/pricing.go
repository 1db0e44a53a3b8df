package impl

import (
	"context"
	"fmt"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"

	"github.com/google/uuid"
)

// priceCart joins cart lines with current menu prices. Lines whose item is
// gone or unavailable fail the whole cart.
func priceCart(ctx context.Context, menuRepo repository.MenuRepository, cart *entity.Cart) (*entity.PricedCart, error) {
	priced := &entity.PricedCart{ID: cart.ID, Lines: make([]entity.PricedCartLine, 0, len(cart.Lines))}
	if cart.IsEmpty() {
		return priced, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.MenuItemID)
	}

	items, err := menuRepo.FindMenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load menu items")
	}

	for _, line := range cart.Lines {
		item, ok := items[line.MenuItemID]
		if !ok {
			return nil, domainerrors.ErrMenuItemNotFound.WithDetails(line.MenuItemID.String())
		}
		if !item.Available {
			return nil, domainerrors.ErrMenuItemUnavailable.WithDetails(fmt.Sprintf("%s is unavailable", item.Name))
		}

		subtotal := item.Price * int64(line.Quantity)
		priced.Lines = append(priced.Lines, entity.PricedCartLine{
			CartLine:  line,
			Name:      item.Name,
			UnitPrice: item.Price,
			Subtotal:  subtotal,
		})
		priced.Total += subtotal
	}

	return priced, nil
}

package cache

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

type memoryCart struct {
	lines     map[uuid.UUID]entity.CartLine
	expiresAt time.Time
}

// MemoryCartRepository is the single-instance cart store used without redis.
// Expired carts are dropped on access and by the periodic sweep.
type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]*memoryCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartRepository(ttl time.Duration, now func() time.Time) *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*memoryCart),
		ttl:   ttl,
		now:   now,
	}
}

// live returns the cart if it exists and has not expired. Caller holds mu.
func (r *MemoryCartRepository) live(cartID string) *memoryCart {
	cart, ok := r.carts[cartID]
	if !ok {
		return nil
	}
	if !r.now().Before(cart.expiresAt) {
		delete(r.carts, cartID)

		return nil
	}

	return cart
}

// Sweep drops every expired cart and reports how many it removed.
func (r *MemoryCartRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, cart := range r.carts {
		if !now.Before(cart.expiresAt) {
			delete(r.carts, id)
			removed++
		}
	}

	return removed
}

// RunSweeper calls Sweep every interval until ctx ends.
func (r *MemoryCartRepository) RunSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				logger.Debug("Swept expired carts", slog.Int("removed", removed))
			}
		}
	}
}

func (r *MemoryCartRepository) GetCart(_ context.Context, cartID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := &entity.Cart{ID: cartID, Lines: []entity.CartLine{}}
	if cart := r.live(cartID); cart != nil {
		for _, line := range cart.lines {
			result.Lines = append(result.Lines, line)
		}
	}
	sortLines(result.Lines)

	return result, nil
}

func (r *MemoryCartRepository) SetLine(_ context.Context, cartID string, line entity.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.live(cartID)
	if cart == nil {
		cart = &memoryCart{lines: make(map[uuid.UUID]entity.CartLine)}
		r.carts[cartID] = cart
	}
	cart.lines[line.MenuItemID] = line
	cart.expiresAt = r.now().Add(r.ttl)

	return nil
}

func (r *MemoryCartRepository) RemoveLine(_ context.Context, cartID string, menuItemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart := r.live(cartID); cart != nil {
		delete(cart.lines, menuItemID)
	}

	return nil
}

func (r *MemoryCartRepository) Clear(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, cartID)

	return nil
}

// sortLines gives carts a stable order; hash and map iteration is random.
func sortLines(lines []entity.CartLine) {
	slices.SortFunc(lines, func(a, b entity.CartLine) int {
		return strings.Compare(a.MenuItemID.String(), b.MenuItemID.String())
	})
}

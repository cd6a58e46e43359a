package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gemshop/internal/account"
	"gemshop/internal/cart"
	"gemshop/internal/domain"
	"gemshop/internal/store"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Ledger is the append-only record of completed orders. Orders are
// never updated or deleted once recorded.
type Ledger struct {
	store    store.Store
	cart     *cart.Engine
	accounts *account.Manager
	logger   *zap.Logger
}

// NewLedger creates an order ledger over the given store and
// collaborators.
func NewLedger(s store.Store, c *cart.Engine, a *account.Manager, logger *zap.Logger) *Ledger {
	return &Ledger{store: s, cart: c, accounts: a, logger: logger}
}

// Checkout turns the current cart into an order. It snapshots the
// cart's items and total, stamps the order with the signed-in email or
// the guest identity, appends it to the ledger and clears the cart.
// The append and the clear are two independent writes: if clearing
// fails after the order was recorded, the profile is left with both an
// order and a non-empty cart. That window is accepted, not papered
// over with a rollback.
func (l *Ledger) Checkout(ctx context.Context) (domain.Order, error) {
	items := l.cart.Items(ctx)
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	userEmail := domain.GuestIdentity
	if acct, ok := l.accounts.Current(ctx); ok {
		userEmail = acct.Email
	}

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}

	orders := l.List(ctx)
	now := time.Now()
	order := domain.Order{
		ID:        nextID(orders, now),
		UserEmail: userEmail,
		Items:     items,
		Total:     total,
		Date:      now.Format(domain.OrderDateLayout),
	}

	orders = append(orders, order)
	if err := store.WriteJSON(ctx, l.store, store.KeyOrders, orders); err != nil {
		return domain.Order{}, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := l.cart.Clear(ctx); err != nil {
		// The order is already on the ledger; surface the failure but
		// leave the recorded order in place.
		return order, fmt.Errorf("order recorded but cart not cleared: %w", err)
	}

	l.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("user", order.UserEmail),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// List returns all recorded orders in append order. An absent or
// unreadable ledger is an empty ledger.
func (l *Ledger) List(ctx context.Context) []domain.Order {
	var orders []domain.Order
	store.ReadJSON(ctx, l.store, store.KeyOrders, &orders)
	return orders
}

// nextID derives a creation-time id, bumped past the last recorded
// order so ids stay unique and ordered even within one millisecond.
func nextID(orders []domain.Order, now time.Time) int64 {
	id := now.UnixMilli()
	if n := len(orders); n > 0 && orders[n-1].ID >= id {
		id = orders[n-1].ID + 1
	}
	return id
}

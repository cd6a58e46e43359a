package cart

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gemshop/internal/catalog"
	"gemshop/internal/domain"
	"gemshop/internal/store"

	"go.uber.org/zap"
)

var (
	ErrIndexOutOfRange = errors.New("cart index out of range")
)

// Engine owns the active cart. It holds no state of its own: every
// operation re-reads the persisted cart, mutates it and writes it back
// whole, so the store is always the single source of truth.
type Engine struct {
	store   store.Store
	catalog *catalog.Manager
	logger  *zap.Logger
}

// NewEngine creates a cart engine over the given store and catalog.
func NewEngine(s store.Store, c *catalog.Manager, logger *zap.Logger) *Engine {
	return &Engine{store: s, catalog: c, logger: logger}
}

// Items returns the cart's line items in insertion order. An absent or
// unreadable cart is an empty cart.
func (e *Engine) Items(ctx context.Context) []domain.LineItem {
	var items []domain.LineItem
	store.ReadJSON(ctx, e.store, store.KeyCart, &items)
	return items
}

// Add puts one unit of the given product into the cart, merging into
// an existing line item if the product is already there. Unknown
// product ids are ignored: the id always originates from a rendered
// catalog, so a miss means the product was just deleted.
func (e *Engine) Add(ctx context.Context, productID int64) error {
	product, ok := e.catalog.Get(productID)
	if !ok {
		e.logger.Debug("Ignoring add for unknown product", zap.Int64("product_id", productID))
		return nil
	}

	items := e.Items(ctx)
	merged := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.LineItem{Product: product, Qty: 1})
	}

	return e.persist(ctx, items)
}

// SetQuantity replaces the quantity of the line item at index. The raw
// value is coerced numerically; anything non-numeric or below one
// clamps to one.
func (e *Engine) SetQuantity(ctx context.Context, index int, raw string) error {
	items := e.Items(ctx)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	items[index].Qty = clampQuantity(raw)
	return e.persist(ctx, items)
}

// Remove deletes the line item at index.
func (e *Engine) Remove(ctx context.Context, index int) error {
	items := e.Items(ctx)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	items = append(items[:index], items[index+1:]...)
	return e.persist(ctx, items)
}

// Clear empties the cart by deleting its key.
func (e *Engine) Clear(ctx context.Context) error {
	return e.store.Delete(ctx, store.KeyCart)
}

// ItemCount returns the total quantity across all line items.
func (e *Engine) ItemCount(ctx context.Context) int {
	count := 0
	for _, item := range e.Items(ctx) {
		count += item.Qty
	}
	return count
}

// Total returns the cart total, recomputed from the current line items
// on every call.
func (e *Engine) Total(ctx context.Context) float64 {
	total := 0.0
	for _, item := range e.Items(ctx) {
		total += item.Subtotal()
	}
	return total
}

func (e *Engine) persist(ctx context.Context, items []domain.LineItem) error {
	if err := store.WriteJSON(ctx, e.store, store.KeyCart, items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// clampQuantity coerces a raw quantity input to an integer of at
// least one.
func clampQuantity(raw string) int {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n < 1 {
		return 1
	}
	return int(n)
}

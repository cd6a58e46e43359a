package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gemshop/internal/domain"
	"gemshop/internal/store"

	"go.uber.org/zap"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrIndexOutOfRange = errors.New("catalog index out of range")
)

// Manager owns the product catalog. All access goes through its
// methods; the backing slice is never handed out directly and is
// guarded by mu, since handlers call in from concurrent goroutines.
// Every mutation persists the whole catalog before returning.
type Manager struct {
	store  store.Store
	logger *zap.Logger

	mu       sync.RWMutex
	products []domain.Product
}

// NewManager creates a catalog manager over the given store.
func NewManager(s store.Store, logger *zap.Logger) *Manager {
	return &Manager{store: s, logger: logger}
}

// Load reads the persisted catalog. When it is absent or unreadable
// the seed list is installed and persisted. Repeated calls without
// external mutation are no-ops.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var products []domain.Product
	if store.ReadJSON(ctx, m.store, store.KeyProducts, &products) {
		m.products = products
		return nil
	}

	m.logger.Info("No stored catalog, installing seed products")
	m.products = domain.SeedProducts()
	if err := m.persist(ctx); err != nil {
		return fmt.Errorf("failed to persist seed catalog: %w", err)
	}
	return nil
}

// List returns the catalog in order. A non-empty filter narrows the
// result to products whose name contains it, case-insensitively.
func (m *Manager) List(filter string) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filter = strings.ToLower(strings.TrimSpace(filter))

	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if filter == "" || strings.Contains(strings.ToLower(p.Name), filter) {
			out = append(out, p)
		}
	}
	return out
}

// Get looks up a product by id.
func (m *Manager) Get(id int64) (domain.Product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Len returns the number of products in the catalog.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.products)
}

// Add validates the fields, assigns a fresh id, appends the product
// and persists the catalog. On validation failure nothing is mutated.
func (m *Manager) Add(ctx context.Context, name string, price float64, image string) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	image = strings.TrimSpace(image)

	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if price <= 0 {
		return domain.Product{}, fmt.Errorf("%w: price must be greater than 0", ErrInvalidProduct)
	}
	if image == "" {
		return domain.Product{}, fmt.Errorf("%w: image is required", ErrInvalidProduct)
	}

	product := domain.Product{
		ID:    m.nextID(),
		Name:  name,
		Price: price,
		Image: image,
	}
	m.products = append(m.products, product)

	if err := m.persist(ctx); err != nil {
		return domain.Product{}, fmt.Errorf("failed to persist catalog: %w", err)
	}

	m.logger.Info("Product added",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
	)
	return product, nil
}

// Remove deletes the product at index and persists the catalog.
func (m *Manager) Remove(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.products) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	removed := m.products[index]
	m.products = append(m.products[:index], m.products[index+1:]...)

	if err := m.persist(ctx); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}

	m.logger.Info("Product removed", zap.Int64("product_id", removed.ID))
	return nil
}

func (m *Manager) persist(ctx context.Context) error {
	return store.WriteJSON(ctx, m.store, store.KeyProducts, m.products)
}

// nextID derives an id from the clock, bumped past any existing id so
// new products never collide with the seed list or earlier additions.
func (m *Manager) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, p := range m.products {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}

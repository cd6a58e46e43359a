package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Persisted keys. Stable so that a profile written by one build of the
// storefront remains readable by the next.
const (
	KeyProducts    = "emm_products"
	KeyCart        = "emm_cart"
	KeyAccount     = "emm_user"
	KeyGuestAvatar = "emm_guest_avatar"
	KeyOrders      = "emm_orders"
)

var (
	// ErrAbsent is returned by Read when a key has no value. Backends
	// also return it when the medium itself is unreadable: callers fall
	// back to defaults instead of failing, favoring availability.
	ErrAbsent = errors.New("key absent")
)

// Store is a per-key text-blob store over the active profile. Each key
// is persisted independently and synchronously; there are no
// transactional guarantees across keys.
type Store interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON reads key and decodes it into v. It reports false when the
// key is absent or its value is not valid JSON for v; callers treat
// false as "use defaults" and ignore v.
func ReadJSON(ctx context.Context, s Store, key string, v interface{}) bool {
	raw, err := s.Read(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false
	}
	return true
}

// WriteJSON encodes v and writes it under key.
func WriteJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, string(data))
}

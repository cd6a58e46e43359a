package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gemshop/internal/domain"
	"gemshop/internal/store"

	"go.uber.org/zap"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrNoAccount          = errors.New("no account found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Manager owns the single stored account record. The record doubles as
// the session: whoever it belongs to is signed in, and signing out
// deletes it entirely. There is no separate session token.
type Manager struct {
	store  store.Store
	logger *zap.Logger
}

// NewManager creates an account manager over the given store.
func NewManager(s store.Store, logger *zap.Logger) *Manager {
	return &Manager{store: s, logger: logger}
}

// Register creates the account, deriving its role from the email, and
// unconditionally overwrites any account stored before. Email and
// password formats are deliberately not checked.
func (m *Manager) Register(ctx context.Context, name, email, password string) (domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Account{}, ErrNameRequired
	}

	acct := domain.Account{
		Name:      name,
		Email:     strings.TrimSpace(email),
		Password:  password,
		Role:      domain.DeriveRole(strings.TrimSpace(email)),
		CreatedAt: time.Now(),
	}

	if err := store.WriteJSON(ctx, m.store, store.KeyAccount, acct); err != nil {
		return domain.Account{}, fmt.Errorf("failed to persist account: %w", err)
	}

	m.logger.Info("Account registered",
		zap.String("email", acct.Email),
		zap.String("role", string(acct.Role)),
	)
	return acct, nil
}

// Authenticate compares the supplied credentials against the stored
// account. It distinguishes "nothing registered" from "wrong
// credentials" so the caller can prompt accordingly.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	acct, ok := m.Current(ctx)
	if !ok {
		return domain.Account{}, ErrNoAccount
	}
	if acct.Email != email || acct.Password != password {
		return domain.Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

// Current returns the stored account, or false for a guest profile.
func (m *Manager) Current(ctx context.Context) (domain.Account, bool) {
	var acct domain.Account
	if !store.ReadJSON(ctx, m.store, store.KeyAccount, &acct) {
		return domain.Account{}, false
	}
	return acct, true
}

// SignOut deletes the stored account. Because the account is also the
// session, signing out forgets the registration entirely.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Delete(ctx, store.KeyAccount); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	m.logger.Info("Signed out, account record removed")
	return nil
}

// SetAvatar stores an already-validated image data URI. With an
// account signed in the whole record is re-persisted with the new
// avatar; for guests the image goes to a separate slot that survives
// across guest sessions.
func (m *Manager) SetAvatar(ctx context.Context, dataURI string) error {
	acct, ok := m.Current(ctx)
	if !ok {
		if err := m.store.Write(ctx, store.KeyGuestAvatar, dataURI); err != nil {
			return fmt.Errorf("failed to persist guest avatar: %w", err)
		}
		return nil
	}

	acct.Avatar = dataURI
	if err := store.WriteJSON(ctx, m.store, store.KeyAccount, acct); err != nil {
		return fmt.Errorf("failed to persist avatar: %w", err)
	}
	return nil
}

// GuestAvatar returns the avatar stored for guest sessions, if any.
func (m *Manager) GuestAvatar(ctx context.Context) (string, bool) {
	uri, err := m.store.Read(ctx, store.KeyGuestAvatar)
	if err != nil {
		return "", false
	}
	return uri, true
}

// IsAdmin reports whether an account is signed in with the admin role.
func (m *Manager) IsAdmin(ctx context.Context) bool {
	acct, ok := m.Current(ctx)
	return ok && acct.Role == domain.RoleAdmin
}

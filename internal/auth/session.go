// Package auth holds the locally persisted authentication session and
// the token refresh flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prashikshan/prashikshan-cli/internal/api"
	"github.com/prashikshan/prashikshan-cli/internal/keyring"
	"github.com/prashikshan/prashikshan-cli/internal/logger"
	"github.com/prashikshan/prashikshan-cli/internal/models"
	"github.com/prashikshan/prashikshan-cli/internal/storage"
)

// ErrSignedOut is returned when an operation needs a session and none
// exists.
var ErrSignedOut = errors.New("not signed in")

// TokenVault is where the refresh token lives at rest. The production
// implementation wraps the OS keyring; when no keyring is available the
// token stays inside the persisted session instead.
type TokenVault interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
	Available() bool
}

// OSKeyring is the TokenVault backed by the operating system keyring.
type OSKeyring struct{}

func (OSKeyring) Get() (string, error) { return keyring.GetRefreshToken() }
func (OSKeyring) Set(token string) error {
	return keyring.SetRefreshToken(token)
}
func (OSKeyring) Delete() error   { return keyring.DeleteRefreshToken() }
func (OSKeyring) Available() bool { return keyring.IsAvailable() }

// Refresher is the slice of the API client the manager needs for the
// refresh flow. It must be an unauthenticated client: the refresh call
// itself cannot depend on a valid access token.
type Refresher interface {
	RefreshTokens(ctx context.Context, payload models.RefreshRequest) (models.TokenResponse, error)
}

// Manager owns the session: token pair plus expiry, persisted through
// the storage provider, refresh token parked in the vault when one is
// available.
type Manager struct {
	mu        sync.Mutex
	provider  storage.Provider
	refresher Refresher
	vault     TokenVault
	session   models.Session
	loaded    bool
}

// NewManager creates a Manager. A nil vault defaults to the OS keyring.
func NewManager(provider storage.Provider, refresher Refresher, vault TokenVault) *Manager {
	if vault == nil {
		vault = OSKeyring{}
	}
	return &Manager{
		provider:  provider,
		refresher: refresher,
		vault:     vault,
	}
}

// Load reads the persisted session. Missing session is not an error;
// the manager simply reports signed-out.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.provider.LoadSession()
	if err != nil {
		if errors.Is(err, storage.ErrNoSession) {
			m.loaded = true
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}

	if session.RefreshToken == "" && m.vault.Available() {
		if token, vaultErr := m.vault.Get(); vaultErr == nil {
			session.RefreshToken = token
		}
	}

	m.session = session
	m.loaded = true
	return nil
}

// SignedIn reports whether an access token is present.
func (m *Manager) SignedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.AccessToken != ""
}

// AccessToken returns the current access token, or "" when signed out.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.AccessToken
}

// Expired reports whether the access token is past its expiry.
func (m *Manager) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.AccessToken == "" {
		return true
	}
	return time.Now().UnixMilli() >= m.session.ExpiresAt
}

// SetTokens stores a fresh token pair. Expiry is computed from the
// server-reported lifetime. The refresh token goes to the vault when
// one is available; the persisted session carries it only as fallback.
func (m *Manager) SetTokens(tokens models.TokenResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setTokensLocked(tokens)
}

func (m *Manager) setTokensLocked(tokens models.TokenResponse) error {
	session := models.Session{
		AccessToken: tokens.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second).UnixMilli(),
	}

	if m.vault.Available() {
		if err := m.vault.Set(tokens.RefreshToken); err != nil {
			logger.Warn("Keyring write failed, persisting refresh token with session", "error", err)
			session.RefreshToken = tokens.RefreshToken
		}
	} else {
		session.RefreshToken = tokens.RefreshToken
	}

	if err := m.provider.SaveSession(session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	session.RefreshToken = tokens.RefreshToken
	m.session = session
	return nil
}

// RefreshAccess exchanges the refresh token for a new pair and returns
// the new access token. Satisfies api.TokenSource.
func (m *Manager) RefreshAccess(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.RefreshToken == "" {
		return "", ErrSignedOut
	}

	tokens, err := m.refresher.RefreshTokens(ctx, models.RefreshRequest{RefreshToken: m.session.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("refresh tokens: %w", err)
	}
	if err := m.setTokensLocked(tokens); err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// SignOut clears the persisted session and the vaulted refresh token.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = models.Session{}
	if m.vault.Available() {
		if err := m.vault.Delete(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Keyring delete failed during sign-out", "error", err)
		}
	}
	if err := m.provider.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Ensure Manager satisfies the transport's token source.
var _ api.TokenSource = (*Manager)(nil)

package keyring

import (
	"errors"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no refresh token is stored in the keyring
	ErrNotFound = errors.New("refresh token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetRefreshToken retrieves the refresh token from the OS keyring.
// Returns ErrNotFound if none is stored.
func GetRefreshToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetRefreshToken stores the refresh token in the OS keyring.
func SetRefreshToken(token string) error {
	if token == "" {
		return errors.New("refresh token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store refresh token in keyring: %w", err)
	}
	return nil
}

// DeleteRefreshToken removes the refresh token from the OS keyring.
func DeleteRefreshToken() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete refresh token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, just with nothing in it.
	return err == nil || err == keyring.ErrNotFound
}

package api

import (
	"context"
	"net/http"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, payload models.LoginRequest) (models.TokenResponse, error) {
	var tokens models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, payload, &tokens); err != nil {
		return models.TokenResponse{}, err
	}
	return tokens, nil
}

// RefreshTokens exchanges a refresh token for a new token pair.
func (c *Client) RefreshTokens(ctx context.Context, payload models.RefreshRequest) (models.TokenResponse, error) {
	var tokens models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, payload, &tokens); err != nil {
		return models.TokenResponse{}, err
	}
	return tokens, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, payload models.RegisterRequest) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, payload, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser fetches the signed-in account.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

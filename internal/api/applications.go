package api

import (
	"context"
	"net/http"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// ListApplications fetches the signed-in user's applications.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := c.do(ctx, http.MethodGet, "/api/v1/applications", nil, nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// CreateApplication applies to an internship.
func (c *Client) CreateApplication(ctx context.Context, payload models.ApplicationCreate) (models.Application, error) {
	var application models.Application
	if err := c.do(ctx, http.MethodPost, "/api/v1/applications", nil, payload, &application); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

package api

import (
	"context"
	"net/http"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// ListNotifications fetches the signed-in user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) (models.Notification, error) {
	var notification models.Notification
	if err := c.do(ctx, http.MethodPost, "/api/v1/notifications/"+id+"/read", nil, nil, &notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

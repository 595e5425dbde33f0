package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// EntryCreator is the slice of the client the draft reconciliation
// workflow needs. Implemented by *Client and fakeable in tests.
type EntryCreator interface {
	CreateLogbookEntry(ctx context.Context, payload models.LogbookEntryCreate) (models.LogbookEntry, error)
}

// Ensure Client implements EntryCreator at compile time.
var _ EntryCreator = (*Client)(nil)

// ListLogbookEntries fetches entries, optionally scoped to one
// application.
func (c *Client) ListLogbookEntries(ctx context.Context, applicationID string) ([]models.LogbookEntry, error) {
	var query url.Values
	if applicationID != "" {
		query = url.Values{"application_id": {applicationID}}
	}
	var entries []models.LogbookEntry
	if err := c.do(ctx, http.MethodGet, "/api/v1/logbook-entries", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetLogbookEntry fetches a single entry.
func (c *Client) GetLogbookEntry(ctx context.Context, id string) (models.LogbookEntry, error) {
	var entry models.LogbookEntry
	if err := c.do(ctx, http.MethodGet, "/api/v1/logbook-entries/"+id, nil, nil, &entry); err != nil {
		return models.LogbookEntry{}, err
	}
	return entry, nil
}

// CreateLogbookEntry creates an entry on the server.
func (c *Client) CreateLogbookEntry(ctx context.Context, payload models.LogbookEntryCreate) (models.LogbookEntry, error) {
	var entry models.LogbookEntry
	if err := c.do(ctx, http.MethodPost, "/api/v1/logbook-entries", nil, payload, &entry); err != nil {
		return models.LogbookEntry{}, err
	}
	return entry, nil
}

// UpdateLogbookEntry patches an entry. Nil fields in the payload are
// left untouched.
func (c *Client) UpdateLogbookEntry(ctx context.Context, id string, payload models.LogbookEntryUpdate) (models.LogbookEntry, error) {
	var entry models.LogbookEntry
	if err := c.do(ctx, http.MethodPatch, "/api/v1/logbook-entries/"+id, nil, payload, &entry); err != nil {
		return models.LogbookEntry{}, err
	}
	return entry, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// ListInternships fetches internship listings. Remote/credits/location/
// skills filters are applied server-side; the free-text search term is
// matched client-side against title, description, location and skills,
// mirroring the mobile client.
func (c *Client) ListInternships(ctx context.Context, filters models.InternshipFilters) ([]models.Internship, error) {
	query := url.Values{}
	if filters.Remote != nil {
		query.Set("remote", strconv.FormatBool(*filters.Remote))
	}
	if filters.MinCredits > 0 {
		query.Set("min_credits", strconv.Itoa(filters.MinCredits))
	}
	if location := strings.TrimSpace(filters.Location); location != "" {
		query.Set("location", location)
	}
	for _, skill := range filters.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			query.Add("skills", skill)
		}
	}

	var internships []models.Internship
	if err := c.do(ctx, http.MethodGet, "/api/v1/internships", query, nil, &internships); err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filters.Search))
	if term == "" {
		return internships, nil
	}

	matched := internships[:0]
	for _, in := range internships {
		if internshipMatches(in, term) {
			matched = append(matched, in)
		}
	}
	return matched, nil
}

func internshipMatches(in models.Internship, term string) bool {
	parts := []string{in.Title}
	if in.Description != nil {
		parts = append(parts, *in.Description)
	}
	if in.Location != nil {
		parts = append(parts, *in.Location)
	}
	parts = append(parts, in.Skills...)
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), term)
}

// GetInternship fetches a single internship listing.
func (c *Client) GetInternship(ctx context.Context, id string) (models.Internship, error) {
	var internship models.Internship
	if err := c.do(ctx, http.MethodGet, "/api/v1/internships/"+id, nil, nil, &internship); err != nil {
		return models.Internship{}, err
	}
	return internship, nil
}

package models

// Internship is a posted internship listing.
type Internship struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	Skills        []string `json:"skills"`
	Stipend       *float64 `json:"stipend"`
	Location      *string  `json:"location"`
	Remote        bool     `json:"remote"`
	StartDate     *string  `json:"start_date"`
	DurationWeeks *int     `json:"duration_weeks"`
	Credits       *int     `json:"credits"`
	Status        string   `json:"status"`
	PostedBy      string   `json:"posted_by"`
	CreatedAt     string   `json:"created_at"`
}

// InternshipFilters narrows an internship listing request. Zero values
// are omitted from the query string; Search is applied client-side.
type InternshipFilters struct {
	Remote     *bool
	MinCredits int
	Location   string
	Skills     []string
	Search     string
}

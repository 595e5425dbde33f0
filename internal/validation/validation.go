package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/prashikshan/prashikshan-cli/internal/constants"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// IssueType identifies a class of input problem.
type IssueType string

const (
	IssueMissingApplication   IssueType = "missing_application"
	IssueInvalidEntryDate     IssueType = "invalid_entry_date"
	IssueNegativeHours        IssueType = "negative_hours"
	IssueEmptyDescription     IssueType = "empty_description"
	IssueIncompleteAttachment IssueType = "incomplete_attachment"
)

// Issue is a single detected input problem.
type Issue struct {
	Type        IssueType
	Description string
}

// Result contains all detected issues for one input.
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Invalid logbook entry:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// Err returns the result as a single error, or nil when clean.
func (r *Result) Err() error {
	if !r.HasIssues() {
		return nil
	}

	descriptions := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		descriptions[i] = issue.Description
	}
	return fmt.Errorf("invalid logbook entry: %s", strings.Join(descriptions, "; "))
}

func (r *Result) add(t IssueType, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Type: t, Description: fmt.Sprintf(format, args...)})
}

// ValidateEntryInput checks a logbook entry payload before it becomes a
// draft or a direct submission. The server re-validates on its side;
// this catches what would be rejected anyway before anything persists.
func ValidateEntryInput(applicationID, entryDate string, hours float64, description string, attachments []models.Attachment) *Result {
	result := &Result{}

	if strings.TrimSpace(applicationID) == "" {
		result.add(IssueMissingApplication, "application id is required")
	}

	if _, err := time.Parse(constants.DateFormat, entryDate); err != nil {
		result.add(IssueInvalidEntryDate, "entry date must be YYYY-MM-DD, got %q", entryDate)
	}

	if hours < 0 {
		result.add(IssueNegativeHours, "hours must not be negative, got %g", hours)
	}

	if strings.TrimSpace(description) == "" {
		result.add(IssueEmptyDescription, "description is required")
	}

	for i, att := range attachments {
		if strings.TrimSpace(att.Name) == "" || strings.TrimSpace(att.URL) == "" {
			result.add(IssueIncompleteAttachment, "attachment %d needs both a name and a url", i+1)
		}
	}

	return result
}

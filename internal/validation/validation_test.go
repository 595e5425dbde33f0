package validation

import (
	"strings"
	"testing"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

func TestValidateEntryInput(t *testing.T) {
	tests := []struct {
		name          string
		applicationID string
		entryDate     string
		hours         float64
		description   string
		attachments   []models.Attachment
		wantIssues    []IssueType
	}{
		{
			name:          "valid entry",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         7.5,
			description:   "Worked on the backend",
		},
		{
			name:          "zero hours allowed",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         0,
			description:   "Holiday, no work",
		},
		{
			name:          "valid attachments",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         2,
			description:   "Report writing",
			attachments:   []models.Attachment{{Name: "report", URL: "https://example.com/r.pdf"}},
		},
		{
			name:        "missing application",
			entryDate:   "2024-05-01",
			hours:       1,
			description: "x",
			wantIssues:  []IssueType{IssueMissingApplication},
		},
		{
			name:          "blank application",
			applicationID: "   ",
			entryDate:     "2024-05-01",
			hours:         1,
			description:   "x",
			wantIssues:    []IssueType{IssueMissingApplication},
		},
		{
			name:          "malformed date",
			applicationID: "app-1",
			entryDate:     "01/05/2024",
			hours:         1,
			description:   "x",
			wantIssues:    []IssueType{IssueInvalidEntryDate},
		},
		{
			name:          "out of range date",
			applicationID: "app-1",
			entryDate:     "2024-13-40",
			hours:         1,
			description:   "x",
			wantIssues:    []IssueType{IssueInvalidEntryDate},
		},
		{
			name:          "negative hours",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         -0.5,
			description:   "x",
			wantIssues:    []IssueType{IssueNegativeHours},
		},
		{
			name:          "whitespace description",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         1,
			description:   "   ",
			wantIssues:    []IssueType{IssueEmptyDescription},
		},
		{
			name:          "attachment missing url",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         1,
			description:   "x",
			attachments:   []models.Attachment{{Name: "report"}},
			wantIssues:    []IssueType{IssueIncompleteAttachment},
		},
		{
			name:          "attachment missing name",
			applicationID: "app-1",
			entryDate:     "2024-05-01",
			hours:         1,
			description:   "x",
			attachments:   []models.Attachment{{URL: "https://example.com/r.pdf"}},
			wantIssues:    []IssueType{IssueIncompleteAttachment},
		},
		{
			name:       "everything wrong at once",
			entryDate:  "yesterday",
			hours:      -1,
			wantIssues: []IssueType{IssueMissingApplication, IssueInvalidEntryDate, IssueNegativeHours, IssueEmptyDescription},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateEntryInput(tt.applicationID, tt.entryDate, tt.hours, tt.description, tt.attachments)

			if len(tt.wantIssues) == 0 {
				if result.HasIssues() {
					t.Fatalf("unexpected issues: %v", result.Issues)
				}
				if err := result.Err(); err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				return
			}

			if len(result.Issues) != len(tt.wantIssues) {
				t.Fatalf("got %d issues %v, want %d", len(result.Issues), result.Issues, len(tt.wantIssues))
			}
			for i, want := range tt.wantIssues {
				if result.Issues[i].Type != want {
					t.Errorf("issue %d type = %q, want %q", i, result.Issues[i].Type, want)
				}
			}
			if err := result.Err(); err == nil {
				t.Error("Err() = nil despite issues")
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	t.Run("clean result", func(t *testing.T) {
		result := ValidateEntryInput("app-1", "2024-05-01", 1, "x", nil)
		if got := result.FormatReport(); got != "No issues detected." {
			t.Errorf("FormatReport() = %q", got)
		}
	})

	t.Run("lists each issue", func(t *testing.T) {
		result := ValidateEntryInput("", "2024-05-01", 1, "", nil)
		report := result.FormatReport()
		if !strings.Contains(report, "application id is required") {
			t.Errorf("report %q missing application issue", report)
		}
		if !strings.Contains(report, "description is required") {
			t.Errorf("report %q missing description issue", report)
		}
	})
}

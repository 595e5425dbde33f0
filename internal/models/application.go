package models

// ApplicationDecision is a review outcome for an application.
type ApplicationDecision string

const (
	DecisionPending  ApplicationDecision = "PENDING"
	DecisionApproved ApplicationDecision = "APPROVED"
	DecisionRejected ApplicationDecision = "REJECTED"
)

// ApplicationCreate is the payload for applying to an internship.
type ApplicationCreate struct {
	InternshipID      string  `json:"internship_id"`
	ResumeSnapshotURL *string `json:"resume_snapshot_url,omitempty"`
}

// Application is a student's application to an internship. Logbook
// entries and drafts are scoped to an application's ID.
type Application struct {
	ID                string              `json:"id"`
	InternshipID      string              `json:"internship_id"`
	StudentID         string              `json:"student_id"`
	AppliedAt         string              `json:"applied_at"`
	IndustryStatus    ApplicationDecision `json:"industry_status"`
	FacultyStatus     ApplicationDecision `json:"faculty_status"`
	ResumeSnapshotURL *string             `json:"resume_snapshot_url"`
	Internship        *Internship         `json:"internship,omitempty"`
}

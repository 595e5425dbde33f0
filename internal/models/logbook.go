package models

// DraftStatus tracks where a locally stored logbook entry sits in its
// sync lifecycle. There is deliberately no "synced" value: success is
// represented by removing the draft from the collection.
type DraftStatus string

const (
	DraftPending DraftStatus = "pending"
	DraftSyncing DraftStatus = "syncing"
	DraftError   DraftStatus = "error"
)

// Attachment is a named link to supporting material for a logbook entry.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LogbookDraft is a locally created logbook entry that has not yet been
// confirmed stored on the server.
type LogbookDraft struct {
	ID            string       `json:"id"`
	ApplicationID string       `json:"application_id"`
	EntryDate     string       `json:"entry_date"` // YYYY-MM-DD
	Hours         float64      `json:"hours"`
	Description   string       `json:"description"`
	Attachments   []Attachment `json:"attachments"`
	CreatedAt     string       `json:"created_at"` // RFC3339
	Status        DraftStatus  `json:"status"`
	LastError     *string      `json:"last_error,omitempty"`
}

// LogbookEntryCreate is the request body for creating a logbook entry.
type LogbookEntryCreate struct {
	ApplicationID string       `json:"application_id"`
	EntryDate     string       `json:"entry_date"`
	Hours         float64      `json:"hours"`
	Description   string       `json:"description"`
	Attachments   []Attachment `json:"attachments,omitempty"`
}

// LogbookEntryUpdate is the request body for patching a logbook entry.
// Nil fields are left untouched by the server.
type LogbookEntryUpdate struct {
	EntryDate       *string      `json:"entry_date,omitempty"`
	Hours           *float64     `json:"hours,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty"`
	Approved        *bool        `json:"approved,omitempty"`
	FacultyComments *string      `json:"faculty_comments,omitempty"`
}

// LogbookEntry is a server-confirmed logbook record.
type LogbookEntry struct {
	ID              string       `json:"id"`
	ApplicationID   string       `json:"application_id"`
	StudentID       string       `json:"student_id"`
	EntryDate       string       `json:"entry_date"`
	Hours           float64      `json:"hours"`
	Description     string       `json:"description"`
	Attachments     []Attachment `json:"attachments"`
	FacultyComments *string      `json:"faculty_comments"`
	Approved        bool         `json:"approved"`
	CreatedAt       string       `json:"created_at"`
}

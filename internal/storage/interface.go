package storage

import (
	"errors"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// ErrNoSession is returned when no auth session has been persisted.
var ErrNoSession = errors.New("no session stored")

// Provider is the durable key-value port the client state lives behind.
// The draft collection and the auth session are each stored as a single
// document; implementations must make SaveDrafts atomic with respect to
// process crashes so a partial write never corrupts previously stored
// drafts.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Logbook drafts (whole-collection document)
	LoadDrafts() ([]models.LogbookDraft, error)
	SaveDrafts([]models.LogbookDraft) error

	// Auth session
	LoadSession() (models.Session, error)
	SaveSession(models.Session) error
	ClearSession() error

	// Utils
	GetDataPath() string
}

// Package drafts implements the offline logbook draft queue: an ordered,
// durable collection of locally created logbook entries and the workflow
// that reconciles them with the server.
package drafts

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prashikshan/prashikshan-cli/internal/models"
	"github.com/prashikshan/prashikshan-cli/internal/storage"
	"github.com/prashikshan/prashikshan-cli/internal/validation"
)

// EntryInput is the caller-supplied part of a draft. ID, creation time
// and status are assigned by the store.
type EntryInput struct {
	ApplicationID string
	EntryDate     string
	Hours         float64
	Description   string
	Attachments   []models.Attachment
}

// Store owns the draft collection. All mutations go through it, hold its
// lock, and persist the full collection before returning; a persistence
// failure rolls the in-memory state back so memory never claims
// durability that storage refused.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
	drafts   []models.LogbookDraft
	subs     map[int]func()
	nextSub  int
}

// NewStore creates a Store around the given persistence provider. Call
// Load before use.
func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		subs:     make(map[int]func()),
	}
}

// Load reads the persisted collection. Any draft found in "syncing"
// state was abandoned by a previous process mid-flight; it is demoted to
// "pending" before any caller can observe it, because a persisted
// syncing status is never trustworthy across a restart.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.provider.LoadDrafts()
	if err != nil {
		return fmt.Errorf("load drafts: %w", err)
	}

	demoted := false
	for i := range drafts {
		if drafts[i].Status == models.DraftSyncing {
			drafts[i].Status = models.DraftPending
			drafts[i].LastError = nil
			demoted = true
		}
	}

	s.drafts = drafts
	if demoted {
		if err := s.provider.SaveDrafts(s.drafts); err != nil {
			return fmt.Errorf("persist demoted drafts: %w", err)
		}
	}
	return nil
}

// AddDraft validates the input, constructs a pending draft and appends
// it to the end of the collection.
func (s *Store) AddDraft(input EntryInput) (models.LogbookDraft, error) {
	if result := validation.ValidateEntryInput(input.ApplicationID, input.EntryDate, input.Hours, input.Description, input.Attachments); result.HasIssues() {
		return models.LogbookDraft{}, result.Err()
	}

	attachments := input.Attachments
	if attachments == nil {
		attachments = []models.Attachment{}
	}

	draft := models.LogbookDraft{
		ID:            uuid.NewString(),
		ApplicationID: input.ApplicationID,
		EntryDate:     input.EntryDate,
		Hours:         input.Hours,
		Description:   input.Description,
		Attachments:   attachments,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Status:        models.DraftPending,
	}

	s.mu.Lock()
	s.drafts = append(s.drafts, draft)
	if err := s.persistLocked(); err != nil {
		s.drafts = s.drafts[:len(s.drafts)-1]
		s.mu.Unlock()
		return models.LogbookDraft{}, err
	}
	s.mu.Unlock()

	s.notify()
	return draft, nil
}

// RemoveDraft deletes the draft with the given id. Removing an absent id
// is a no-op, not an error.
func (s *Store) RemoveDraft(id string) error {
	return s.removeByID(id)
}

// MarkSyncing transitions the draft to syncing and clears its last
// error. No-op when the id is absent.
func (s *Store) MarkSyncing(id string) error {
	return s.update(id, func(d *models.LogbookDraft) {
		d.Status = models.DraftSyncing
		d.LastError = nil
	})
}

// MarkError records a failed sync attempt on the draft.
func (s *Store) MarkError(id, message string) error {
	return s.update(id, func(d *models.LogbookDraft) {
		d.Status = models.DraftError
		d.LastError = &message
	})
}

// MarkSynced removes the draft: success is represented by deletion, not
// by a terminal status value.
func (s *Store) MarkSynced(id string) error {
	return s.removeByID(id)
}

// Reset clears the whole collection. Used on sign-out.
func (s *Store) Reset() error {
	s.mu.Lock()
	previous := s.drafts
	s.drafts = []models.LogbookDraft{}
	if err := s.persistLocked(); err != nil {
		s.drafts = previous
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Drafts returns a copy of the collection in insertion order.
func (s *Store) Drafts() []models.LogbookDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	dup := make([]models.LogbookDraft, len(s.drafts))
	copy(dup, s.drafts)
	return dup
}

// Get returns the draft with the given id, if present.
func (s *Store) Get(id string) (models.LogbookDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drafts {
		if d.ID == id {
			return d, true
		}
	}
	return models.LogbookDraft{}, false
}

// Subscribe registers a callback invoked after every successful
// mutation. The returned function unsubscribes. Callbacks run outside
// the store lock and must not assume any particular goroutine.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(id string, apply func(*models.LogbookDraft)) error {
	s.mu.Lock()
	idx := -1
	for i := range s.drafts {
		if s.drafts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	previous := s.drafts[idx]
	apply(&s.drafts[idx])
	if err := s.persistLocked(); err != nil {
		s.drafts[idx] = previous
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Store) removeByID(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.drafts {
		if s.drafts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	previous := make([]models.LogbookDraft, len(s.drafts))
	copy(previous, s.drafts)
	s.drafts = append(s.drafts[:idx], s.drafts[idx+1:]...)
	if err := s.persistLocked(); err != nil {
		s.drafts = previous
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Store) persistLocked() error {
	if err := s.provider.SaveDrafts(s.drafts); err != nil {
		return fmt.Errorf("persist drafts: %w", err)
	}
	return nil
}

func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

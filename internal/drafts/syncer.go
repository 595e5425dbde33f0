package drafts

import (
	"context"
	"errors"
	"sync"

	"github.com/prashikshan/prashikshan-cli/internal/api"
	"github.com/prashikshan/prashikshan-cli/internal/logger"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

// ErrSyncInFlight is returned when a sync is requested for a draft that
// already has an attempt running.
var ErrSyncInFlight = errors.New("draft sync already in progress")

// syncFallbackMessage is recorded when a failure carries no description.
const syncFallbackMessage = "Failed to sync draft"

// Syncer reconciles local drafts with the server. It is stateless
// across calls except for the in-flight guard; everything durable lives
// on the drafts themselves.
type Syncer struct {
	store *Store
	api   api.EntryCreator

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSyncer creates a Syncer over the given store and remote client.
func NewSyncer(store *Store, client api.EntryCreator) *Syncer {
	return &Syncer{
		store:    store,
		api:      client,
		inFlight: make(map[string]struct{}),
	}
}

// SyncDraft attempts to submit one draft to the server. An absent id is
// a no-op: the draft is treated as already resolved. On success the
// draft is removed and the created entry returned. On failure the
// failure is recorded on the draft and also returned, so the caller can
// react immediately while the record stays durable. A second concurrent
// call for the same id gets ErrSyncInFlight instead of racing.
func (s *Syncer) SyncDraft(ctx context.Context, id string) (*models.LogbookEntry, error) {
	draft, ok := s.store.Get(id)
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.mu.Unlock()
		return nil, ErrSyncInFlight
	}
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}()

	if err := s.store.MarkSyncing(id); err != nil {
		return nil, err
	}

	entry, err := s.api.CreateLogbookEntry(ctx, models.LogbookEntryCreate{
		ApplicationID: draft.ApplicationID,
		EntryDate:     draft.EntryDate,
		Hours:         draft.Hours,
		Description:   draft.Description,
		Attachments:   draft.Attachments,
	})
	if err != nil {
		message := api.ErrorMessage(err)
		if message == "" {
			message = syncFallbackMessage
		}
		if markErr := s.store.MarkError(id, message); markErr != nil {
			logger.Warn("Failed to record sync error on draft", "draft", id, "error", markErr)
		}
		return nil, err
	}

	if err := s.store.MarkSynced(id); err != nil {
		// The server accepted the entry; surface the storage problem but
		// never pretend the remote write failed.
		return &entry, err
	}

	logger.Debug("Draft synced", "draft", id, "entry", entry.ID)
	return &entry, nil
}

// SyncOutcome records one draft's result from a SyncAll pass.
type SyncOutcome struct {
	DraftID string
	Entry   *models.LogbookEntry
	Err     error
}

// SyncAll walks the collection in stored (oldest first) order and syncs
// each draft sequentially. One draft's failure does not stop the walk.
func (s *Syncer) SyncAll(ctx context.Context) []SyncOutcome {
	var outcomes []SyncOutcome
	for _, draft := range s.store.Drafts() {
		entry, err := s.SyncDraft(ctx, draft.ID)
		outcomes = append(outcomes, SyncOutcome{DraftID: draft.ID, Entry: entry, Err: err})
	}
	return outcomes
}

// SubmitStatus tags a Submit result.
type SubmitStatus string

const (
	StatusSynced SubmitStatus = "synced"
	StatusDraft  SubmitStatus = "draft"
)

// SubmitResult is the outcome of a direct submission. When Status is
// StatusDraft, Draft holds the locally saved entry and Cause the remote
// failure that forced the fallback.
type SubmitResult struct {
	Status SubmitStatus
	Entry  *models.LogbookEntry
	Draft  *models.LogbookDraft
	Cause  error
}

// Submit is the primary create-entry path: try the server first, and on
// any remote failure capture the input as a pending draft. A remote
// failure is an expected outcome, not an error; the returned error is
// non-nil only when the input is invalid or the draft itself could not
// be persisted.
func (s *Syncer) Submit(ctx context.Context, input EntryInput) (SubmitResult, error) {
	entry, err := s.api.CreateLogbookEntry(ctx, models.LogbookEntryCreate{
		ApplicationID: input.ApplicationID,
		EntryDate:     input.EntryDate,
		Hours:         input.Hours,
		Description:   input.Description,
		Attachments:   input.Attachments,
	})
	if err == nil {
		return SubmitResult{Status: StatusSynced, Entry: &entry}, nil
	}

	logger.Info("Direct submission failed, saving draft", "application", input.ApplicationID, "error", err)
	draft, addErr := s.store.AddDraft(input)
	if addErr != nil {
		return SubmitResult{}, addErr
	}
	return SubmitResult{Status: StatusDraft, Draft: &draft, Cause: err}, nil
}

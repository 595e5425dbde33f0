package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

func newSQLiteStoreAt(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "prashikshan.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreDraftsRoundTrip(t *testing.T) {
	store := newSQLiteStoreAt(t)
	want := sampleDrafts()
	if err := store.SaveDrafts(want); err != nil {
		t.Fatalf("SaveDrafts() error: %v", err)
	}

	got, err := store.LoadDrafts()
	if err != nil {
		t.Fatalf("LoadDrafts() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d drafts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("draft %d id = %q, want %q", i, got[i].ID, want[i].ID)
		}
		if got[i].Hours != want[i].Hours {
			t.Errorf("draft %d hours = %v, want %v", i, got[i].Hours, want[i].Hours)
		}
		if got[i].Status != want[i].Status {
			t.Errorf("draft %d status = %q, want %q", i, got[i].Status, want[i].Status)
		}
	}
	if got[0].LastError != nil {
		t.Errorf("draft 0 lastError = %q, want nil", *got[0].LastError)
	}
	if got[1].LastError == nil || *got[1].LastError != *want[1].LastError {
		t.Errorf("draft 1 lastError = %v, want %q", got[1].LastError, *want[1].LastError)
	}
	if len(got[0].Attachments) != 1 || got[0].Attachments[0].Name != "notes" {
		t.Errorf("draft 0 attachments = %v, want %v", got[0].Attachments, want[0].Attachments)
	}
}

func TestSQLiteStoreSaveReplacesCollection(t *testing.T) {
	store := newSQLiteStoreAt(t)
	if err := store.SaveDrafts(sampleDrafts()); err != nil {
		t.Fatalf("SaveDrafts() error: %v", err)
	}

	// Saving a shorter collection drops the missing rows.
	remaining := sampleDrafts()[:1]
	if err := store.SaveDrafts(remaining); err != nil {
		t.Fatalf("SaveDrafts() error: %v", err)
	}

	got, err := store.LoadDrafts()
	if err != nil {
		t.Fatalf("LoadDrafts() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d drafts, want 1", len(got))
	}
	if got[0].ID != "d1" {
		t.Errorf("remaining draft = %q, want %q", got[0].ID, "d1")
	}
}

func TestSQLiteStorePreservesOrder(t *testing.T) {
	store := newSQLiteStoreAt(t)

	drafts := []models.LogbookDraft{}
	ids := []string{"z-last", "a-first", "m-middle"}
	for _, id := range ids {
		drafts = append(drafts, models.LogbookDraft{
			ID:            id,
			ApplicationID: "app-1",
			EntryDate:     "2024-05-01",
			Hours:         1,
			Description:   "entry " + id,
			CreatedAt:     "2024-05-01T09:00:00Z",
			Status:        models.DraftPending,
		})
	}
	if err := store.SaveDrafts(drafts); err != nil {
		t.Fatalf("SaveDrafts() error: %v", err)
	}

	got, err := store.LoadDrafts()
	if err != nil {
		t.Fatalf("LoadDrafts() error: %v", err)
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q (insertion order, not lexical)", i, got[i].ID, id)
		}
	}
}

func TestSQLiteStoreSession(t *testing.T) {
	store := newSQLiteStoreAt(t)

	if _, err := store.LoadSession(); !errors.Is(err, ErrNoSession) {
		t.Errorf("LoadSession() on empty store = %v, want ErrNoSession", err)
	}

	session := models.Session{AccessToken: "a1", RefreshToken: "r1", ExpiresAt: 1714560000000}
	if err := store.SaveSession(session); err != nil {
		t.Fatalf("SaveSession() error: %v", err)
	}
	got, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if got != session {
		t.Errorf("LoadSession() = %+v, want %+v", got, session)
	}

	// Saving again overwrites the single row.
	session.AccessToken = "a2"
	if err := store.SaveSession(session); err != nil {
		t.Fatalf("second SaveSession() error: %v", err)
	}
	got, _ = store.LoadSession()
	if got.AccessToken != "a2" {
		t.Errorf("access token = %q after overwrite, want %q", got.AccessToken, "a2")
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() error: %v", err)
	}
	if _, err := store.LoadSession(); !errors.Is(err, ErrNoSession) {
		t.Errorf("LoadSession() after clear = %v, want ErrNoSession", err)
	}
}

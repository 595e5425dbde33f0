package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain host gets scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash trimmed", "https://api.example.com/", "https://api.example.com", false},
		{"path prefix kept", "https://example.com/api/", "https://example.com/api", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBaseURL(%q) accepted invalid input", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBaseURL(%q) error: %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("parseBaseURL(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestClientDo(t *testing.T) {
	t.Run("sends JSON and decodes response", func(t *testing.T) {
		var gotContentType, gotAccept string
		var gotPayload models.LogbookEntryCreate
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotAccept = r.Header.Get("Accept")
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Errorf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(models.LogbookEntry{ID: "e1", ApplicationID: gotPayload.ApplicationID})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, nil, time.Second)
		if err != nil {
			t.Fatalf("NewClient() error: %v", err)
		}

		entry, err := client.CreateLogbookEntry(context.Background(), models.LogbookEntryCreate{
			ApplicationID: "app-1",
			EntryDate:     "2024-05-01",
			Hours:         2,
			Description:   "test",
		})
		if err != nil {
			t.Fatalf("CreateLogbookEntry() error: %v", err)
		}
		if entry.ID != "e1" {
			t.Errorf("entry id = %q, want %q", entry.ID, "e1")
		}
		if gotContentType != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", gotContentType)
		}
		if gotAccept != "application/json" {
			t.Errorf("Accept = %q, want application/json", gotAccept)
		}
		if gotPayload.ApplicationID != "app-1" {
			t.Errorf("server saw application %q, want %q", gotPayload.ApplicationID, "app-1")
		}
	})

	t.Run("extracts server detail from error responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Network unavailable"})
		}))
		defer server.Close()

		client, _ := NewClient(server.URL, nil, time.Second)
		_, err := client.GetLogbookEntry(context.Background(), "e1")
		if err == nil {
			t.Fatal("expected error for 502 response")
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *Error", err)
		}
		if apiErr.StatusCode != http.StatusBadGateway {
			t.Errorf("status = %d, want %d", apiErr.StatusCode, http.StatusBadGateway)
		}
		if apiErr.Message != "Network unavailable" {
			t.Errorf("message = %q, want %q", apiErr.Message, "Network unavailable")
		}
	})

	t.Run("error without detail keeps status only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer server.Close()

		client, _ := NewClient(server.URL, nil, time.Second)
		_, err := client.GetLogbookEntry(context.Background(), "e1")

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *Error", err)
		}
		if apiErr.Message != "" {
			t.Errorf("message = %q, want empty", apiErr.Message)
		}
	})

	t.Run("base path prefix is preserved", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode([]models.LogbookEntry{})
		}))
		defer server.Close()

		client, _ := NewClient(server.URL+"/backend/", nil, time.Second)
		if _, err := client.ListLogbookEntries(context.Background(), ""); err != nil {
			t.Fatalf("ListLogbookEntries() error: %v", err)
		}
		if gotPath != "/backend/api/v1/logbook-entries" {
			t.Errorf("request path = %q, want %q", gotPath, "/backend/api/v1/logbook-entries")
		}
	})
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"api error with detail", &Error{StatusCode: 502, Message: "Network unavailable"}, "Network unavailable"},
		{"api error without detail", &Error{StatusCode: 500}, "api error (status 500)"},
		{"plain error", errors.New("connection refused"), "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeTokens is a canned TokenSource for transport tests.
type fakeTokens struct {
	access     string
	refreshed  string
	refreshErr error

	refreshCalls int
	signedOut    bool
}

func (f *fakeTokens) AccessToken() string { return f.access }

func (f *fakeTokens) RefreshAccess(ctx context.Context) (string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.refreshed, nil
}

func (f *fakeTokens) SignOut() error {
	f.signedOut = true
	return nil
}

func TestAuthTransport(t *testing.T) {
	t.Run("injects bearer token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]models.LogbookEntry{})
		}))
		defer server.Close()

		client, _ := NewClient(server.URL, &fakeTokens{access: "tok-1"}, time.Second)
		if _, err := client.ListLogbookEntries(context.Background(), ""); err != nil {
			t.Fatalf("request error: %v", err)
		}
		if gotAuth != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
		}
	})

	t.Run("refreshes once on 401 and replays", func(t *testing.T) {
		var auths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			auths = append(auths, auth)
			if auth != "Bearer tok-new" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]models.LogbookEntry{})
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "tok-stale", refreshed: "tok-new"}
		client, _ := NewClient(server.URL, tokens, time.Second)
		if _, err := client.ListLogbookEntries(context.Background(), ""); err != nil {
			t.Fatalf("request error: %v", err)
		}

		if tokens.refreshCalls != 1 {
			t.Errorf("refresh called %d times, want 1", tokens.refreshCalls)
		}
		want := []string{"Bearer tok-stale", "Bearer tok-new"}
		if len(auths) != len(want) {
			t.Fatalf("server saw %d requests, want %d", len(auths), len(want))
		}
		for i := range want {
			if auths[i] != want[i] {
				t.Errorf("request %d Authorization = %q, want %q", i, auths[i], want[i])
			}
		}
	})

	t.Run("replays request body after refresh", func(t *testing.T) {
		var bodies []models.LogbookEntryCreate
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload models.LogbookEntryCreate
			json.NewDecoder(r.Body).Decode(&payload)
			bodies = append(bodies, payload)
			if r.Header.Get("Authorization") != "Bearer tok-new" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(models.LogbookEntry{ID: "e1"})
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "tok-stale", refreshed: "tok-new"}
		client, _ := NewClient(server.URL, tokens, time.Second)
		_, err := client.CreateLogbookEntry(context.Background(), models.LogbookEntryCreate{ApplicationID: "app-1", EntryDate: "2024-05-01", Hours: 1, Description: "x"})
		if err != nil {
			t.Fatalf("request error: %v", err)
		}
		if len(bodies) != 2 {
			t.Fatalf("server saw %d requests, want 2", len(bodies))
		}
		if bodies[1].ApplicationID != "app-1" {
			t.Errorf("replayed body application = %q, want %q", bodies[1].ApplicationID, "app-1")
		}
	})

	t.Run("failed refresh signs out and surfaces the 401", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "tok-expired", refreshErr: errors.New("refresh token revoked")}
		client, _ := NewClient(server.URL, tokens, time.Second)
		_, err := client.ListLogbookEntries(context.Background(), "")
		if err == nil {
			t.Fatal("expected 401 error")
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *Error", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", apiErr.StatusCode)
		}
		if !tokens.signedOut {
			t.Error("session was not signed out after failed refresh")
		}
		if requests != 1 {
			t.Errorf("server saw %d requests, want 1 (no replay without a token)", requests)
		}
	})
}

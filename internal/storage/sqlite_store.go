package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	position       INTEGER PRIMARY KEY AUTOINCREMENT,
	id             TEXT NOT NULL UNIQUE,
	application_id TEXT NOT NULL,
	entry_date     TEXT NOT NULL,
	hours          REAL NOT NULL,
	description    TEXT NOT NULL,
	attachments    TEXT NOT NULL DEFAULT '[]',
	created_at     TEXT NOT NULL,
	status         TEXT NOT NULL,
	last_error     TEXT
);
CREATE TABLE IF NOT EXISTS session (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL DEFAULT '',
	expires_at    INTEGER NOT NULL
);
`

// SQLiteStore persists the client document in a local SQLite database.
// Draft saves replace the whole collection in one transaction, which
// gives the same crash-atomicity contract as the JSON store's
// write-then-rename.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent, so a read-only command on a fresh
	// machine behaves like an empty store instead of failing.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadDrafts() ([]models.LogbookDraft, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, application_id, entry_date, hours, description, attachments, created_at, status, last_error
		FROM drafts ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	drafts := []models.LogbookDraft{}
	for rows.Next() {
		var d models.LogbookDraft
		var attachments string
		var lastError sql.NullString
		if err := rows.Scan(&d.ID, &d.ApplicationID, &d.EntryDate, &d.Hours, &d.Description, &attachments, &d.CreatedAt, &d.Status, &lastError); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		if err := json.Unmarshal([]byte(attachments), &d.Attachments); err != nil {
			return nil, fmt.Errorf("failed to parse attachments for draft %s: %w", d.ID, err)
		}
		if lastError.Valid {
			msg := lastError.String
			d.LastError = &msg
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drafts: %w", err)
	}

	return drafts, nil
}

func (s *SQLiteStore) SaveDrafts(drafts []models.LogbookDraft) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM drafts`); err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO drafts (id, application_id, entry_date, hours, description, attachments, created_at, status, last_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range drafts {
		attachments := d.Attachments
		if attachments == nil {
			attachments = []models.Attachment{}
		}
		encoded, err := json.Marshal(attachments)
		if err != nil {
			return fmt.Errorf("failed to serialize attachments for draft %s: %w", d.ID, err)
		}
		var lastError any
		if d.LastError != nil {
			lastError = *d.LastError
		}
		if _, err := stmt.Exec(d.ID, d.ApplicationID, d.EntryDate, d.Hours, d.Description, string(encoded), d.CreatedAt, string(d.Status), lastError); err != nil {
			return fmt.Errorf("failed to insert draft %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadSession() (models.Session, error) {
	if s.db == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}

	var session models.Session
	err := s.db.QueryRow(`SELECT access_token, refresh_token, expires_at FROM session WHERE id = 1`).
		Scan(&session.AccessToken, &session.RefreshToken, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

func (s *SQLiteStore) SaveSession(session models.Session) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`INSERT INTO session (id, access_token, refresh_token, expires_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET access_token = excluded.access_token, refresh_token = excluded.refresh_token, expires_at = excluded.expires_at`,
		session.AccessToken, session.RefreshToken, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearSession() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDataPath() string {
	return s.path
}

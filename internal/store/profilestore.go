package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/arturo/voltz/internal/profile"
)

// ProfileStore persists the single learner profile. The SQLite row is
// authoritative; a JSON backup file next to the database is written
// best-effort and read only when the primary row is missing or corrupt.
type ProfileStore struct {
	mu         sync.Mutex
	db         *sql.DB
	backupPath string
}

// NewProfileStore creates a ProfileStore on the given database handle.
// backupPath may be empty to disable the backup file.
func NewProfileStore(db *sql.DB, backupPath string) *ProfileStore {
	return &ProfileStore{db: db, backupPath: backupPath}
}

// Load returns the last-saved profile. Any failure (no row, corrupt JSON,
// unreadable backup) degrades to the all-default profile; Load never fails.
func (s *ProfileStore) Load() profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ProfileStore) load() profile.Profile {
	var raw string
	err := s.db.QueryRow("SELECT data FROM profile WHERE id = 1").Scan(&raw)
	if err == nil {
		var p profile.Profile
		if json.Unmarshal([]byte(raw), &p) == nil {
			return p
		}
	}
	return s.loadBackup()
}

func (s *ProfileStore) loadBackup() profile.Profile {
	if s.backupPath == "" {
		return profile.Default()
	}
	raw, err := os.ReadFile(s.backupPath)
	if err != nil {
		return profile.Default()
	}
	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return profile.Default()
	}
	return p
}

// Save persists the whole profile record. The backup file write is
// best-effort: its failure does not fail the save.
func (s *ProfileStore) Save(p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(p)
}

func (s *ProfileStore) save(p profile.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO profile (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	if s.backupPath != "" {
		_ = os.WriteFile(s.backupPath, raw, 0o644)
	}
	return nil
}

// Registered reports whether a complete onboarding has been saved.
func (s *ProfileStore) Registered() bool {
	return s.Load().Registered()
}

// RecordLogin increments the login counter, stamps the login time, saves and
// returns the updated profile. Called once per app entry.
func (s *ProfileStore) RecordLogin() profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.load().WithLogin(time.Now())
	_ = s.save(p)
	return p
}

// Clear deletes all persisted profile state, primary and backup.
// A subsequent Load returns defaults.
func (s *ProfileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM profile"); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	if s.backupPath != "" {
		_ = os.Remove(s.backupPath)
	}
	return nil
}

// Package history keeps a small local record of grounded Q&A exchanges,
// one file per study pack. It is a fixed-size ring: newest entries sit at
// the front and the oldest fall off past the cap. Saves overwrite the file
// wholesale; there is no merging.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"yt-study-copilot/internal/statestore"
)

// MaxEntries is the per-pack history cap.
const MaxEntries = 50

type Entry struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Refused   bool   `json:"refused,omitempty"`
	Model     string `json:"model,omitempty"`
	Citations int    `json:"citations,omitempty"`
	AskedAt   string `json:"asked_at"`
}

type Store struct {
	dir string
}

func NewStore(stateDir string) Store {
	return Store{dir: filepath.Join(stateDir, "history")}
}

func (s Store) path(packID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("pack-%d.json", packID))
}

// Load returns the history for a pack, newest first. A missing file is an
// empty history, not an error.
func (s Store) Load(packID int) ([]Entry, error) {
	var entries []Entry
	if err := statestore.ReadJSON(s.path(packID), &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries, nil
}

// Append front-inserts one entry, evicts past the cap, and rewrites the
// pack's file atomically under the state lock.
func (s Store) Append(packID int, entry Entry) ([]Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.AskedAt == "" {
		entry.AskedAt = time.Now().UTC().Format(time.RFC3339)
	}

	lock, err := statestore.AcquireStateLock(s.dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = lock.Release()
	}()

	entries, err := s.Load(packID)
	if err != nil {
		return nil, err
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := statestore.WriteJSON(s.path(packID), entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes a pack's history file.
func (s Store) Clear(packID int) error {
	if err := os.Remove(s.path(packID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear history for pack %d: %w", packID, err)
	}
	return nil
}

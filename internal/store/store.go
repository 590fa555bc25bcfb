// Package store holds scan history and favorites, backed by a pluggable
// persister. All mutations are synchronous in memory; durable writes are
// best-effort and never fail a mutation.
package store

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/verdantapp/verdant-server/internal/domain"
)

// State is the full durable record: scan history plus favorite ids. It is
// loaded once at startup and rewritten after every mutation.
//
// FavoriteIDs may reference ids no longer present in History; clearing or
// replacing history does not cascade into favorites except via ClearHistory.
type State struct {
	History     []domain.ScannedPlant `json:"history"`
	FavoriteIDs []string              `json:"favoriteIds"`
}

// Persister loads and saves the full store state. Load returns a nil state
// when no record exists yet.
type Persister interface {
	Load() (*State, error)
	Save(state *State) error
}

// PlantStore is the process-wide scan history and favorites state.
// Safe for concurrent use.
type PlantStore struct {
	mu          sync.RWMutex
	history     []domain.ScannedPlant
	favoriteIDs []string

	persister Persister
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a PlantStore, loading prior state from the persister.
// A load failure is not fatal: the store starts empty and logs a warning,
// so a corrupt record does not brick the app.
func New(persister Persister, logger *slog.Logger) *PlantStore {
	s := &PlantStore{
		history:     []domain.ScannedPlant{},
		favoriteIDs: []string{},
		persister:   persister,
		logger:      logger,
		now:         time.Now,
	}

	state, err := persister.Load()
	if err != nil {
		logger.Warn("failed to load plant store state, starting empty", "error", err)
		return s
	}
	if state != nil {
		if state.History != nil {
			s.history = state.History
		}
		if state.FavoriteIDs != nil {
			s.favoriteIDs = state.FavoriteIDs
		}
	}

	return s
}

// AddToHistory stamps the plant with the current time and inserts it at the
// front of history. Any existing entry with the same id is removed first, so
// re-scanning a plant replaces its entry and resets it to newest.
func (s *PlantStore) AddToHistory(plant domain.PlantData) domain.ScannedPlant {
	scanned := domain.ScannedPlant{
		PlantData: plant,
		ScannedAt: s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.history = slices.DeleteFunc(s.history, func(p domain.ScannedPlant) bool {
		return p.ID == plant.ID
	})
	s.history = append([]domain.ScannedPlant{scanned}, s.history...)
	s.mu.Unlock()

	s.persist()
	return scanned
}

// ToggleFavorite flips the favorite status of a plant id and returns the new
// status. The id need not be present in history.
func (s *PlantStore) ToggleFavorite(plantID string) bool {
	s.mu.Lock()
	idx := slices.Index(s.favoriteIDs, plantID)
	favorite := idx < 0
	if favorite {
		s.favoriteIDs = append(s.favoriteIDs, plantID)
	} else {
		s.favoriteIDs = slices.Delete(s.favoriteIDs, idx, idx+1)
	}
	s.mu.Unlock()

	s.persist()
	return favorite
}

// IsFavorite reports whether a plant id is favorited.
func (s *PlantStore) IsFavorite(plantID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favoriteIDs, plantID)
}

// History returns the scan history, newest first.
func (s *PlantStore) History() []domain.ScannedPlant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

// Get returns the history entry for a plant id.
func (s *PlantStore) Get(plantID string) (domain.ScannedPlant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.history {
		if p.ID == plantID {
			return p, true
		}
	}
	return domain.ScannedPlant{}, false
}

// Collection returns history filtered to favorited plants, preserving the
// newest-first order.
func (s *PlantStore) Collection() []domain.ScannedPlant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collection := []domain.ScannedPlant{}
	for _, p := range s.history {
		if slices.Contains(s.favoriteIDs, p.ID) {
			collection = append(collection, p)
		}
	}
	return collection
}

// ClearHistory resets both history and favorites to empty.
func (s *PlantStore) ClearHistory() {
	s.mu.Lock()
	s.history = []domain.ScannedPlant{}
	s.favoriteIDs = []string{}
	s.mu.Unlock()

	s.persist()
}

// persist writes the full state through the persister. Failures are logged,
// never surfaced: an in-memory mutation always succeeds, at worst the most
// recent mutation is lost on restart.
func (s *PlantStore) persist() {
	s.mu.RLock()
	state := &State{
		History:     slices.Clone(s.history),
		FavoriteIDs: slices.Clone(s.favoriteIDs),
	}
	s.mu.RUnlock()

	if err := s.persister.Save(state); err != nil {
		s.logger.Warn("failed to persist plant store state", "error", err)
	}
}

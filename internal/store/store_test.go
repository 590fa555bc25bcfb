package store

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/verdantapp/verdant-server/internal/domain"
)

// memoryPersister records saves for assertions.
type memoryPersister struct {
	mu      sync.Mutex
	state   *State
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryPersister) Load() (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.loadErr
}

func (m *memoryPersister) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state
	m.saves++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*PlantStore, *memoryPersister) {
	t.Helper()
	p := &memoryPersister{}
	return New(p, testLogger()), p
}

func plant(id, name string) domain.PlantData {
	return domain.PlantData{ID: id, ScientificName: name, CommonNames: []string{}}
}

func TestAddToHistory_NewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToHistory(plant("p1", "Ficus elastica"))
	s.AddToHistory(plant("p2", "Monstera deliciosa"))

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].ID != "p2" || history[1].ID != "p1" {
		t.Errorf("history order = [%s %s], want [p2 p1]", history[0].ID, history[1].ID)
	}
}

func TestAddToHistory_StampsScannedAt(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	scanned := s.AddToHistory(plant("p1", "Ficus elastica"))

	if scanned.ScannedAt != "2026-08-31T12:00:00Z" {
		t.Errorf("ScannedAt = %q, want 2026-08-31T12:00:00Z", scanned.ScannedAt)
	}
}

func TestAddToHistory_DedupSameID(t *testing.T) {
	s, _ := newTestStore(t)

	times := []time.Time{
		time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
	}
	i := 0
	s.now = func() time.Time { t := times[i]; i++; return t }

	s.AddToHistory(plant("p1", "Ficus elastica"))
	s.AddToHistory(plant("p2", "Monstera deliciosa"))
	s.AddToHistory(plant("p1", "Ficus elastica"))

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (p1 deduplicated)", len(history))
	}
	if history[0].ID != "p1" {
		t.Errorf("re-scanned plant should move to front, got %s", history[0].ID)
	}
	if history[0].ScannedAt != "2026-08-31T13:00:00Z" {
		t.Errorf("ScannedAt = %q, want the second scan's timestamp", history[0].ScannedAt)
	}
}

func TestToggleFavorite_Symmetry(t *testing.T) {
	s, _ := newTestStore(t)

	if s.IsFavorite("p1") {
		t.Fatal("p1 should not start favorited")
	}
	if !s.ToggleFavorite("p1") {
		t.Error("first toggle should report favorited")
	}
	if !s.IsFavorite("p1") {
		t.Error("p1 should be favorited after one toggle")
	}
	if s.ToggleFavorite("p1") {
		t.Error("second toggle should report unfavorited")
	}
	if s.IsFavorite("p1") {
		t.Error("two toggles should cancel out")
	}
}

func TestToggleFavorite_GhostID(t *testing.T) {
	s, p := newTestStore(t)

	// Favoriting an id with no history entry is allowed and persisted.
	s.ToggleFavorite("not-in-history")

	if !s.IsFavorite("not-in-history") {
		t.Error("ghost id should be favoritable")
	}
	if len(p.state.FavoriteIDs) != 1 {
		t.Errorf("persisted favoriteIds = %v", p.state.FavoriteIDs)
	}
	if len(s.Collection()) != 0 {
		t.Error("ghost favorite must not appear in collection")
	}
}

func TestCollection_FiltersAndPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToHistory(plant("p1", "Ficus elastica"))
	s.AddToHistory(plant("p2", "Monstera deliciosa"))
	s.AddToHistory(plant("p3", "Epipremnum aureum"))
	s.ToggleFavorite("p1")
	s.ToggleFavorite("p3")

	collection := s.Collection()
	if len(collection) != 2 {
		t.Fatalf("collection length = %d, want 2", len(collection))
	}
	if collection[0].ID != "p3" || collection[1].ID != "p1" {
		t.Errorf("collection order = [%s %s], want [p3 p1]", collection[0].ID, collection[1].ID)
	}
}

func TestClearHistory(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToHistory(plant("p1", "Ficus elastica"))
	s.ToggleFavorite("p1")
	s.ClearHistory()

	if len(s.History()) != 0 {
		t.Error("history should be empty after clear")
	}
	if s.IsFavorite("p1") {
		t.Error("favorites should be empty after clear")
	}
}

func TestGet(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToHistory(plant("p1", "Ficus elastica"))

	got, ok := s.Get("p1")
	if !ok || got.ScientificName != "Ficus elastica" {
		t.Errorf("Get(p1) = %+v, %v", got, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get on a missing id should report false")
	}
}

func TestNew_LoadsPriorState(t *testing.T) {
	p := &memoryPersister{state: &State{
		History:     []domain.ScannedPlant{{PlantData: plant("p1", "Ficus elastica"), ScannedAt: "2026-08-30T10:00:00Z"}},
		FavoriteIDs: []string{"p1"},
	}}

	s := New(p, testLogger())

	if len(s.History()) != 1 {
		t.Fatal("prior history should be loaded")
	}
	if !s.IsFavorite("p1") {
		t.Error("prior favorites should be loaded")
	}
}

func TestNew_LoadFailureStartsEmpty(t *testing.T) {
	p := &memoryPersister{loadErr: errors.New("corrupt record")}

	s := New(p, testLogger())

	if len(s.History()) != 0 {
		t.Error("store should start empty when load fails")
	}
}

func TestMutationsPersist(t *testing.T) {
	s, p := newTestStore(t)

	s.AddToHistory(plant("p1", "Ficus elastica"))
	s.ToggleFavorite("p1")
	s.ClearHistory()

	if p.saves != 3 {
		t.Errorf("saves = %d, want one per mutation", p.saves)
	}
	if len(p.state.History) != 0 || len(p.state.FavoriteIDs) != 0 {
		t.Errorf("final persisted state should be empty, got %+v", p.state)
	}
}

func TestPersistFailure_DoesNotFailMutation(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	s := New(p, testLogger())

	s.AddToHistory(plant("p1", "Ficus elastica"))

	if len(s.History()) != 1 {
		t.Error("in-memory mutation should succeed despite persist failure")
	}
}

// Package service contains business logic orchestration between the
// identification client, the plant store, photo storage, and search.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/verdantapp/verdant-server/internal/domain"
	"github.com/verdantapp/verdant-server/internal/media/images"
	"github.com/verdantapp/verdant-server/internal/search"
	"github.com/verdantapp/verdant-server/internal/store"
)

// Identifier is the outbound identification port.
type Identifier interface {
	Identify(ctx context.Context, image []byte) (*domain.PlantData, error)
}

// Indexer keeps the search index in sync with scan history.
type Indexer interface {
	IndexPlant(doc *search.PlantDocument) error
	IndexPlants(docs []*search.PlantDocument) error
	DeletePlant(id string) error
	Rebuild() error
	Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error)
}

// PhotoStore persists captured photos on disk.
type PhotoStore interface {
	Save(id string, imgData []byte) error
	Delete(id string) error
	DeleteAll() error
}

// ScanService runs the scan pipeline: identify, persist the photo, stamp
// history, update search. Identification failures abort the scan; photo and
// index failures degrade the result but never fail it.
type ScanService struct {
	identifier Identifier
	store      *store.PlantStore
	photos     PhotoStore
	index      Indexer
	logger     *slog.Logger
}

// NewScanService creates a ScanService.
func NewScanService(identifier Identifier, plants *store.PlantStore, photos PhotoStore, index Indexer, logger *slog.Logger) *ScanService {
	return &ScanService{
		identifier: identifier,
		store:      plants,
		photos:     photos,
		index:      index,
		logger:     logger,
	}
}

// Scan identifies a captured photo and records the result in history.
func (s *ScanService) Scan(ctx context.Context, image []byte) (domain.ScannedPlant, error) {
	plant, err := s.identifier.Identify(ctx, image)
	if err != nil {
		return domain.ScannedPlant{}, err
	}

	// Keep the original photo so history can show what the user actually
	// captured, not just the service's reference image.
	if err := s.photos.Save(plant.ID, image); err != nil {
		s.logger.Warn("failed to save captured photo", "plant_id", plant.ID, "error", err)
	} else {
		plant.CapturedImageURI = photoURI(plant.ID)
	}

	if hash, err := images.ComputeBlurHash(image); err != nil {
		s.logger.Debug("failed to compute blurhash", "plant_id", plant.ID, "error", err)
	} else {
		plant.BlurHash = hash
	}

	scanned := s.store.AddToHistory(*plant)

	if err := s.index.IndexPlant(search.FromScannedPlant(&scanned)); err != nil {
		s.logger.Warn("failed to index scanned plant", "plant_id", scanned.ID, "error", err)
	}

	return scanned, nil
}

// History returns the scan history, newest first.
func (s *ScanService) History() []domain.ScannedPlant {
	return s.store.History()
}

// Collection returns favorited history entries, newest first.
func (s *ScanService) Collection() []domain.ScannedPlant {
	return s.store.Collection()
}

// Get returns a single history entry.
func (s *ScanService) Get(plantID string) (domain.ScannedPlant, bool) {
	return s.store.Get(plantID)
}

// ToggleFavorite flips a plant's favorite status and returns the new status.
func (s *ScanService) ToggleFavorite(plantID string) bool {
	return s.store.ToggleFavorite(plantID)
}

// IsFavorite reports whether a plant is favorited.
func (s *ScanService) IsFavorite(plantID string) bool {
	return s.store.IsFavorite(plantID)
}

// ClearHistory wipes history, favorites, photos, and the search index.
func (s *ScanService) ClearHistory() {
	s.store.ClearHistory()

	if err := s.photos.DeleteAll(); err != nil {
		s.logger.Warn("failed to delete captured photos", "error", err)
	}
	if err := s.index.Rebuild(); err != nil {
		s.logger.Warn("failed to reset search index", "error", err)
	}
}

// Search queries the scan history index.
func (s *ScanService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	return s.index.Search(ctx, params)
}

// ReindexHistory rebuilds the search index from the full history. Called at
// startup so a fresh or rebuilt index catches up with the store.
func (s *ScanService) ReindexHistory() error {
	history := s.store.History()
	docs := make([]*search.PlantDocument, 0, len(history))
	for i := range history {
		docs = append(docs, search.FromScannedPlant(&history[i]))
	}

	if err := s.index.IndexPlants(docs); err != nil {
		return fmt.Errorf("reindex history: %w", err)
	}

	s.logger.Info("reindexed scan history", "count", len(docs))
	return nil
}

// photoURI is the URL path a client uses to fetch a captured photo.
func photoURI(plantID string) string {
	return "/photos/" + plantID + ".jpg"
}

package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/verdantapp/verdant-server/internal/domain"
	apperrors "github.com/verdantapp/verdant-server/internal/errors"
	"github.com/verdantapp/verdant-server/internal/search"
	"github.com/verdantapp/verdant-server/internal/store"
)

type fakeIdentifier struct {
	plant *domain.PlantData
	err   error
	calls int
}

func (f *fakeIdentifier) Identify(_ context.Context, _ []byte) (*domain.PlantData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p := *f.plant
	return &p, nil
}

type fakePhotos struct {
	saved   map[string][]byte
	saveErr error
	cleared bool
}

func (f *fakePhotos) Save(id string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[id] = data
	return nil
}

func (f *fakePhotos) Delete(string) error { return nil }
func (f *fakePhotos) DeleteAll() error    { f.cleared = true; return nil }

type fakeIndex struct {
	indexed []string
	rebuilt bool
	batches int
}

func (f *fakeIndex) IndexPlant(doc *search.PlantDocument) error {
	f.indexed = append(f.indexed, doc.ID)
	return nil
}

func (f *fakeIndex) IndexPlants(docs []*search.PlantDocument) error {
	f.batches++
	for _, d := range docs {
		f.indexed = append(f.indexed, d.ID)
	}
	return nil
}

func (f *fakeIndex) DeletePlant(string) error { return nil }
func (f *fakeIndex) Rebuild() error           { f.rebuilt = true; return nil }

func (f *fakeIndex) Search(context.Context, search.SearchParams) (*search.SearchResult, error) {
	return &search.SearchResult{}, nil
}

type nullPersister struct{}

func (nullPersister) Load() (*store.State, error) { return nil, nil }
func (nullPersister) Save(*store.State) error     { return nil }

func testPlant() *domain.PlantData {
	return &domain.PlantData{
		ID:             "p1",
		ScientificName: "Ficus elastica",
		CommonNames:    []string{"Rubber Plant"},
		Probability:    0.92,
	}
}

func newTestService(identifier Identifier, photos PhotoStore, index Indexer) *ScanService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	plants := store.New(nullPersister{}, logger)
	return NewScanService(identifier, plants, photos, index, logger)
}

func TestScan_FullPipeline(t *testing.T) {
	identifier := &fakeIdentifier{plant: testPlant()}
	photos := &fakePhotos{}
	index := &fakeIndex{}
	svc := newTestService(identifier, photos, index)

	scanned, err := svc.Scan(context.Background(), []byte("photo-bytes"))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if scanned.ID != "p1" {
		t.Errorf("ID = %q", scanned.ID)
	}
	if scanned.ScannedAt == "" {
		t.Error("ScannedAt should be stamped")
	}
	if scanned.CapturedImageURI != "/photos/p1.jpg" {
		t.Errorf("CapturedImageURI = %q", scanned.CapturedImageURI)
	}
	if _, ok := photos.saved["p1"]; !ok {
		t.Error("photo should be saved under the plant id")
	}
	if len(index.indexed) != 1 || index.indexed[0] != "p1" {
		t.Errorf("indexed = %v", index.indexed)
	}
	if len(svc.History()) != 1 {
		t.Error("scan should land in history")
	}
}

func TestScan_IdentificationFailureAborts(t *testing.T) {
	identifier := &fakeIdentifier{err: apperrors.NoCredits("out of identification credits")}
	photos := &fakePhotos{}
	index := &fakeIndex{}
	svc := newTestService(identifier, photos, index)

	_, err := svc.Scan(context.Background(), []byte("photo"))
	if !apperrors.Is(err, apperrors.ErrNoCredits) {
		t.Fatalf("expected NO_CREDITS, got %v", err)
	}

	if len(photos.saved) != 0 {
		t.Error("no photo should be saved on identification failure")
	}
	if len(svc.History()) != 0 {
		t.Error("failed scans must not land in history")
	}
}

func TestScan_PhotoFailureDegrades(t *testing.T) {
	identifier := &fakeIdentifier{plant: testPlant()}
	photos := &fakePhotos{saveErr: errors.New("disk full")}
	index := &fakeIndex{}
	svc := newTestService(identifier, photos, index)

	scanned, err := svc.Scan(context.Background(), []byte("photo"))
	if err != nil {
		t.Fatalf("photo failure should not fail the scan: %v", err)
	}
	if scanned.CapturedImageURI != "" {
		t.Errorf("CapturedImageURI should stay empty, got %q", scanned.CapturedImageURI)
	}
	if len(svc.History()) != 1 {
		t.Error("scan should still land in history")
	}
}

func TestClearHistory_WipesEverything(t *testing.T) {
	identifier := &fakeIdentifier{plant: testPlant()}
	photos := &fakePhotos{}
	index := &fakeIndex{}
	svc := newTestService(identifier, photos, index)

	if _, err := svc.Scan(context.Background(), []byte("photo")); err != nil {
		t.Fatal(err)
	}
	svc.ToggleFavorite("p1")
	svc.ClearHistory()

	if len(svc.History()) != 0 {
		t.Error("history should be empty")
	}
	if svc.IsFavorite("p1") {
		t.Error("favorites should be cleared")
	}
	if !photos.cleared {
		t.Error("photos should be deleted")
	}
	if !index.rebuilt {
		t.Error("search index should be reset")
	}
}

func TestReindexHistory(t *testing.T) {
	identifier := &fakeIdentifier{plant: testPlant()}
	photos := &fakePhotos{}
	index := &fakeIndex{}
	svc := newTestService(identifier, photos, index)

	if _, err := svc.Scan(context.Background(), []byte("photo")); err != nil {
		t.Fatal(err)
	}
	index.indexed = nil

	if err := svc.ReindexHistory(); err != nil {
		t.Fatalf("reindex failed: %v", err)
	}
	if index.batches != 1 || len(index.indexed) != 1 {
		t.Errorf("batches=%d indexed=%v", index.batches, index.indexed)
	}
}

func TestToggleFavorite_Passthrough(t *testing.T) {
	svc := newTestService(&fakeIdentifier{plant: testPlant()}, &fakePhotos{}, &fakeIndex{})

	if !svc.ToggleFavorite("p9") {
		t.Error("first toggle should favorite")
	}
	if !svc.IsFavorite("p9") {
		t.Error("p9 should be favorited")
	}
	if svc.ToggleFavorite("p9") {
		t.Error("second toggle should unfavorite")
	}
}

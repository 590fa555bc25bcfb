package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json/v2"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdantapp/verdant-server/internal/media/images"
	"github.com/verdantapp/verdant-server/internal/plantid"
	"github.com/verdantapp/verdant-server/internal/search"
	"github.com/verdantapp/verdant-server/internal/service"
	"github.com/verdantapp/verdant-server/internal/store"
)

// identificationFixture is a minimal COMPLETED response from the
// identification service.
const identificationFixture = `{
  "status": "COMPLETED",
  "result": {
    "is_plant": {"binary": true, "probability": 0.99},
    "classification": {
      "suggestions": [{
        "id": "p1",
        "name": "Ficus elastica",
        "probability": 0.92,
        "details": {
          "common_names": ["Rubber Plant"],
          "taxonomy": {"order": "Rosales", "family": "Moraceae", "genus": "Ficus"},
          "url": "https://en.wikipedia.org/wiki/Ficus_elastica",
          "watering": {"min": 7, "max": 14}
        }
      }]
    }
  }
}`

type nullPersister struct{}

func (nullPersister) Load() (*store.State, error) { return nil, nil }
func (nullPersister) Save(*store.State) error     { return nil }

// setupTestServer creates a test server backed by a stub identification
// service. apiKey lets tests exercise the missing-key path.
func setupTestServer(t *testing.T, apiKey string, upstream http.HandlerFunc) *Server {
	t.Helper()

	tmpDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	client := plantid.New(plantid.Config{
		APIKey:            apiKey,
		BaseURL:           upstreamServer.URL,
		RequestsPerSecond: 100,
	}, logger)
	t.Cleanup(client.Close)

	plants := store.New(nullPersister{}, logger)

	photos, err := images.NewStorage(tmpDir)
	require.NoError(t, err)

	index, err := search.NewSearchIndex(search.Options{DataPath: tmpDir, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { index.Close() })

	scanService := service.NewScanService(client, plants, photos, index, logger)

	return NewServer(scanService, photos, "Test Server", logger)
}

func fixtureUpstream(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(identificationFixture))
}

// testPhotoBase64 returns a small real JPEG, base64 encoded.
func testPhotoBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 180, B: 70, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func doRequest(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func identifyBody(t *testing.T) string {
	t.Helper()
	return `{"image":"` + testPhotoBase64(t) + `"}`
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

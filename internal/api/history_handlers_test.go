package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHistory_EmptyByDefault(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list PlantListResponse
	decodeJSON(t, rec, &list)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Plants)
}

func TestClearHistory(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/identifications", identifyBody(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodDelete, "/api/v1/history", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/history", "")
	var list PlantListResponse
	decodeJSON(t, rec, &list)
	assert.Equal(t, 0, list.Total)

	// The captured photo is gone too.
	rec = doRequest(t, server, http.MethodGet, "/photos/p1.jpg", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCollection_TracksFavorites(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/identifications", identifyBody(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Nothing favorited yet.
	rec = doRequest(t, server, http.MethodGet, "/api/v1/collection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list PlantListResponse
	decodeJSON(t, rec, &list)
	assert.Equal(t, 0, list.Total)

	rec = doRequest(t, server, http.MethodPut, "/api/v1/plants/p1/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/collection", "")
	decodeJSON(t, rec, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "p1", list.Plants[0].ID)
}

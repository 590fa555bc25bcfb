package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FindsScannedPlant(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/identifications", identifyBody(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/v1/search?q=ficus", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SearchResponse
	decodeJSON(t, rec, &resp)
	require.NotZero(t, resp.Total)
	assert.Equal(t, "p1", resp.Hits[0].ID)
	assert.Equal(t, "Ficus elastica", resp.Hits[0].ScientificName)
}

func TestSearch_NoMatches(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/search?q=orchid", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	decodeJSON(t, rec, &resp)
	assert.Zero(t, resp.Total)
}

func TestGetPhoto_NotFound(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	rec := doRequest(t, server, http.MethodGet, "/photos/missing.jpg", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/photos/notajpg.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

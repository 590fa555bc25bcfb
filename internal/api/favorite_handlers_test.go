package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavorite_RoundTrip(t *testing.T) {
	server := setupTestServer(t, "test-key", fixtureUpstream)

	var status FavoriteResponse

	rec := doRequest(t, server, http.MethodGet, "/api/v1/plants/p1/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &status)
	assert.False(t, status.Favorite)

	rec = doRequest(t, server, http.MethodPut, "/api/v1/plants/p1/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &status)
	assert.Equal(t, "p1", status.ID)
	assert.True(t, status.Favorite)

	rec = doRequest(t, server, http.MethodPut, "/api/v1/plants/p1/favorite", "")
	decodeJSON(t, rec, &status)
	assert.False(t, status.Favorite, "two toggles cancel out")
}

// Package plantid is a client for the plant.id identification API. It
// submits captured photos, maps service failures to domain errors, and
// normalizes the top suggestion into a PlantData.
package plantid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/verdantapp/verdant-server/internal/domain"
	"github.com/verdantapp/verdant-server/internal/errors"
	"github.com/verdantapp/verdant-server/internal/ratelimit"
)

const (
	defaultBaseURL = "https://plant.id/api/v3"

	// Rate limit: 1 request per second, burst of 3
	defaultRPS   = 1.0
	defaultBurst = 3

	// limiterKey is the single key used for outbound throttling.
	limiterKey = "plantid"

	statusCompleted = "COMPLETED"
)

// detailsParams lists the suggestion detail fields requested from the service.
const detailsParams = "common_names,url,description,taxonomy,rank,image,synonyms,watering,edible_parts,propagation_methods"

// Config holds client settings.
type Config struct {
	// APIKey may be empty; Identify then fails with UNAUTHORIZED before
	// any network call.
	APIKey string
	// BaseURL overrides the plant.id endpoint. Empty means production.
	BaseURL string
	// RequestsPerSecond caps outbound calls. Zero or negative means the default.
	RequestsPerSecond float64
}

// Client is a rate-limited plant.id API client.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// New creates a new identification client.
//
// The underlying HTTP client carries no timeout: identification of a large
// photo can legitimately take tens of seconds, and cancellation is governed
// by the caller's context instead.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}

	return &Client{
		http:    &http.Client{},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		limiter: ratelimit.New(rps, defaultBurst),
		logger:  logger,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// identifyRequest is the JSON body submitted to the service.
type identifyRequest struct {
	Images        []string `json:"images"`
	SimilarImages bool     `json:"similar_images"`
}

// Identify submits a single photo for identification and returns the
// normalized top suggestion. Exactly one outbound request is made per call
// and no retries are performed.
//
// CapturedImageURI on the returned PlantData is left empty; the caller fills
// it in once the photo has a local home.
func (c *Client) Identify(ctx context.Context, image []byte) (*domain.PlantData, error) {
	if c.apiKey == "" {
		return nil, wrapError("identify", errors.Unauthorized("API key not configured"))
	}
	if len(image) == 0 {
		return nil, wrapError("identify", errors.InvalidInput("empty image"))
	}

	// Wait for rate limit
	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return nil, wrapError("identify", fmt.Errorf("rate limit wait: %w", err))
	}

	reqBody, err := json.Marshal(identifyRequest{
		Images:        []string{"data:image/jpg;base64," + base64.StdEncoding.EncodeToString(image)},
		SimilarImages: true,
	})
	if err != nil {
		return nil, wrapError("identify", fmt.Errorf("encode request: %w", err))
	}

	u := c.baseURL + "/identification?details=" + detailsParams + "&language=en"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return nil, wrapError("identify", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	c.logger.Debug("identification request", "bytes", len(image))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError("identify", errors.NetworkError("identification request failed").WithCause(err))
	}
	defer resp.Body.Close()

	// Non-success status: map and bail without touching the body.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, wrapError("identify", statusError(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError("identify", errors.NetworkError("read identification response").WithCause(err))
	}

	var ident rawIdentification
	if err := json.Unmarshal(body, &ident); err != nil {
		return nil, wrapError("identify", errors.ServerError("malformed identification response").WithCause(err))
	}

	if ident.Status != statusCompleted {
		return nil, wrapError("identify", errors.ServerError(fmt.Sprintf("identification not completed: %s", ident.Status)))
	}
	if !ident.Result.IsPlant.Binary {
		return nil, wrapError("identify", errors.InvalidInput("no plant detected in image"))
	}
	suggestions := ident.Result.Classification.Suggestions
	if len(suggestions) == 0 {
		return nil, wrapError("identify", errors.InvalidInput("could not identify plant"))
	}

	plant := normalizeSuggestion(&suggestions[0])

	c.logger.Debug("identification complete",
		"plant_id", plant.ID,
		"scientific_name", plant.ScientificName,
		"probability", plant.Probability,
	)

	return plant, nil
}

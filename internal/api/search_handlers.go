package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/verdantapp/verdant-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search scan history",
		Description: "Full-text search over scanned plants by scientific name, common names, and description",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for searching scan history.
type SearchInput struct {
	Query  string `query:"q" minLength:"1" maxLength:"200" doc:"Search query"`
	Family string `query:"family" maxLength:"100" doc:"Filter by exact botanical family"`
	Genus  string `query:"genus" maxLength:"100" doc:"Filter by exact botanical genus"`
	Limit  int    `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Max results"`
	Offset int    `query:"offset" minimum:"0" default:"0" doc:"Pagination offset"`
}

// SearchHitResult contains a single matching plant.
type SearchHitResult struct {
	ID             string            `json:"id" doc:"Plant id"`
	Score          float64           `json:"score" doc:"Search relevance score"`
	ScientificName string            `json:"scientificName" doc:"Latin binomial"`
	CommonNames    string            `json:"commonNames,omitempty" doc:"Common names, space separated"`
	Family         string            `json:"family,omitempty" doc:"Botanical family"`
	Genus          string            `json:"genus,omitempty" doc:"Botanical genus"`
	Highlights     map[string]string `json:"highlights,omitempty" doc:"Highlighted matches"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Query  string            `json:"query" doc:"Original search query"`
	Total  uint64            `json:"total" doc:"Total matches"`
	TookMs int64             `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResult `json:"hits" doc:"Search results"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	s.logger.Debug("search request received",
		"query", input.Query,
		"limit", input.Limit,
	)

	result, err := s.scanService.Search(ctx, search.SearchParams{
		Query:  input.Query,
		Family: input.Family,
		Genus:  input.Genus,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		s.logger.Error("search failed", "error", err, "query", input.Query)
		return nil, huma.Error500InternalServerError("search failed")
	}

	resp := SearchResponse{
		Query:  result.Query,
		Total:  result.Total,
		TookMs: result.TookMs,
		Hits:   make([]SearchHitResult, 0, len(result.Hits)),
	}
	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, SearchHitResult{
			ID:             hit.ID,
			Score:          hit.Score,
			ScientificName: hit.ScientificName,
			CommonNames:    hit.CommonNames,
			Family:         hit.Family,
			Genus:          hit.Genus,
			Highlights:     hit.Highlights,
		})
	}

	return &SearchOutput{Body: resp}, nil
}

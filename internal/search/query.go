package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// SearchParams configures a search query.
type SearchParams struct {
	Query string // User's search query

	// Filters (exact match, lowercase)
	Family string
	Genus  string

	// Pagination
	Limit  int
	Offset int
}

// DefaultSearchParams returns sensible defaults.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Limit:  20,
		Offset: 0,
	}
}

// SearchResult represents the search results.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"took_ms"`
	Hits   []SearchHit `json:"hits"`
}

// SearchHit represents a single matching plant.
type SearchHit struct {
	ID             string            `json:"id"`
	Score          float64           `json:"score"`
	ScientificName string            `json:"scientific_name"`
	CommonNames    string            `json:"common_names,omitempty"`
	Family         string            `json:"family,omitempty"`
	Genus          string            `json:"genus,omitempty"`
	Highlights     map[string]string `json:"highlights,omitempty"`
}

// Search executes a search query against the scan history index.
func (s *SearchIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = DefaultSearchParams().Limit
	}

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	searchRequest.Highlight = bleve.NewHighlight()
	searchRequest.Highlight.AddField("scientific_name")
	searchRequest.Highlight.AddField("common_names")

	searchRequest.Fields = []string{
		"id", "scientific_name", "common_names", "family", "genus",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &SearchResult{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]SearchHit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := SearchHit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if n, ok := hit.Fields["scientific_name"].(string); ok {
			searchHit.ScientificName = n
		}
		if cn, ok := hit.Fields["common_names"].(string); ok {
			searchHit.CommonNames = cn
		}
		if f, ok := hit.Fields["family"].(string); ok {
			searchHit.Family = f
		}
		if g, ok := hit.Fields["genus"].(string); ok {
			searchHit.Genus = g
		}

		if len(hit.Fragments) > 0 {
			searchHit.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					searchHit.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, searchHit)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params SearchParams) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		// Scientific name match with highest boost
		sciMatch := bleve.NewMatchQuery(params.Query)
		sciMatch.SetField("scientific_name")
		sciMatch.SetBoost(3.0)
		textQueries = append(textQueries, sciMatch)

		// Common name match
		commonMatch := bleve.NewMatchQuery(params.Query)
		commonMatch.SetField("common_names")
		commonMatch.SetBoost(2.0)
		textQueries = append(textQueries, commonMatch)

		// Description match, low weight
		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		descMatch.SetBoost(0.5)
		textQueries = append(textQueries, descMatch)

		// Fuzzy matching for typo tolerance on the scientific name
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("scientific_name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("scientific_name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.Family != "" {
		fq := bleve.NewTermQuery(strings.ToLower(params.Family))
		fq.SetField("family")
		queries = append(queries, fq)
	}
	if params.Genus != "" {
		gq := bleve.NewTermQuery(strings.ToLower(params.Genus))
		gq.SetField("genus")
		queries = append(queries, gq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	return bleve.NewConjunctionQuery(queries...)
}

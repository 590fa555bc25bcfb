package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "List scan history",
		Description: "Returns all scanned plants, newest first",
		Tags:        []string{"History"},
	}, s.handleListHistory)

	huma.Register(s.api, huma.Operation{
		OperationID:   "clear-history",
		Method:        http.MethodDelete,
		Path:          "/api/v1/history",
		Summary:       "Clear scan history",
		Description:   "Removes all scans, favorites, captured photos, and search data",
		Tags:          []string{"History"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleClearHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-collection",
		Method:      http.MethodGet,
		Path:        "/api/v1/collection",
		Summary:     "List favorited plants",
		Description: "Returns favorited scans in history order, newest first",
		Tags:        []string{"History"},
	}, s.handleListCollection)
}

// === DTOs ===

// PlantListResponse holds a list of scanned plants.
type PlantListResponse struct {
	Plants []PlantResult `json:"plants" doc:"Scanned plants, newest first"`
	Total  int           `json:"total" doc:"Number of plants returned"`
}

// PlantListOutput wraps a plant list for Huma.
type PlantListOutput struct {
	Body PlantListResponse
}

// ClearHistoryOutput is the empty clear-history response.
type ClearHistoryOutput struct{}

// === Handlers ===

func (s *Server) handleListHistory(_ context.Context, _ *struct{}) (*PlantListOutput, error) {
	plants := toPlantResults(s.scanService.History())
	return &PlantListOutput{Body: PlantListResponse{Plants: plants, Total: len(plants)}}, nil
}

func (s *Server) handleClearHistory(_ context.Context, _ *struct{}) (*ClearHistoryOutput, error) {
	s.scanService.ClearHistory()
	s.logger.Info("scan history cleared")
	return &ClearHistoryOutput{}, nil
}

func (s *Server) handleListCollection(_ context.Context, _ *struct{}) (*PlantListOutput, error) {
	plants := toPlantResults(s.scanService.Collection())
	return &PlantListOutput{Body: PlantListResponse{Plants: plants, Total: len(plants)}}, nil
}

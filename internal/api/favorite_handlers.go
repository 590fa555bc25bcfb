package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerFavoriteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "toggle-favorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/plants/{id}/favorite",
		Summary:     "Toggle favorite",
		Description: "Flips the favorite status of a plant id and returns the new status. The id need not be in history.",
		Tags:        []string{"Favorites"},
	}, s.handleToggleFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-favorite",
		Method:      http.MethodGet,
		Path:        "/api/v1/plants/{id}/favorite",
		Summary:     "Get favorite status",
		Tags:        []string{"Favorites"},
	}, s.handleGetFavorite)
}

// === DTOs ===

// FavoriteInput identifies the plant to query or toggle.
type FavoriteInput struct {
	ID string `path:"id" maxLength:"128" doc:"Plant id"`
}

// FavoriteResponse reports a plant's favorite status.
type FavoriteResponse struct {
	ID       string `json:"id" doc:"Plant id"`
	Favorite bool   `json:"favorite" doc:"Whether the plant is favorited"`
}

// FavoriteOutput wraps the favorite status for Huma.
type FavoriteOutput struct {
	Body FavoriteResponse
}

// === Handlers ===

func (s *Server) handleToggleFavorite(_ context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
	favorite := s.scanService.ToggleFavorite(input.ID)
	return &FavoriteOutput{Body: FavoriteResponse{ID: input.ID, Favorite: favorite}}, nil
}

func (s *Server) handleGetFavorite(_ context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
	return &FavoriteOutput{Body: FavoriteResponse{ID: input.ID, Favorite: s.scanService.IsFavorite(input.ID)}}, nil
}

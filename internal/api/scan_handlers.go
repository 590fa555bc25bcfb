package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/verdantapp/verdant-server/internal/errors"
)

func (s *Server) registerScanRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "identify-plant",
		Method:        http.MethodPost,
		Path:          "/api/v1/identifications",
		Summary:       "Identify a plant",
		Description:   "Submits a captured photo to the identification service and records the result in scan history",
		Tags:          []string{"Identification"},
		DefaultStatus: http.StatusCreated,
	}, s.handleIdentify)
}

// === DTOs ===

// IdentifyRequest carries the captured photo.
type IdentifyRequest struct {
	Image string `json:"image" validate:"required" doc:"Captured photo as base64, optionally a data URI"`
}

// IdentifyInput wraps the identify request body for Huma.
type IdentifyInput struct {
	Body IdentifyRequest
}

// IdentifyOutput wraps the scan result for Huma.
type IdentifyOutput struct {
	Body PlantResult
}

// === Handlers ===

func (s *Server) handleIdentify(ctx context.Context, input *IdentifyInput) (*IdentifyOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid request", err)
	}

	image, err := decodeImage(input.Body.Image)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid image", err)
	}

	scanned, err := s.scanService.Scan(ctx, image)
	if err != nil {
		s.logger.Warn("identification failed", "error", err)
		return nil, huma.Error502BadGateway("identification failed", err)
	}

	return &IdentifyOutput{Body: toPlantResult(&scanned)}, nil
}

// decodeImage accepts plain base64 or a full data URI.
func decodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		_, encoded, found := strings.Cut(s, ",")
		if !found {
			return nil, errors.InvalidInput("malformed data URI")
		}
		s = encoded
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.InvalidInput("image is not valid base64").WithCause(err)
	}
	if len(data) == 0 {
		return nil, errors.InvalidInput("image is empty")
	}
	return data, nil
}

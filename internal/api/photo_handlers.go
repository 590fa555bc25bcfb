package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/verdantapp/verdant-server/internal/http/response"
)

// handleGetPhoto serves a captured plant photo.
// Photos are immutable once written, so the SHA256 ETag allows clients to
// cache them indefinitely.
func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	id, ok := strings.CutSuffix(name, ".jpg")
	if !ok || id == "" || strings.ContainsAny(id, "/\\.") {
		response.NotFound(w, "photo not found", s.logger)
		return
	}

	data, err := s.photos.Get(id)
	if err != nil {
		response.NotFound(w, "photo not found", s.logger)
		return
	}

	if etag, err := s.photos.Hash(id); err == nil {
		w.Header().Set("ETag", `"`+etag+`"`)
		if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("failed to write photo response", "error", err)
	}
}

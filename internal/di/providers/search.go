package providers

import (
	"github.com/samber/do/v2"

	"github.com/verdantapp/verdant-server/internal/config"
	"github.com/verdantapp/verdant-server/internal/logger"
	"github.com/verdantapp/verdant-server/internal/search"
	"github.com/verdantapp/verdant-server/internal/service"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.SearchIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewSearchIndex(search.Options{
		DataPath: cfg.Data.BasePath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{SearchIndex: index}, nil
}

// TriggerReindexIfNeeded rebuilds the search index from scan history when the
// index is empty but history is not. Should be called after all services are wired.
func TriggerReindexIfNeeded(i do.Injector) {
	scanService := do.MustInvoke[*service.ScanService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	docCount, _ := indexHandle.DocumentCount()
	if docCount > 0 {
		return
	}

	history := scanService.History()
	if len(history) == 0 {
		return
	}

	log.Info("Search index is empty but history exists, triggering initial reindex",
		"plant_count", len(history),
	)

	go func() {
		if err := scanService.ReindexHistory(); err != nil {
			log.Error("Initial search reindex failed", "error", err)
		} else {
			count, _ := indexHandle.DocumentCount()
			log.Info("Initial search reindex completed", "documents", count)
		}
	}()
}

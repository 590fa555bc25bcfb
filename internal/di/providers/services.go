package providers

import (
	"github.com/samber/do/v2"

	"github.com/verdantapp/verdant-server/internal/logger"
	"github.com/verdantapp/verdant-server/internal/media/images"
	"github.com/verdantapp/verdant-server/internal/service"
	"github.com/verdantapp/verdant-server/internal/store"
)

// ProvideScanService provides the plant scan service.
func ProvideScanService(i do.Injector) (*service.ScanService, error) {
	clientHandle := do.MustInvoke[*PlantIDClientHandle](i)
	plants := do.MustInvoke[*store.PlantStore](i)
	photos := do.MustInvoke[*images.Storage](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewScanService(clientHandle.Client, plants, photos, indexHandle.SearchIndex, log.Logger), nil
}

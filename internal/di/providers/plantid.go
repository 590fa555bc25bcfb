package providers

import (
	"github.com/samber/do/v2"

	"github.com/verdantapp/verdant-server/internal/config"
	"github.com/verdantapp/verdant-server/internal/logger"
	"github.com/verdantapp/verdant-server/internal/plantid"
)

// PlantIDClientHandle wraps the identification client with shutdown capability.
type PlantIDClientHandle struct {
	*plantid.Client
}

// Shutdown implements do.Shutdownable.
func (h *PlantIDClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvidePlantIDClient provides the plant identification client.
func ProvidePlantIDClient(i do.Injector) (*PlantIDClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := plantid.New(plantid.Config{
		APIKey:            cfg.PlantID.APIKey,
		BaseURL:           cfg.PlantID.BaseURL,
		RequestsPerSecond: cfg.PlantID.RequestsPerSecond,
	}, log.Logger)

	if cfg.PlantID.APIKey == "" {
		log.Warn("No identification API key configured, scans will be rejected")
	}

	return &PlantIDClientHandle{Client: client}, nil
}

package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/verdantapp/verdant-server/internal/config"
	"github.com/verdantapp/verdant-server/internal/logger"
	"github.com/verdantapp/verdant-server/internal/store"
)

// PersisterHandle wraps the Badger persister with shutdown capability.
type PersisterHandle struct {
	*store.BadgerPersister
}

// Shutdown implements do.Shutdownable.
func (h *PersisterHandle) Shutdown() error {
	return h.Close()
}

// ProvidePersister provides the Badger-backed persister.
func ProvidePersister(i do.Injector) (*PersisterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	persister, err := store.NewBadgerPersister(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &PersisterHandle{BadgerPersister: persister}, nil
}

// ProvidePlantStore provides the in-memory plant store loaded from the persister.
func ProvidePlantStore(i do.Injector) (*store.PlantStore, error) {
	persisterHandle := do.MustInvoke[*PersisterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	plants := store.New(persisterHandle.BadgerPersister, log.Logger)

	log.Info("Plant store loaded", "history", len(plants.History()))

	return plants, nil
}

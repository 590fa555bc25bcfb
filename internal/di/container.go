// Package di provides dependency injection configuration for the Verdant server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/verdantapp/verdant-server/internal/config"
	"github.com/verdantapp/verdant-server/internal/di/providers"
	"github.com/verdantapp/verdant-server/internal/logger"
	"github.com/verdantapp/verdant-server/internal/media/images"
	"github.com/verdantapp/verdant-server/internal/service"
	"github.com/verdantapp/verdant-server/internal/store"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvidePersister)
	do.Provide(injector, providers.ProvidePlantStore)
	do.Provide(injector, providers.ProvidePhotoStorage)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Identification layer
	do.Provide(injector, providers.ProvidePlantIDClient)

	// Business services
	do.Provide(injector, providers.ProvideScanService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)
	do.Provide(injector, providers.ProvideMDNSService)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.PersisterHandle](injector)
	_ = do.MustInvoke[*store.PlantStore](injector)
	_ = do.MustInvoke[*images.Storage](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*providers.PlantIDClientHandle](injector)
	_ = do.MustInvoke[*service.ScanService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)
	_ = do.MustInvoke[*providers.MDNSServiceHandle](injector)

	// Rebuild the search index from history if it is empty
	providers.TriggerReindexIfNeeded(injector)

	return nil
}

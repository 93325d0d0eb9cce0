package bootstrap

import (
	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/service"
)

type Services struct {
	databaseService      *service.DatabaseService
	configStoreService   *service.ConfigStoreService
	identityStoreService *service.IdentityStoreService
	seedService          *service.SeedService
}

func (app *BootstrapApp) initServices(model idsconfig.Configuration) (Services, error) {
	services := Services{}

	databaseService := service.NewDatabaseService(service.DatabaseServiceConfig{
		DatabasePath: app.config.DatabasePath,
	})

	err := databaseService.Init()

	if err != nil {
		return Services{}, err
	}

	services.databaseService = databaseService

	services.configStoreService = service.NewConfigStoreService(databaseService.GetDatabase())
	services.identityStoreService = service.NewIdentityStoreService(databaseService.GetDatabase())
	services.seedService = service.NewSeedService(services.configStoreService, services.identityStoreService, model)

	return services, nil
}

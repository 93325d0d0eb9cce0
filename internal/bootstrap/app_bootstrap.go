package bootstrap

import (
	"context"
	"fmt"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/config"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"

	"github.com/rs/zerolog/log"
)

type BootstrapApp struct {
	config   config.Config
	services Services
}

func NewBootstrapApp(config config.Config) *BootstrapApp {
	return &BootstrapApp{
		config: config,
	}
}

// Setup brings the process from configuration to a serving state: validate
// the declarative model, open and migrate the database, seed the stores,
// then start the HTTP server. Everything before serving is fatal on error.
func (app *BootstrapApp) Setup() error {
	// Declarative model
	model := idsconfig.Default()

	log.Info().Msg("Validating identity configuration")

	if err := idsconfig.Validate(model); err != nil {
		return err
	}

	// Services
	services, err := app.initServices(model)

	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	app.services = services

	// Seed the stores before accepting any request
	log.Info().Msg("Reconciling stores with identity configuration")

	if err := services.seedService.Reconcile(context.Background()); err != nil {
		return err
	}

	// Setup router
	router, err := app.setupRouter()

	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	// Start server
	address := fmt.Sprintf("%s:%d", app.config.Address, app.config.Port)
	log.Info().Msgf("Starting server on %s", address)
	if err := router.Run(address); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

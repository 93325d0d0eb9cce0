package bootstrap

import (
	"github.com/MayurKasidariya/IdentityServerDemo/internal/controller"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (app *BootstrapApp) setupRouter() (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.NewZerologMiddleware().Middleware())

	group := router.Group("/api")

	healthController := controller.NewHealthController(group)
	healthController.SetupRoutes()

	configController := controller.NewConfigController(group, app.services.configStoreService)
	configController.SetupRoutes()

	return router, nil
}

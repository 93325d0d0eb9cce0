package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController answers liveness probes. It only comes up after seeding,
// so a healthy response also means the stores are populated.
type HealthController struct {
	router *gin.RouterGroup
}

func NewHealthController(router *gin.RouterGroup) *HealthController {
	return &HealthController{
		router: router,
	}
}

func (controller *HealthController) SetupRoutes() {
	controller.router.GET("/health", controller.healthHandler)
	controller.router.HEAD("/health", controller.healthHandler)
}

func (controller *HealthController) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Healthy",
	})
}

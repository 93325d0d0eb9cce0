package controller

import (
	"net/http"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ConfigController exposes read-only views of the seeded configuration. It
// reads from the store, not from the in-memory model, so it reflects what
// the authorization engine will actually use. Secret hashes never leave the
// store through this surface.
type ConfigController struct {
	router      *gin.RouterGroup
	configStore *service.ConfigStoreService
}

type clientResponse struct {
	ClientID               string   `json:"clientId"`
	ClientName             string   `json:"clientName,omitempty"`
	GrantType              string   `json:"grantType"`
	RedirectURIs           []string `json:"redirectUris,omitempty"`
	PostLogoutRedirectURIs []string `json:"postLogoutRedirectUris,omitempty"`
	AllowedScopes          []string `json:"allowedScopes"`
	AllowOfflineAccess     bool     `json:"allowOfflineAccess"`
	RequireConsent         bool     `json:"requireConsent"`
	RequirePKCE            bool     `json:"requirePkce"`
}

type identityResourceResponse struct {
	Name       string   `json:"name"`
	UserClaims []string `json:"userClaims"`
}

type apiResourceResponse struct {
	Name       string   `json:"name"`
	Scopes     []string `json:"scopes"`
	UserClaims []string `json:"userClaims"`
}

func NewConfigController(router *gin.RouterGroup, configStore *service.ConfigStoreService) *ConfigController {
	return &ConfigController{
		router:      router,
		configStore: configStore,
	}
}

func (controller *ConfigController) SetupRoutes() {
	controller.router.GET("/config/clients", controller.clientsHandler)
	controller.router.GET("/config/identity-resources", controller.identityResourcesHandler)
	controller.router.GET("/config/api-scopes", controller.apiScopesHandler)
	controller.router.GET("/config/api-resources", controller.apiResourcesHandler)
}

func (controller *ConfigController) clientsHandler(c *gin.Context) {
	clients, err := controller.configStore.ListClients(c.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to list clients")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	response := make([]clientResponse, 0, len(clients))

	for _, client := range clients {
		response = append(response, clientResponse{
			ClientID:               client.ClientID,
			ClientName:             client.ClientName,
			GrantType:              client.GrantType,
			RedirectURIs:           client.RedirectURIs,
			PostLogoutRedirectURIs: client.PostLogoutRedirectURIs,
			AllowedScopes:          client.AllowedScopes,
			AllowOfflineAccess:     client.AllowOfflineAccess,
			RequireConsent:         client.RequireConsent,
			RequirePKCE:            client.RequirePKCE,
		})
	}

	c.JSON(http.StatusOK, gin.H{"clients": response})
}

func (controller *ConfigController) identityResourcesHandler(c *gin.Context) {
	resources, err := controller.configStore.ListIdentityResources(c.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to list identity resources")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	response := make([]identityResourceResponse, 0, len(resources))

	for _, resource := range resources {
		response = append(response, identityResourceResponse{
			Name:       resource.Name,
			UserClaims: resource.UserClaims,
		})
	}

	c.JSON(http.StatusOK, gin.H{"identityResources": response})
}

func (controller *ConfigController) apiScopesHandler(c *gin.Context) {
	scopes, err := controller.configStore.ListApiScopes(c.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to list API scopes")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	names := make([]string, 0, len(scopes))

	for _, scope := range scopes {
		names = append(names, scope.Name)
	}

	c.JSON(http.StatusOK, gin.H{"apiScopes": names})
}

func (controller *ConfigController) apiResourcesHandler(c *gin.Context) {
	resources, err := controller.configStore.ListApiResources(c.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to list API resources")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
		return
	}

	response := make([]apiResourceResponse, 0, len(resources))

	for _, resource := range resources {
		response = append(response, apiResourceResponse{
			Name:       resource.Name,
			Scopes:     resource.Scopes,
			UserClaims: resource.UserClaims,
		})
	}

	c.JSON(http.StatusOK, gin.H{"apiResources": response})
}

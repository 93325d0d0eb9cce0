package service_test

import (
	"context"
	"testing"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/model"

	"gotest.tools/v3/assert"
)

func TestListClientsSurfacesCorruptColumns(t *testing.T) {
	configStore, _ := newTestStores(t)
	ctx := context.Background()

	// Bypass the store API to corrupt a JSON array column
	row := model.Client{
		ClientID:      "corrupt.client",
		GrantType:     "client_credentials",
		SecretHashes:  "[]",
		AllowedScopes: "not json",
	}
	assert.NilError(t, configStore.Database.Create(&row).Error)

	_, err := configStore.ListClients(ctx)
	assert.ErrorContains(t, err, "corrupt allowed_scopes column")
	assert.ErrorContains(t, err, "corrupt.client")
}

func TestListApiResourcesSurfacesCorruptColumns(t *testing.T) {
	configStore, _ := newTestStores(t)
	ctx := context.Background()

	row := model.ApiResource{
		Name:   "corrupt.resource",
		Scopes: "{broken",
	}
	assert.NilError(t, configStore.Database.Create(&row).Error)

	_, err := configStore.ListApiResources(ctx)
	assert.ErrorContains(t, err, "corrupt scopes column")
}

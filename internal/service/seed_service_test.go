package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/v3/assert"
)

func newTestStores(t *testing.T) (*service.ConfigStoreService, *service.IdentityStoreService) {
	t.Helper()

	databaseService := service.NewDatabaseService(service.DatabaseServiceConfig{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	})

	err := databaseService.Init()
	assert.NilError(t, err)

	database := databaseService.GetDatabase()

	return service.NewConfigStoreService(database), service.NewIdentityStoreService(database)
}

func TestReconcileSeedsEmptyStore(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 2)
	assert.Equal(t, clients[0].ClientID, "super.client")
	assert.Equal(t, clients[1].ClientID, "interactive")

	identityResources, err := configStore.ListIdentityResources(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(identityResources), 3)

	apiScopes, err := configStore.ListApiScopes(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(apiScopes), 2)

	apiResources, err := configStore.ListApiResources(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(apiResources), 1)
	assert.Equal(t, apiResources[0].Name, "IdsWebApi")
}

func TestReconcileIsIdempotent(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))
	assert.NilError(t, seeder.Reconcile(ctx))

	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 2)

	apiScopes, err := configStore.ListApiScopes(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(apiScopes), 2)
}

func TestReconcileSkipsNonEmptyCollections(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	// A store that drifted from the model: one legacy scope, no clients
	err := configStore.InsertApiScope(ctx, idsconfig.ApiScope{Name: "legacy.scope"})
	assert.NilError(t, err)

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	// The scope collection was non-empty so the model's scopes stay out
	apiScopes, err := configStore.ListApiScopes(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(apiScopes), 1)
	assert.Equal(t, apiScopes[0].Name, "legacy.scope")

	// Collections gate independently, clients were still seeded
	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 2)
}

func TestReconcileDoesNotMergeClients(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	existing := idsconfig.NewMachineClient("existing.client", "Existing", idsconfig.HashSecret("s"), nil)
	assert.NilError(t, configStore.InsertClient(ctx, existing))

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 1)
	assert.Equal(t, clients[0].ClientID, "existing.client")
}

func TestReconcileSeedsUsersOnce(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	user, err := identityStore.FindByUsername(ctx, "Potenza")
	assert.NilError(t, err)
	assert.Assert(t, user != nil)
	assert.Equal(t, user.EmailVerified, true)
	assert.Equal(t, user.Email, "potenzatest@gmail.com")

	// Credential is derived, never stored raw
	assert.Assert(t, user.PasswordHash != "Potenza@123")
	assert.NilError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Potenza@123")))

	claims, err := identityStore.GetClaims(ctx, user.SubjectID)
	assert.NilError(t, err)

	var role string
	for _, claim := range claims {
		if claim.Type == idsconfig.ClaimTypeRole {
			role = claim.Value
		}
	}
	assert.Equal(t, role, "admin")

	// A second run performs no further writes for this account
	assert.NilError(t, seeder.Reconcile(ctx))

	again, err := identityStore.FindByUsername(ctx, "Potenza")
	assert.NilError(t, err)
	assert.Equal(t, again.PasswordHash, user.PasswordHash)

	claimsAgain, err := identityStore.GetClaims(ctx, user.SubjectID)
	assert.NilError(t, err)
	assert.Equal(t, len(claimsAgain), len(claims))
}

func TestClientSeedRollsBackOnFailure(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	// A first run that dies after inserting only part of the collection
	// must leave nothing behind, otherwise the existence gate would freeze
	// the store with a partial collection forever
	err := configStore.Transaction(ctx, func(tx *service.ConfigStoreService) error {
		insertErr := tx.InsertClient(ctx, idsconfig.Clients()[0])
		assert.NilError(t, insertErr)

		return errors.New("process crashed")
	})
	assert.ErrorContains(t, err, "process crashed")

	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 0)

	// The next run finds an empty collection and completes the seed
	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	clients, err = configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 2)
	assert.Equal(t, clients[1].ClientID, "interactive")
}

func TestReconcileToleratesDuplicateInserts(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	// A duplicate-key rejection during seeding means another replica got
	// there first and is not fatal. Feed duplicates straight to the seeder
	// to hit the conflict paths
	duplicate := idsconfig.NewMachineClient("racing.client", "Racing", idsconfig.HashSecret("s"), nil)

	model := idsconfig.Configuration{
		Clients: []idsconfig.Client{duplicate, duplicate},
		Users: []idsconfig.SeedUser{
			{SubjectID: "shared-subject", Username: "first", Password: "Password@123"},
			{SubjectID: "shared-subject", Username: "second", Password: "Password@123"},
		},
	}

	seeder := service.NewSeedService(configStore, identityStore, model)
	assert.NilError(t, seeder.Reconcile(ctx))

	clients, err := configStore.ListClients(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(clients), 1)
	assert.Equal(t, clients[0].ClientID, "racing.client")

	// The first user claimed the subject ID, the second was skipped
	first, err := identityStore.FindByUsername(ctx, "first")
	assert.NilError(t, err)
	assert.Assert(t, first != nil)

	second, err := identityStore.FindByUsername(ctx, "second")
	assert.NilError(t, err)
	assert.Assert(t, second == nil)
}

func TestReconcileDoesNotResetExistingUsers(t *testing.T) {
	configStore, identityStore := newTestStores(t)
	ctx := context.Background()

	// An account with a matching username but different everything else
	existing, err := identityStore.CreateAccount(ctx, idsconfig.SeedUser{
		SubjectID: "manual-subject",
		Username:  "Potenza",
		Email:     "other@example.com",
		Password:  "Different@123",
	})
	assert.NilError(t, err)

	seeder := service.NewSeedService(configStore, identityStore, idsconfig.Default())
	assert.NilError(t, seeder.Reconcile(ctx))

	user, err := identityStore.FindByUsername(ctx, "Potenza")
	assert.NilError(t, err)
	assert.Equal(t, user.SubjectID, existing.SubjectID)
	assert.Equal(t, user.Email, "other@example.com")

	// No claim refresh either
	claims, err := identityStore.GetClaims(ctx, user.SubjectID)
	assert.NilError(t, err)
	assert.Equal(t, len(claims), 0)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedService reconciles the declarative model into the stores, once per
// store lifetime. Each collection is existence gated: if the store already
// holds any record of that kind the whole collection is skipped, with no
// merge and no update in place. Re-running after manual edits to the store
// will not reconcile drift.
type SeedService struct {
	ConfigStore   *ConfigStoreService
	IdentityStore *IdentityStoreService
	Config        idsconfig.Configuration
}

func NewSeedService(configStore *ConfigStoreService, identityStore *IdentityStoreService, config idsconfig.Configuration) *SeedService {
	return &SeedService{
		ConfigStore:   configStore,
		IdentityStore: identityStore,
		Config:        config,
	}
}

// Reconcile runs synchronously at startup, before the server accepts
// requests. Any persistence failure is fatal; a partially seeded store is
// worse than a failed start. The one exception is a duplicate-key rejection:
// with several replicas racing the first seed, losing the race just means
// another instance already seeded that collection.
func (ss *SeedService) Reconcile(ctx context.Context) error {
	if err := ss.seedClients(ctx); err != nil {
		return fmt.Errorf("failed to seed clients: %w", err)
	}

	if err := ss.seedIdentityResources(ctx); err != nil {
		return fmt.Errorf("failed to seed identity resources: %w", err)
	}

	if err := ss.seedApiScopes(ctx); err != nil {
		return fmt.Errorf("failed to seed API scopes: %w", err)
	}

	if err := ss.seedApiResources(ctx); err != nil {
		return fmt.Errorf("failed to seed API resources: %w", err)
	}

	if err := ss.seedUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	return nil
}

// Each collection commits as one transaction: a failure part way through an
// insert loop must roll the whole collection back, not leave a partial
// collection behind for the existence gate to freeze on the next run.

func (ss *SeedService) seedClients(ctx context.Context) error {
	seeded, err := ss.ConfigStore.HasAnyClients(ctx)

	if err != nil {
		return err
	}

	if seeded {
		log.Debug().Msg("Clients already present, skipping")
		return nil
	}

	return ss.ConfigStore.Transaction(ctx, func(tx *ConfigStoreService) error {
		for _, client := range ss.Config.Clients {
			err := tx.InsertClient(ctx, client)

			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn().Str("clientId", client.ClientID).Msg("Client already seeded by another instance")
				continue
			}

			if err != nil {
				return err
			}

			log.Info().Str("clientId", client.ClientID).Msg("Seeded client")
		}

		return nil
	})
}

func (ss *SeedService) seedIdentityResources(ctx context.Context) error {
	seeded, err := ss.ConfigStore.HasAnyIdentityResources(ctx)

	if err != nil {
		return err
	}

	if seeded {
		log.Debug().Msg("Identity resources already present, skipping")
		return nil
	}

	return ss.ConfigStore.Transaction(ctx, func(tx *ConfigStoreService) error {
		for _, resource := range ss.Config.IdentityResources {
			err := tx.InsertIdentityResource(ctx, resource)

			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn().Str("name", resource.Name).Msg("Identity resource already seeded by another instance")
				continue
			}

			if err != nil {
				return err
			}

			log.Info().Str("name", resource.Name).Msg("Seeded identity resource")
		}

		return nil
	})
}

func (ss *SeedService) seedApiScopes(ctx context.Context) error {
	seeded, err := ss.ConfigStore.HasAnyApiScopes(ctx)

	if err != nil {
		return err
	}

	if seeded {
		log.Debug().Msg("API scopes already present, skipping")
		return nil
	}

	return ss.ConfigStore.Transaction(ctx, func(tx *ConfigStoreService) error {
		for _, scope := range ss.Config.ApiScopes {
			err := tx.InsertApiScope(ctx, scope)

			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn().Str("name", scope.Name).Msg("API scope already seeded by another instance")
				continue
			}

			if err != nil {
				return err
			}

			log.Info().Str("name", scope.Name).Msg("Seeded API scope")
		}

		return nil
	})
}

func (ss *SeedService) seedApiResources(ctx context.Context) error {
	seeded, err := ss.ConfigStore.HasAnyApiResources(ctx)

	if err != nil {
		return err
	}

	if seeded {
		log.Debug().Msg("API resources already present, skipping")
		return nil
	}

	return ss.ConfigStore.Transaction(ctx, func(tx *ConfigStoreService) error {
		for _, resource := range ss.Config.ApiResources {
			err := tx.InsertApiResource(ctx, resource)

			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn().Str("name", resource.Name).Msg("API resource already seeded by another instance")
				continue
			}

			if err != nil {
				return err
			}

			log.Info().Str("name", resource.Name).Msg("Seeded API resource")
		}

		return nil
	})
}

// seedUsers gates per account rather than per collection: an account that
// already exists is left untouched, with no claim refresh and no password
// reset. Account creation and claim attachment run inside one transaction so
// a claims failure cannot leave a claimless account behind.
func (ss *SeedService) seedUsers(ctx context.Context) error {
	for _, user := range ss.Config.Users {
		existing, err := ss.IdentityStore.FindByUsername(ctx, user.Username)

		if err != nil {
			return err
		}

		if existing != nil {
			log.Debug().Str("username", user.Username).Msg("User already present, skipping")
			continue
		}

		err = ss.IdentityStore.Transaction(ctx, func(tx *IdentityStoreService) error {
			account, err := tx.CreateAccount(ctx, user)

			if err != nil {
				return err
			}

			return tx.AddClaims(ctx, account.SubjectID, user.Claims)
		})

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn().Str("username", user.Username).Msg("User already seeded by another instance")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to create account %s: %w", user.Username, err)
		}

		log.Info().Str("username", user.Username).Msg("Seeded user")
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/model"

	"gorm.io/gorm"
)

// ConfigStoreService persists the authorization-server configuration:
// clients, identity resources, API scopes and API resources. The seeder
// writes through it once, the serving surface reads from it afterwards.
type ConfigStoreService struct {
	Database *gorm.DB
}

func NewConfigStoreService(database *gorm.DB) *ConfigStoreService {
	return &ConfigStoreService{
		Database: database,
	}
}

// Transaction runs fn against a store bound to a single database
// transaction, so a collection's inserts commit or roll back as one unit.
func (cs *ConfigStoreService) Transaction(ctx context.Context, fn func(tx *ConfigStoreService) error) error {
	return cs.Database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ConfigStoreService{Database: tx})
	})
}

func (cs *ConfigStoreService) HasAnyClients(ctx context.Context) (bool, error) {
	var count int64
	err := cs.Database.WithContext(ctx).Model(&model.Client{}).Count(&count).Error
	return count > 0, err
}

func (cs *ConfigStoreService) InsertClient(ctx context.Context, client idsconfig.Client) error {
	row := model.Client{
		ClientID:               client.ClientID,
		ClientName:             client.ClientName,
		GrantType:              client.GrantType,
		SecretHashes:           encodeStrings(client.SecretHashes),
		RedirectURIs:           encodeStrings(client.RedirectURIs),
		PostLogoutRedirectURIs: encodeStrings(client.PostLogoutRedirectURIs),
		AllowedScopes:          encodeStrings(client.AllowedScopes),
		AllowOfflineAccess:     client.AllowOfflineAccess,
		RequireConsent:         client.RequireConsent,
		RequirePKCE:            client.RequirePKCE,
		AllowPlainTextPKCE:     client.AllowPlainTextPKCE,
		CreatedAt:              time.Now().Unix(),
	}
	return cs.Database.WithContext(ctx).Create(&row).Error
}

func (cs *ConfigStoreService) ListClients(ctx context.Context) ([]idsconfig.Client, error) {
	var rows []model.Client
	// rowid keeps declaration order, created_at only has second resolution
	err := cs.Database.WithContext(ctx).Order("rowid").Find(&rows).Error

	if err != nil {
		return nil, err
	}

	clients := make([]idsconfig.Client, 0, len(rows))

	for _, row := range rows {
		client, err := clientFromRow(row)

		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, nil
}

func clientFromRow(row model.Client) (idsconfig.Client, error) {
	secretHashes, err := decodeStrings(row.SecretHashes)

	if err != nil {
		return idsconfig.Client{}, fmt.Errorf("client %s has a corrupt secret_hashes column: %w", row.ClientID, err)
	}

	redirectURIs, err := decodeStrings(row.RedirectURIs)

	if err != nil {
		return idsconfig.Client{}, fmt.Errorf("client %s has a corrupt redirect_uris column: %w", row.ClientID, err)
	}

	postLogoutRedirectURIs, err := decodeStrings(row.PostLogoutRedirectURIs)

	if err != nil {
		return idsconfig.Client{}, fmt.Errorf("client %s has a corrupt post_logout_redirect_uris column: %w", row.ClientID, err)
	}

	allowedScopes, err := decodeStrings(row.AllowedScopes)

	if err != nil {
		return idsconfig.Client{}, fmt.Errorf("client %s has a corrupt allowed_scopes column: %w", row.ClientID, err)
	}

	return idsconfig.Client{
		ClientID:               row.ClientID,
		ClientName:             row.ClientName,
		GrantType:              row.GrantType,
		SecretHashes:           secretHashes,
		RedirectURIs:           redirectURIs,
		PostLogoutRedirectURIs: postLogoutRedirectURIs,
		AllowedScopes:          allowedScopes,
		AllowOfflineAccess:     row.AllowOfflineAccess,
		RequireConsent:         row.RequireConsent,
		RequirePKCE:            row.RequirePKCE,
		AllowPlainTextPKCE:     row.AllowPlainTextPKCE,
	}, nil
}

func (cs *ConfigStoreService) HasAnyIdentityResources(ctx context.Context) (bool, error) {
	var count int64
	err := cs.Database.WithContext(ctx).Model(&model.IdentityResource{}).Count(&count).Error
	return count > 0, err
}

func (cs *ConfigStoreService) InsertIdentityResource(ctx context.Context, resource idsconfig.IdentityResource) error {
	row := model.IdentityResource{
		Name:       resource.Name,
		UserClaims: encodeStrings(resource.UserClaims),
		CreatedAt:  time.Now().Unix(),
	}
	return cs.Database.WithContext(ctx).Create(&row).Error
}

func (cs *ConfigStoreService) ListIdentityResources(ctx context.Context) ([]idsconfig.IdentityResource, error) {
	var rows []model.IdentityResource
	err := cs.Database.WithContext(ctx).Order("rowid").Find(&rows).Error

	if err != nil {
		return nil, err
	}

	resources := make([]idsconfig.IdentityResource, 0, len(rows))

	for _, row := range rows {
		userClaims, err := decodeStrings(row.UserClaims)

		if err != nil {
			return nil, fmt.Errorf("identity resource %s has a corrupt user_claims column: %w", row.Name, err)
		}

		resources = append(resources, idsconfig.IdentityResource{
			Name:       row.Name,
			UserClaims: userClaims,
		})
	}

	return resources, nil
}

func (cs *ConfigStoreService) HasAnyApiScopes(ctx context.Context) (bool, error) {
	var count int64
	err := cs.Database.WithContext(ctx).Model(&model.ApiScope{}).Count(&count).Error
	return count > 0, err
}

func (cs *ConfigStoreService) InsertApiScope(ctx context.Context, scope idsconfig.ApiScope) error {
	row := model.ApiScope{
		Name:      scope.Name,
		CreatedAt: time.Now().Unix(),
	}
	return cs.Database.WithContext(ctx).Create(&row).Error
}

func (cs *ConfigStoreService) ListApiScopes(ctx context.Context) ([]idsconfig.ApiScope, error) {
	var rows []model.ApiScope
	err := cs.Database.WithContext(ctx).Order("rowid").Find(&rows).Error

	if err != nil {
		return nil, err
	}

	scopes := make([]idsconfig.ApiScope, 0, len(rows))

	for _, row := range rows {
		scopes = append(scopes, idsconfig.ApiScope{Name: row.Name})
	}

	return scopes, nil
}

func (cs *ConfigStoreService) HasAnyApiResources(ctx context.Context) (bool, error) {
	var count int64
	err := cs.Database.WithContext(ctx).Model(&model.ApiResource{}).Count(&count).Error
	return count > 0, err
}

func (cs *ConfigStoreService) InsertApiResource(ctx context.Context, resource idsconfig.ApiResource) error {
	row := model.ApiResource{
		Name:         resource.Name,
		Scopes:       encodeStrings(resource.Scopes),
		SecretHashes: encodeStrings(resource.SecretHashes),
		UserClaims:   encodeStrings(resource.UserClaims),
		CreatedAt:    time.Now().Unix(),
	}
	return cs.Database.WithContext(ctx).Create(&row).Error
}

func (cs *ConfigStoreService) ListApiResources(ctx context.Context) ([]idsconfig.ApiResource, error) {
	var rows []model.ApiResource
	err := cs.Database.WithContext(ctx).Order("rowid").Find(&rows).Error

	if err != nil {
		return nil, err
	}

	resources := make([]idsconfig.ApiResource, 0, len(rows))

	for _, row := range rows {
		scopes, err := decodeStrings(row.Scopes)

		if err != nil {
			return nil, fmt.Errorf("API resource %s has a corrupt scopes column: %w", row.Name, err)
		}

		secretHashes, err := decodeStrings(row.SecretHashes)

		if err != nil {
			return nil, fmt.Errorf("API resource %s has a corrupt secret_hashes column: %w", row.Name, err)
		}

		userClaims, err := decodeStrings(row.UserClaims)

		if err != nil {
			return nil, fmt.Errorf("API resource %s has a corrupt user_claims column: %w", row.Name, err)
		}

		resources = append(resources, idsconfig.ApiResource{
			Name:         row.Name,
			Scopes:       scopes,
			SecretHashes: secretHashes,
			UserClaims:   userClaims,
		})
	}

	return resources, nil
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	encoded, _ := json.Marshal(values)
	return string(encoded)
}

func decodeStrings(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}

	var values []string

	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, err
	}

	return values, nil
}

package idsconfig

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a fault in the declarative model itself: a dangling
// scope reference, a duplicate natural key or an invalid client shape. It is
// fatal at startup, before any seeding happens.
var ErrConfiguration = errors.New("invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Validate checks the model once at load time so that reference faults
// surface before seeding rather than lazily at token-issuance time.
func Validate(cfg Configuration) error {
	identityResources := make(map[string]bool, len(cfg.IdentityResources))
	for _, resource := range cfg.IdentityResources {
		if identityResources[resource.Name] {
			return configErrorf("duplicate identity resource %q", resource.Name)
		}
		identityResources[resource.Name] = true
	}

	apiScopes := make(map[string]bool, len(cfg.ApiScopes))
	for _, scope := range cfg.ApiScopes {
		if apiScopes[scope.Name] {
			return configErrorf("duplicate API scope %q", scope.Name)
		}
		apiScopes[scope.Name] = true
	}

	apiResources := make(map[string]bool, len(cfg.ApiResources))
	for _, resource := range cfg.ApiResources {
		if apiResources[resource.Name] {
			return configErrorf("duplicate API resource %q", resource.Name)
		}
		apiResources[resource.Name] = true

		// API resources expose API scopes only, never identity resources
		for _, name := range resource.Scopes {
			if !apiScopes[name] {
				return configErrorf("API resource %q references unknown scope %q", resource.Name, name)
			}
		}
	}

	clients := make(map[string]bool, len(cfg.Clients))
	for _, client := range cfg.Clients {
		if clients[client.ClientID] {
			return configErrorf("duplicate client ID %q", client.ClientID)
		}
		clients[client.ClientID] = true

		if err := validateClient(client, apiScopes, identityResources); err != nil {
			return err
		}
	}

	usernames := make(map[string]bool, len(cfg.Users))
	subjects := make(map[string]bool, len(cfg.Users))
	for _, user := range cfg.Users {
		if usernames[user.Username] {
			return configErrorf("duplicate username %q", user.Username)
		}
		usernames[user.Username] = true

		if subjects[user.SubjectID] {
			return configErrorf("duplicate subject ID %q", user.SubjectID)
		}
		subjects[user.SubjectID] = true
	}

	return nil
}

func validateClient(client Client, apiScopes map[string]bool, identityResources map[string]bool) error {
	// A client scope may resolve to either an API scope or an identity
	// resource, both live in the same name space
	for _, name := range client.AllowedScopes {
		if !apiScopes[name] && !identityResources[name] {
			return configErrorf("client %q references unknown scope %q", client.ClientID, name)
		}
	}

	switch client.GrantType {
	case GrantTypeClientCredentials:
		if len(client.RedirectURIs) > 0 {
			return configErrorf("client %q uses client credentials but has redirect URIs", client.ClientID)
		}
		if client.AllowOfflineAccess {
			return configErrorf("client %q uses client credentials but allows offline access", client.ClientID)
		}
	case GrantTypeAuthorizationCode:
		if len(client.RedirectURIs) == 0 {
			return configErrorf("client %q uses the code flow but has no redirect URIs", client.ClientID)
		}
		if !client.RequirePKCE {
			return configErrorf("client %q uses the code flow but does not require PKCE", client.ClientID)
		}
		if client.AllowPlainTextPKCE {
			return configErrorf("client %q allows plaintext PKCE", client.ClientID)
		}
	default:
		return configErrorf("client %q has unsupported grant type %q", client.ClientID, client.GrantType)
	}

	if len(client.SecretHashes) == 0 {
		return configErrorf("client %q has no secret", client.ClientID)
	}

	return nil
}

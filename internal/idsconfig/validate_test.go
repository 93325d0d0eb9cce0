package idsconfig_test

import (
	"errors"
	"testing"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"
)

func TestDefaultModelIsValid(t *testing.T) {
	if err := idsconfig.Validate(idsconfig.Default()); err != nil {
		t.Fatalf("Default model should validate, got %v", err)
	}
}

func TestDanglingClientScope(t *testing.T) {
	model := idsconfig.Default()
	model.Clients[0].AllowedScopes = append(model.Clients[0].AllowedScopes, "nonexistent.scope")

	err := idsconfig.Validate(model)

	if !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for a dangling scope, got %v", err)
	}
}

func TestDanglingApiResourceScope(t *testing.T) {
	model := idsconfig.Default()
	model.ApiResources[0].Scopes = []string{"IdsWebApi.read", "missing"}

	err := idsconfig.Validate(model)

	if !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for a dangling API resource scope, got %v", err)
	}
}

func TestApiResourceCannotExposeIdentityResource(t *testing.T) {
	model := idsconfig.Default()
	model.ApiResources[0].Scopes = []string{"openid"}

	err := idsconfig.Validate(model)

	if !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error, got %v", err)
	}
}

func TestCodeFlowClientNeedsRedirectURIs(t *testing.T) {
	model := idsconfig.Default()

	for i := range model.Clients {
		if model.Clients[i].GrantType == idsconfig.GrantTypeAuthorizationCode {
			model.Clients[i].RedirectURIs = nil
		}
	}

	err := idsconfig.Validate(model)

	if !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for missing redirect URIs, got %v", err)
	}
}

func TestCodeFlowClientMustRequirePKCE(t *testing.T) {
	model := idsconfig.Default()

	for i := range model.Clients {
		if model.Clients[i].GrantType == idsconfig.GrantTypeAuthorizationCode {
			model.Clients[i].RequirePKCE = false
		}
	}

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for PKCE not required, got %v", err)
	}

	model = idsconfig.Default()

	for i := range model.Clients {
		if model.Clients[i].GrantType == idsconfig.GrantTypeAuthorizationCode {
			model.Clients[i].AllowPlainTextPKCE = true
		}
	}

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for plaintext PKCE, got %v", err)
	}
}

func TestMachineClientCannotHaveRedirectURIs(t *testing.T) {
	model := idsconfig.Default()
	model.Clients[0].RedirectURIs = []string{"https://localhost/cb"}

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error, got %v", err)
	}
}

func TestUnsupportedGrantType(t *testing.T) {
	model := idsconfig.Default()
	model.Clients[0].GrantType = "implicit"

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for an unsupported grant type, got %v", err)
	}
}

func TestDuplicateNaturalKeys(t *testing.T) {
	model := idsconfig.Default()
	model.Clients = append(model.Clients, model.Clients[0])

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for a duplicate client ID, got %v", err)
	}

	model = idsconfig.Default()
	model.ApiScopes = append(model.ApiScopes, model.ApiScopes[0])

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for a duplicate API scope, got %v", err)
	}

	model = idsconfig.Default()
	model.Users = append(model.Users, model.Users[0])

	if err := idsconfig.Validate(model); !errors.Is(err, idsconfig.ErrConfiguration) {
		t.Fatalf("Expected a configuration error for a duplicate username, got %v", err)
	}
}

// Package idsconfig holds the declarative authorization-server model: the
// identity resources, API scopes, API resources, clients and seed users that
// the bootstrap seeder installs into the stores on first start. Everything in
// here is static data, assembled in memory with no external input.
package idsconfig

// Grant types a client may be configured with. Exactly one per client.
const (
	GrantTypeClientCredentials = "client_credentials"
	GrantTypeAuthorizationCode = "authorization_code"
)

// Standard claim type names released through identity resources and attached
// to seed users.
const (
	ClaimTypeSubject    = "sub"
	ClaimTypeName       = "name"
	ClaimTypeGivenName  = "given_name"
	ClaimTypeFamilyName = "family_name"
	ClaimTypeEmail      = "email"
	ClaimTypeWebsite    = "website"
	ClaimTypeRole       = "role"
	ClaimTypeAddress    = "address"
)

// ClaimValueTypeJSON tags a claim whose value is serialized JSON rather than
// a plain string. Consumers must deserialize such values before use.
const ClaimValueTypeJSON = "json"

type IdentityResource struct {
	Name       string
	UserClaims []string
}

type ApiScope struct {
	Name string
}

type ApiResource struct {
	Name         string
	Scopes       []string
	SecretHashes []string
	UserClaims   []string
}

type Client struct {
	ClientID               string
	ClientName             string
	GrantType              string
	SecretHashes           []string
	RedirectURIs           []string
	PostLogoutRedirectURIs []string
	AllowedScopes          []string
	AllowOfflineAccess     bool
	RequireConsent         bool
	RequirePKCE            bool
	AllowPlainTextPKCE     bool
}

// NewMachineClient builds a client-credentials client: no user, no redirects,
// secret authentication, API scopes only.
func NewMachineClient(clientID string, clientName string, secretHash string, scopes []string) Client {
	return Client{
		ClientID:      clientID,
		ClientName:    clientName,
		GrantType:     GrantTypeClientCredentials,
		SecretHashes:  []string{secretHash},
		AllowedScopes: scopes,
	}
}

// NewInteractiveClient builds an authorization-code client. PKCE is required
// and plaintext PKCE stays disabled; there is no knob to weaken either.
func NewInteractiveClient(clientID string, secretHash string, redirectURIs []string, postLogoutURIs []string, scopes []string) Client {
	return Client{
		ClientID:               clientID,
		GrantType:              GrantTypeAuthorizationCode,
		SecretHashes:           []string{secretHash},
		RedirectURIs:           redirectURIs,
		PostLogoutRedirectURIs: postLogoutURIs,
		AllowedScopes:          scopes,
		AllowOfflineAccess:     true,
		RequireConsent:         true,
		RequirePKCE:            true,
		AllowPlainTextPKCE:     false,
	}
}

// Configuration bundles the full declarative model. Build one with Default
// and run Validate on it before seeding.
type Configuration struct {
	IdentityResources []IdentityResource
	ApiScopes         []ApiScope
	ApiResources      []ApiResource
	Clients           []Client
	Users             []SeedUser
}

// Default returns the model this demo ships with. Every call builds fresh
// slices, so callers can not mutate the declaration out from under each
// other.
func Default() Configuration {
	return Configuration{
		IdentityResources: IdentityResources(),
		ApiScopes:         ApiScopes(),
		ApiResources:      ApiResources(),
		Clients:           Clients(),
		Users:             SeedUsers(),
	}
}

func IdentityResources() []IdentityResource {
	return []IdentityResource{
		{
			Name:       "openid",
			UserClaims: []string{ClaimTypeSubject},
		},
		{
			Name: "profile",
			UserClaims: []string{
				ClaimTypeName,
				ClaimTypeGivenName,
				ClaimTypeFamilyName,
				ClaimTypeWebsite,
				ClaimTypeAddress,
			},
		},
		{
			Name:       "role",
			UserClaims: []string{ClaimTypeRole},
		},
	}
}

func ApiScopes() []ApiScope {
	return []ApiScope{
		{Name: "IdsWebApi.read"},
		{Name: "IdsWebApi.write"},
	}
}

func ApiResources() []ApiResource {
	return []ApiResource{
		{
			Name:         "IdsWebApi",
			Scopes:       []string{"IdsWebApi.read", "IdsWebApi.write"},
			SecretHashes: []string{HashSecret("ScopeSecret")},
			UserClaims:   []string{ClaimTypeRole},
		},
	}
}

func Clients() []Client {
	return []Client{
		// machine to machine client
		NewMachineClient(
			"super.client",
			"Super Client",
			HashSecret("SecretPassword"),
			[]string{"IdsWebApi.read", "IdsWebApi.write"},
		),

		// interactive browser client
		NewInteractiveClient(
			"interactive",
			HashSecret("SecretPassword"),
			[]string{"https://localhost:44324/signin-oidc"},
			[]string{"https://localhost:44324/signout-callback-oidc"},
			[]string{"openid", "profile", "IdsWebApi.read"},
		),
	}
}

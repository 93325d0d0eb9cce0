package model

type Client struct {
	ClientID               string `gorm:"column:client_id;primaryKey"`
	ClientName             string `gorm:"column:client_name"`
	GrantType              string `gorm:"column:grant_type"`
	SecretHashes           string `gorm:"column:secret_hashes"`             // JSON array
	RedirectURIs           string `gorm:"column:redirect_uris"`             // JSON array
	PostLogoutRedirectURIs string `gorm:"column:post_logout_redirect_uris"` // JSON array
	AllowedScopes          string `gorm:"column:allowed_scopes"`            // JSON array
	AllowOfflineAccess     bool   `gorm:"column:allow_offline_access"`
	RequireConsent         bool   `gorm:"column:require_consent"`
	RequirePKCE            bool   `gorm:"column:require_pkce"`
	AllowPlainTextPKCE     bool   `gorm:"column:allow_plain_text_pkce"`
	CreatedAt              int64  `gorm:"column:created_at"`
}

func (Client) TableName() string {
	return "clients"
}

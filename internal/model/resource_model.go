package model

type IdentityResource struct {
	Name       string `gorm:"column:name;primaryKey"`
	UserClaims string `gorm:"column:user_claims"` // JSON array
	CreatedAt  int64  `gorm:"column:created_at"`
}

func (IdentityResource) TableName() string {
	return "identity_resources"
}

type ApiScope struct {
	Name      string `gorm:"column:name;primaryKey"`
	CreatedAt int64  `gorm:"column:created_at"`
}

func (ApiScope) TableName() string {
	return "api_scopes"
}

type ApiResource struct {
	Name         string `gorm:"column:name;primaryKey"`
	Scopes       string `gorm:"column:scopes"`        // JSON array
	SecretHashes string `gorm:"column:secret_hashes"` // JSON array
	UserClaims   string `gorm:"column:user_claims"`   // JSON array
	CreatedAt    int64  `gorm:"column:created_at"`
}

func (ApiResource) TableName() string {
	return "api_resources"
}

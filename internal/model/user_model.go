package model

type User struct {
	SubjectID     string `gorm:"column:subject_id;primaryKey"`
	Username      string `gorm:"column:username;uniqueIndex"`
	Email         string `gorm:"column:email"`
	PasswordHash  string `gorm:"column:password_hash"`
	EmailVerified bool   `gorm:"column:email_verified"`
	CreatedAt     int64  `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

type UserClaim struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	SubjectID string `gorm:"column:subject_id;index"`
	ClaimType string `gorm:"column:claim_type"`
	Value     string `gorm:"column:value"`
	ValueType string `gorm:"column:value_type"` // empty for plain strings, "json" for structured values
}

func (UserClaim) TableName() string {
	return "user_claims"
}

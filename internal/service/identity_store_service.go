package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/idsconfig"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityStoreService persists end-user accounts and their claims. Account
// passwords only exist long enough to derive the bcrypt credential.
type IdentityStoreService struct {
	Database *gorm.DB
}

func NewIdentityStoreService(database *gorm.DB) *IdentityStoreService {
	return &IdentityStoreService{
		Database: database,
	}
}

// FindByUsername returns nil without an error when no account exists.
func (is *IdentityStoreService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := is.Database.WithContext(ctx).Where("username = ?", username).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateAccount derives a credential from the declared password and stores
// the account as email-verified. The subject ID is taken from the seed user
// or generated when the declaration leaves it empty.
func (is *IdentityStoreService) CreateAccount(ctx context.Context, user idsconfig.SeedUser) (*model.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, fmt.Errorf("failed to derive credential for %s: %w", user.Username, err)
	}

	subjectID := user.SubjectID

	if subjectID == "" {
		subjectID = uuid.NewString()
	}

	row := model.User{
		SubjectID:     subjectID,
		Username:      user.Username,
		Email:         user.Email,
		PasswordHash:  string(passwordHash),
		EmailVerified: true,
		CreatedAt:     time.Now().Unix(),
	}

	if err := is.Database.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

func (is *IdentityStoreService) AddClaims(ctx context.Context, subjectID string, claims []idsconfig.Claim) error {
	for _, claim := range claims {
		row := model.UserClaim{
			SubjectID: subjectID,
			ClaimType: claim.Type,
			Value:     claim.Value,
			ValueType: claim.ValueType,
		}

		if err := is.Database.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

func (is *IdentityStoreService) GetClaims(ctx context.Context, subjectID string) ([]idsconfig.Claim, error) {
	var rows []model.UserClaim
	err := is.Database.WithContext(ctx).Where("subject_id = ?", subjectID).Order("id").Find(&rows).Error

	if err != nil {
		return nil, err
	}

	claims := make([]idsconfig.Claim, 0, len(rows))

	for _, row := range rows {
		claims = append(claims, idsconfig.Claim{
			Type:      row.ClaimType,
			Value:     row.Value,
			ValueType: row.ValueType,
		})
	}

	return claims, nil
}

// Transaction runs fn against a store bound to a single database
// transaction, so account creation and claim attachment commit or roll back
// as one unit.
func (is *IdentityStoreService) Transaction(ctx context.Context, fn func(tx *IdentityStoreService) error) error {
	return is.Database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&IdentityStoreService{Database: tx})
	})
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// CreateUserWithProfile inserts the user and its profile in one transaction.
func (r *UserGormRepository) CreateUserWithProfile(
	ctx context.Context,
	user *models.User,
	profile *models.Profile,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.ID = user.ID
		return tx.Create(profile).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("email_already_registered")
	}
	return err
}

func (r *UserGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ auth.Users = (*UserGormRepository)(nil)

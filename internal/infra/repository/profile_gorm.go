package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetProfile(
	ctx context.Context,
	id uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) UpdateContact(
	ctx context.Context,
	id uuid.UUID,
	fullName string,
	phone string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"full_name": fullName,
			"phone":     phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileGormRepository) ListByRole(
	ctx context.Context,
	role string,
) ([]models.Profile, error) {

	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileGormRepository) ListAll(
	ctx context.Context,
) ([]models.Profile, error) {

	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Compile-time check
var _ profile.Repository = (*ProfileGormRepository)(nil)

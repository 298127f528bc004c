package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Specialist").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Preload("Specialist").
		Where("id = ?", id).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Omit("Specialist").Create(s).Error
}

func (r *ServiceGormRepository) DeleteService(
	ctx context.Context,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ catalog.Repository = (*ServiceGormRepository)(nil)

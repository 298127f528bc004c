package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / update
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("status", "cancelled_at", "completed_at").
		Updates(b).Error
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *BookingGormRepository) ListForEmployee(
	ctx context.Context,
	employeeID uuid.UUID,
) ([]models.Booking, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("employee_id = ?", employeeID))
}

func (r *BookingGormRepository) list(
	_ context.Context,
	q *gorm.DB,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := q.
		Preload("Client").
		Preload("Service").
		Order("appointment_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

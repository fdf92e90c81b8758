package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service lookup
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", serviceID, true).
		First(&s).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]dto.UserBookingItem, error) {

	var items []dto.UserBookingItem
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select(
			"b.id, b.service_id, b.booking_date, b.booking_time, b.status, " +
				"b.notes, b.created_at, " +
				"s.title AS service_title, s.duration, s.price, " +
				"c.full_name AS consultant_name",
		).
		Joins("LEFT JOIN services s ON b.service_id = s.id").
		Joins("LEFT JOIN consultants c ON s.consultant_id = c.id").
		Where("b.user_id = ?", userID).
		Order("b.booking_date DESC, b.booking_time DESC").
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *BookingGormRepository) ListByConsultant(
	ctx context.Context,
	consultantID uint,
) ([]dto.ConsultantBookingItem, error) {

	var items []dto.ConsultantBookingItem
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select(
			"b.id, b.user_id, b.service_id, b.booking_date, b.booking_time, " +
				"b.status, b.notes, b.created_at, " +
				"s.title AS service_title, " +
				"u.full_name AS user_name, u.email AS user_email, u.phone AS user_phone",
		).
		Joins("LEFT JOIN services s ON b.service_id = s.id").
		Joins("LEFT JOIN users u ON b.user_id = u.id").
		Where("s.consultant_id = ?", consultantID).
		Order("b.booking_date DESC, b.booking_time DESC").
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

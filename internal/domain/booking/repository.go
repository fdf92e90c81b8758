package booking

import (
	"context"
	"errors"

	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/models"
)

var ErrNotFound = errors.New("booking: not found")

type Repository interface {
	// -------- Service lookup --------
	GetActiveService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing (display enrichment joins) --------
	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]dto.UserBookingItem, error)

	ListByConsultant(
		ctx context.Context,
		consultantID uint,
	) ([]dto.ConsultantBookingItem, error)
}

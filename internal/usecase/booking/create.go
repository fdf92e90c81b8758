package booking

import (
	"context"
	"time"

	"github.com/ttsbooking/consult-platform/internal/audit"
	"github.com/ttsbooking/consult-platform/internal/auth"
	domain "github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint // zero means "book for the caller"
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor auth.Principal,
	in CreateBookingInput,
) (*models.Booking, error) {

	userID := in.UserID
	if userID == 0 {
		userID = actor.UserID
	}

	// A caller may only book for someone else as admin.
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, httperr.ErrBusiness("user_mismatch")
	}

	if in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if _, err := uc.repo.GetActiveService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	b := &models.Booking{
		UserID:      userID,
		ServiceID:   in.ServiceID,
		BookingDate: in.Date,
		BookingTime: in.Time,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

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

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor auth.Principal,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// The booking owner can cancel; so can consultants and admins working
	// the back office.
	if b.UserID != actor.UserID &&
		actor.Role != models.RoleConsultant &&
		!actor.IsAdmin() {
		return nil, httperr.ErrBusiness("user_mismatch")
	}

	if err := domain.Cancel(b, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

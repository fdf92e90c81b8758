package booking

import (
	"context"

	"github.com/ttsbooking/consult-platform/internal/auth"
	domain "github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/httperr"
)

type ListBookingsByUser struct {
	repo domain.Repository
}

func NewListBookingsByUser(repo domain.Repository) *ListBookingsByUser {
	return &ListBookingsByUser{repo: repo}
}

func (uc *ListBookingsByUser) Execute(
	ctx context.Context,
	actor auth.Principal,
	userID uint,
) ([]dto.UserBookingItem, error) {

	// Members see their own bookings; only admins can look at anyone's.
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, httperr.ErrBusiness("user_mismatch")
	}

	return uc.repo.ListByUser(ctx, userID)
}

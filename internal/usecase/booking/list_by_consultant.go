package booking

import (
	"context"

	domain "github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/dto"
)

type ListBookingsByConsultant struct {
	repo domain.Repository
}

func NewListBookingsByConsultant(repo domain.Repository) *ListBookingsByConsultant {
	return &ListBookingsByConsultant{repo: repo}
}

func (uc *ListBookingsByConsultant) Execute(
	ctx context.Context,
	consultantID uint,
) ([]dto.ConsultantBookingItem, error) {

	return uc.repo.ListByConsultant(ctx, consultantID)
}

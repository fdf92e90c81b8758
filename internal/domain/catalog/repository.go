package catalog

import (
	"context"
	"errors"

	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/models"
)

var ErrNotFound = errors.New("catalog: not found")

type Repository interface {
	// -------- Services --------
	ListActiveServices(
		ctx context.Context,
	) ([]dto.ServiceListItem, error)

	GetActiveService(
		ctx context.Context,
		serviceID uint,
	) (*dto.ServiceDetail, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	// -------- Consultants --------
	ListConsultants(
		ctx context.Context,
	) ([]models.Consultant, error)

	GetConsultant(
		ctx context.Context,
		consultantID uint,
	) (*models.Consultant, error)

	UpdateConsultantAvatar(
		ctx context.Context,
		consultantID uint,
		avatarURL string,
	) error
}

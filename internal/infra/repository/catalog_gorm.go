package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ttsbooking/consult-platform/internal/domain/catalog"
	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListActiveServices(
	ctx context.Context,
) ([]dto.ServiceListItem, error) {

	var items []dto.ServiceListItem
	err := r.db.WithContext(ctx).
		Table("services s").
		Select(
			"s.id, s.consultant_id, s.title, s.description, s.duration, " +
				"s.price, s.category, s.created_at, " +
				"c.full_name AS consultant_name",
		).
		Joins("LEFT JOIN consultants c ON s.consultant_id = c.id").
		Where("s.is_active = ?", true).
		Order("s.created_at DESC").
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *CatalogGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uint,
) (*dto.ServiceDetail, error) {

	var detail dto.ServiceDetail
	res := r.db.WithContext(ctx).
		Table("services s").
		Select(
			"s.id, s.consultant_id, s.title, s.description, s.duration, " +
				"s.price, s.category, s.is_active, s.created_at, " +
				"c.full_name AS consultant_name, " +
				"c.bio AS consultant_bio, " +
				"c.avatar_url AS consultant_avatar",
		).
		Joins("LEFT JOIN consultants c ON s.consultant_id = c.id").
		Where("s.id = ? AND s.is_active = ?", serviceID, true).
		Scan(&detail)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return &detail, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// --------------------------------------------------
// Consultants
// --------------------------------------------------

func (r *CatalogGormRepository) ListConsultants(
	ctx context.Context,
) ([]models.Consultant, error) {

	var consultants []models.Consultant
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&consultants).Error; err != nil {
		return nil, err
	}

	return consultants, nil
}

func (r *CatalogGormRepository) GetConsultant(
	ctx context.Context,
	consultantID uint,
) (*models.Consultant, error) {

	var consultant models.Consultant
	if err := r.db.WithContext(ctx).
		First(&consultant, consultantID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &consultant, nil
}

func (r *CatalogGormRepository) UpdateConsultantAvatar(
	ctx context.Context,
	consultantID uint,
	avatarURL string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Consultant{}).
		Where("id = ?", consultantID).
		Update("avatar_url", avatarURL)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)

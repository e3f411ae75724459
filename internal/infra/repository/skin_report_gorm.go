package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kaagyebi/lumea-api/internal/domain/skinreport"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type SkinReportGormRepository struct {
	db *gorm.DB
}

func NewSkinReportGormRepository(db *gorm.DB) *SkinReportGormRepository {
	return &SkinReportGormRepository{db: db}
}

func (r *SkinReportGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

func (r *SkinReportGormRepository) CreateReport(ctx context.Context, rep *models.SkinReport) error {
	return r.db.WithContext(ctx).Omit("User", "Recommendations").Create(rep).Error
}

func (r *SkinReportGormRepository) GetReport(ctx context.Context, id uuid.UUID) (*models.SkinReport, error) {
	var rep models.SkinReport
	if err := r.db.WithContext(ctx).
		Preload("User", summaryColumns).
		Preload("Recommendations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *SkinReportGormRepository) FindReportForUser(
	ctx context.Context,
	reportID uuid.UUID,
	userID uuid.UUID,
) (*models.SkinReport, error) {

	var rep models.SkinReport
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reportID, userID).
		First(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *SkinReportGormRepository) UpdateReport(ctx context.Context, rep *models.SkinReport) error {
	return r.db.WithContext(ctx).
		Model(rep).
		Select("cosmetologist_notes", "updated_at").
		Updates(rep).Error
}

func (r *SkinReportGormRepository) ListReportsByUser(ctx context.Context, userID uuid.UUID) ([]models.SkinReport, error) {
	var reps []models.SkinReport
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reps).Error; err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *SkinReportGormRepository) IsAssociated(
	ctx context.Context,
	cosmetologistID uuid.UUID,
	userID uuid.UUID,
) (bool, error) {
	return isAssociated(ctx, r.db, cosmetologistID, userID)
}

var _ domain.Repository = (*SkinReportGormRepository)(nil)

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kaagyebi/lumea-api/internal/domain/recommendation"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type RecommendationGormRepository struct {
	db *gorm.DB
}

func NewRecommendationGormRepository(db *gorm.DB) *RecommendationGormRepository {
	return &RecommendationGormRepository{db: db}
}

func (r *RecommendationGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

func (r *RecommendationGormRepository) GetReport(ctx context.Context, id uuid.UUID) (*models.SkinReport, error) {
	var rep models.SkinReport
	if err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *RecommendationGormRepository) CreateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	return r.db.WithContext(ctx).Omit("User", "GeneratedBy").Create(rec).Error
}

func (r *RecommendationGormRepository) GetRecommendation(ctx context.Context, id uuid.UUID) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.WithContext(ctx).
		Preload("User", summaryColumns).
		Preload("GeneratedBy", summaryColumns).
		First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationGormRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := r.db.WithContext(ctx).
		Preload("GeneratedBy", summaryColumns).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecommendationGormRepository) ListAuthored(ctx context.Context, authorID uuid.UUID) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := r.db.WithContext(ctx).
		Preload("User", summaryColumns).
		Where("generated_by_id = ?", authorID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecommendationGormRepository) IsAssociated(
	ctx context.Context,
	cosmetologistID uuid.UUID,
	userID uuid.UUID,
) (bool, error) {
	return isAssociated(ctx, r.db, cosmetologistID, userID)
}

var _ domain.Repository = (*RecommendationGormRepository)(nil)

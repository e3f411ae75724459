package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/models"
)

// isAssociated is the live relationship probe: any appointment with the
// exact (user, cosmetologist) pair, whatever its status.
func isAssociated(
	ctx context.Context,
	db *gorm.DB,
	cosmetologistID uuid.UUID,
	userID uuid.UUID,
) (bool, error) {

	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("user_id = ? AND cosmetologist_id = ?", userID, cosmetologistID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func getUser(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// summaryColumns limits preloaded parties to what the summary projection
// needs.
func summaryColumns(db *gorm.DB) *gorm.DB {
	return db.Select(
		"id", "name", "email", "role",
		"profile_bio", "profile_specialization", "profile_image",
		"profile_availability", "profile_certificate", "profile_area_of_expertise",
	)
}

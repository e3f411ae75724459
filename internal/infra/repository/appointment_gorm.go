package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("User", "Cosmetologist").Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("status", "notes", "updated_at").
		Updates(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	switch filter.Scope {
	case domain.ScopeCosmetologist:
		q = q.Where("cosmetologist_id = ?", filter.PrincipalID)
	default:
		q = q.Where("user_id = ?", filter.PrincipalID)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	if filter.PreloadUser {
		q = q.Preload("User", summaryColumns)
	}
	if filter.PreloadCosmetologist {
		q = q.Preload("Cosmetologist", summaryColumns)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Relationship
// --------------------------------------------------

func (r *AppointmentGormRepository) IsAssociated(
	ctx context.Context,
	cosmetologistID uuid.UUID,
	userID uuid.UUID,
) (bool, error) {
	return isAssociated(ctx, r.db, cosmetologistID, userID)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

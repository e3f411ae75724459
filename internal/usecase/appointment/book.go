package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Requester       access.Principal
	CosmetologistID uuid.UUID

	SkinType    string
	Tone        string
	Weight      *float64
	Height      *float64
	HairColor   string
	HairType    string
	Description string
	Concern     string
	Age         *int
	Gender      string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Permission
	// --------------------------------------------------
	if err := access.CanAuthor(in.Requester, access.ActionBookAppointment).Err(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Intake
	// --------------------------------------------------
	if in.CosmetologistID == uuid.Nil ||
		strings.TrimSpace(in.SkinType) == "" ||
		strings.TrimSpace(in.Gender) == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation("missing_fields", "cosmetologistId, skinType, gender, date and time are required.")
	}

	date, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date must be formatted as YYYY-MM-DD.")
	}
	if !timezone.IsClock(in.Time) {
		return nil, httperr.ErrValidation("invalid_time", "Time must be formatted as HH:MM.")
	}
	if in.Age != nil && *in.Age < 0 {
		return nil, httperr.ErrValidation("invalid_age", "Age cannot be negative.")
	}

	if in.CosmetologistID == in.Requester.ID {
		return nil, httperr.ErrValidation("cannot_book_self", "You cannot book an appointment with yourself.")
	}

	// --------------------------------------------------
	// Cosmetologist
	// --------------------------------------------------
	cosmetologist, err := uc.repo.GetUser(ctx, in.CosmetologistID)
	if err != nil {
		return nil, httperr.FromStore(err, "cosmetologist_not_found", "Cosmetologist not found.")
	}
	if cosmetologist.Role != access.RoleCosmetologist {
		return nil, httperr.ErrValidation("not_a_cosmetologist", "The selected user is not a cosmetologist.")
	}

	// --------------------------------------------------
	// Create
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          in.Requester.ID,
		CosmetologistID: cosmetologist.ID,
		SkinType:        strings.TrimSpace(in.SkinType),
		Tone:            in.Tone,
		Weight:          in.Weight,
		Height:          in.Height,
		HairColor:       in.HairColor,
		HairType:        in.HairType,
		Description:     in.Description,
		Concern:         in.Concern,
		Age:             in.Age,
		Gender:          strings.TrimSpace(in.Gender),
		Date:            date,
		Time:            in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, httperr.Store(err)
	}

	ap.Cosmetologist = *cosmetologist

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(in.Requester.ID),
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: audit.ID(ap.ID),
		Metadata: map[string]any{"cosmetologistId": cosmetologist.ID},
	})

	return ap, nil
}

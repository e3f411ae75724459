package skinreport

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/skinreport"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type NotesInput struct {
	Requester access.Principal
	UserID    uuid.UUID
	ReportID  uuid.UUID
	Notes     string
}

type AddConsultationNotes struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddConsultationNotes(repo domain.Repository, audit *audit.Dispatcher) *AddConsultationNotes {
	return &AddConsultationNotes{repo: repo, audit: audit}
}

// Execute replaces the cosmetologist notes of a report owned by in.UserID.
func (uc *AddConsultationNotes) Execute(ctx context.Context, in NotesInput) (*models.SkinReport, error) {
	if err := access.CanAuthor(in.Requester, access.ActionAddConsultationNotes).Err(); err != nil {
		return nil, err
	}

	if in.ReportID == uuid.Nil {
		return nil, httperr.ErrValidation("report_id_required", "reportId is required.")
	}
	if strings.TrimSpace(in.Notes) == "" {
		return nil, httperr.ErrValidation("notes_required", "notes are required.")
	}

	rep, err := uc.repo.FindReportForUser(ctx, in.ReportID, in.UserID)
	if err != nil {
		return nil, httperr.FromStore(err, "report_not_found", "Skin report not found for this user.")
	}

	rep.CosmetologistNotes = in.Notes
	if err := uc.repo.UpdateReport(ctx, rep); err != nil {
		return nil, httperr.Store(err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(in.Requester.ID),
		Action:   audit.ActionConsultationNotesAdded,
		Entity:   "skin_report",
		EntityID: audit.ID(rep.ID),
		Metadata: map[string]any{"userId": in.UserID},
	})

	return rep, nil
}

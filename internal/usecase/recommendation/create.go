package recommendation

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/recommendation"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type CreateInput struct {
	Requester access.Principal
	UserID    uuid.UUID
	ReportID  *uuid.UUID
	Products  []string
	Routines  []string
	Notes     string
}

type CreateRecommendation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRecommendation(repo domain.Repository, audit *audit.Dispatcher) *CreateRecommendation {
	return &CreateRecommendation{repo: repo, audit: audit}
}

// Execute records a recommendation authored by the requester. Recommendations
// are immutable once written.
func (uc *CreateRecommendation) Execute(ctx context.Context, in CreateInput) (*models.Recommendation, error) {

	// --------------------------------------------------
	// Permission before anything is touched
	// --------------------------------------------------
	if err := access.CanAuthor(in.Requester, access.ActionCreateRecommendation).Err(); err != nil {
		return nil, err
	}

	if in.UserID == uuid.Nil {
		return nil, httperr.ErrValidation("user_id_required", "userId is required.")
	}

	target, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}

	if in.ReportID != nil {
		rep, err := uc.repo.GetReport(ctx, *in.ReportID)
		if err != nil {
			return nil, httperr.FromStore(err, "report_not_found", "Skin report not found.")
		}
		if rep.UserID != target.ID {
			return nil, httperr.ErrValidation("report_user_mismatch", "The skin report does not belong to this user.")
		}
	}

	rec := &models.Recommendation{
		UserID:        target.ID,
		GeneratedByID: in.Requester.ID,
		SkinReportID:  in.ReportID,
		Products:      nonNil(in.Products),
		Routines:      nonNil(in.Routines),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateRecommendation(ctx, rec); err != nil {
		return nil, httperr.Store(err)
	}

	rec.User = *target

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(in.Requester.ID),
		Action:   audit.ActionRecommendationCreated,
		Entity:   "recommendation",
		EntityID: audit.ID(rec.ID),
		Metadata: map[string]any{"userId": target.ID},
	})

	return rec, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package skinreport

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/skinreport"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ======================================================
// LIST MINE
// ======================================================

type ListMyReports struct {
	repo domain.Repository
}

func NewListMyReports(repo domain.Repository) *ListMyReports {
	return &ListMyReports{repo: repo}
}

func (uc *ListMyReports) Execute(ctx context.Context, requester access.Principal) ([]models.SkinReport, error) {
	reps, err := uc.repo.ListReportsByUser(ctx, requester.ID)
	if err != nil {
		return nil, httperr.Store(err)
	}
	return reps, nil
}

// ======================================================
// GET
// ======================================================

type GetReport struct {
	repo domain.Repository
}

func NewGetReport(repo domain.Repository) *GetReport {
	return &GetReport{repo: repo}
}

// Execute loads a report with its owner and recommendations, for the owner,
// an admin, or a cosmetologist associated with the owner.
func (uc *GetReport) Execute(
	ctx context.Context,
	requester access.Principal,
	reportID uuid.UUID,
) (*models.SkinReport, error) {

	rep, err := uc.repo.GetReport(ctx, reportID)
	if err != nil {
		return nil, httperr.FromStore(err, "report_not_found", "Skin report not found.")
	}

	decision := access.CanAccess(ctx, requester, access.Resource{
		OwnerID: rep.UserID,
		Kind:    access.KindSkinReport,
	}, uc.repo)
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return rep, nil
}

// ======================================================
// DOWNLOAD
// ======================================================

// RenderFunc turns a report into a document.
type RenderFunc func(rep *models.SkinReport) ([]byte, error)

type Document struct {
	Filename string
	Data     []byte
}

type DownloadReport struct {
	get      *GetReport
	render   RenderFunc
	filename func(rep *models.SkinReport) string
}

func NewDownloadReport(
	repo domain.Repository,
	render RenderFunc,
	filename func(rep *models.SkinReport) string,
) *DownloadReport {
	return &DownloadReport{
		get:      NewGetReport(repo),
		render:   render,
		filename: filename,
	}
}

func (uc *DownloadReport) Execute(
	ctx context.Context,
	requester access.Principal,
	reportID uuid.UUID,
) (*Document, error) {

	rep, err := uc.get.Execute(ctx, requester, reportID)
	if err != nil {
		return nil, err
	}

	data, err := uc.render(rep)
	if err != nil {
		return nil, httperr.ErrDependency("render_failed", err)
	}

	return &Document{Filename: uc.filename(rep), Data: data}, nil
}

// ======================================================
// LIST FOR USER
// ======================================================

// ListUserReports lets staff browse another user's reports. Every report is
// checked individually and only the allowed ones are returned.
type ListUserReports struct {
	repo domain.Repository
}

func NewListUserReports(repo domain.Repository) *ListUserReports {
	return &ListUserReports{repo: repo}
}

func (uc *ListUserReports) Execute(
	ctx context.Context,
	requester access.Principal,
	userID uuid.UUID,
) ([]models.SkinReport, error) {

	if err := access.CanAuthor(requester, access.ActionListUserReports).Err(); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetUser(ctx, userID); err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}

	reps, err := uc.repo.ListReportsByUser(ctx, userID)
	if err != nil {
		return nil, httperr.Store(err)
	}

	allowed := make([]models.SkinReport, 0, len(reps))
	for _, rep := range reps {
		decision := access.CanAccess(ctx, requester, access.Resource{
			OwnerID: rep.UserID,
			Kind:    access.KindSkinReport,
		}, uc.repo)
		if decision.Allowed {
			allowed = append(allowed, rep)
		}
	}

	return allowed, nil
}

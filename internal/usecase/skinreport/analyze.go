package skinreport

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kaagyebi/lumea-api/internal/analysis"
	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/skinreport"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/imaging"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/storage"
)

// MaxImageBytes caps skin report uploads.
const MaxImageBytes = 5 << 20

type AnalyzeInput struct {
	Requester access.Principal
	Filename  string
	Data      []byte
}

// AnalyzeSkinImage stores the picture, asks the analyzer for a reading and
// saves the resulting report.
type AnalyzeSkinImage struct {
	repo     domain.Repository
	storage  storage.Storage
	analyzer analysis.Analyzer
	audit    *audit.Dispatcher
}

func NewAnalyzeSkinImage(
	repo domain.Repository,
	store storage.Storage,
	analyzer analysis.Analyzer,
	audit *audit.Dispatcher,
) *AnalyzeSkinImage {
	return &AnalyzeSkinImage{
		repo:     repo,
		storage:  store,
		analyzer: analyzer,
		audit:    audit,
	}
}

func (uc *AnalyzeSkinImage) Execute(
	ctx context.Context,
	in AnalyzeInput,
) (*models.SkinReport, error) {

	// --------------------------------------------------
	// Permission + upload checks
	// --------------------------------------------------
	if err := access.CanAuthor(in.Requester, access.ActionUploadSkinReport).Err(); err != nil {
		return nil, err
	}

	if len(in.Data) == 0 {
		return nil, httperr.ErrValidation("image_required", "An image file is required.")
	}
	if len(in.Data) > MaxImageBytes {
		return nil, httperr.ErrValidation("image_too_large", "Images must be 5MB or smaller.")
	}
	if !imaging.IsImage(in.Data) {
		return nil, httperr.ErrValidation("unsupported_image", "Only jpg, jpeg, png and webp images are allowed.")
	}

	img, err := imaging.Normalize(in.Data)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_image", "The image could not be read.")
	}

	// --------------------------------------------------
	// Store
	// --------------------------------------------------
	obj, err := uc.storage.Upload(
		ctx,
		storage.FolderSkinReports,
		jpegName(in.Filename),
		imaging.ContentTypeJPEG,
		bytes.NewReader(img.Data),
	)
	if err != nil {
		return nil, httperr.ErrDependency("image_upload_failed", err)
	}

	// --------------------------------------------------
	// Analyze
	// --------------------------------------------------
	result, err := uc.analyzer.Analyze(ctx, analysis.Image{
		Data:        img.Data,
		ContentType: imaging.ContentTypeJPEG,
		URL:         obj.URL,
	})
	if err != nil {
		uc.discard(ctx, obj.Key)
		return nil, httperr.ErrDependency("analysis_failed", err)
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	rep := &models.SkinReport{
		UserID:   in.Requester.ID,
		ImageURL: obj.URL,
		Analysis: analysis.WithDefaults(result),
	}

	if err := uc.repo.CreateReport(ctx, rep); err != nil {
		uc.discard(ctx, obj.Key)
		return nil, httperr.Store(err)
	}

	if u, err := uc.repo.GetUser(ctx, rep.UserID); err == nil {
		rep.User = *u
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(in.Requester.ID),
		Action:   audit.ActionSkinReportCreated,
		Entity:   "skin_report",
		EntityID: audit.ID(rep.ID),
	})

	return rep, nil
}

func (uc *AnalyzeSkinImage) discard(ctx context.Context, key string) {
	if err := uc.storage.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove orphaned upload")
	}
}

func jpegName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "skin"
	}
	return base + ".jpg"
}

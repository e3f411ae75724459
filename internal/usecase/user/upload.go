package user

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/user"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/imaging"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/storage"
)

const (
	MaxPictureBytes     = 5 << 20
	MaxCertificateBytes = 10 << 20
)

// ======================================================
// PROFILE PICTURE
// ======================================================

type UploadProfilePicture struct {
	repo    domain.Repository
	storage storage.Storage
}

func NewUploadProfilePicture(repo domain.Repository, store storage.Storage) *UploadProfilePicture {
	return &UploadProfilePicture{repo: repo, storage: store}
}

// Execute crops the picture to a 400x400 JPEG and sets it as profile image.
func (uc *UploadProfilePicture) Execute(
	ctx context.Context,
	requester access.Principal,
	filename string,
	data []byte,
) (*models.User, error) {

	if len(data) == 0 {
		return nil, httperr.ErrValidation("image_required", "Profile picture is required.")
	}
	if len(data) > MaxPictureBytes {
		return nil, httperr.ErrValidation("image_too_large", "Images must be 5MB or smaller.")
	}
	if !imaging.IsImage(data) {
		return nil, httperr.ErrValidation("unsupported_image", "Only jpg, jpeg, png and webp images are allowed.")
	}

	img, err := imaging.Square(data, imaging.ProfilePictureSize)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_image", "The image could not be read.")
	}

	obj, err := uc.storage.Upload(ctx, storage.FolderProfilePictures, baseName(filename, "avatar")+".jpg", imaging.ContentTypeJPEG, bytes.NewReader(img.Data))
	if err != nil {
		return nil, httperr.ErrDependency("image_upload_failed", err)
	}

	u, err := uc.repo.UpdateFields(ctx, requester.ID, map[string]any{
		"profile_image": obj.URL,
	})
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}
	return u, nil
}

// ======================================================
// COSMETOLOGIST CREDENTIALS
// ======================================================

type CosmetologistInput struct {
	Requester       access.Principal
	AreaOfExpertise string
	Filename        string
	Certificate     []byte
}

type RegisterCosmetologist struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewRegisterCosmetologist(repo domain.Repository, store storage.Storage, audit *audit.Dispatcher) *RegisterCosmetologist {
	return &RegisterCosmetologist{repo: repo, storage: store, audit: audit}
}

// Execute stores the certificate and records the area of expertise on both
// the account and its public profile.
func (uc *RegisterCosmetologist) Execute(ctx context.Context, in CosmetologistInput) (*models.User, error) {
	if err := access.CanAuthor(in.Requester, access.ActionRegisterCosmetologist).Err(); err != nil {
		return nil, err
	}

	area := strings.TrimSpace(in.AreaOfExpertise)
	if area == "" {
		return nil, httperr.ErrValidation("area_of_expertise_required", "areaOfExpertise is required.")
	}
	if len(in.Certificate) == 0 {
		return nil, httperr.ErrValidation("certificate_required", "A certificate file is required.")
	}
	if len(in.Certificate) > MaxCertificateBytes {
		return nil, httperr.ErrValidation("certificate_too_large", "Certificates must be 10MB or smaller.")
	}

	contentType := imaging.ContentType(in.Certificate)
	ext, ok := certificateTypes[contentType]
	if !ok {
		return nil, httperr.ErrValidation("unsupported_certificate", "Only jpg, jpeg, png and pdf certificates are allowed.")
	}

	obj, err := uc.storage.Upload(ctx, storage.FolderCertificates, baseName(in.Filename, "certificate")+ext, contentType, bytes.NewReader(in.Certificate))
	if err != nil {
		return nil, httperr.ErrDependency("certificate_upload_failed", err)
	}

	u, err := uc.repo.UpdateFields(ctx, in.Requester.ID, map[string]any{
		"certificate":               obj.URL,
		"area_of_expertise":         area,
		"profile_certificate":       obj.URL,
		"profile_area_of_expertise": area,
	})
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(u.ID),
		Action:   audit.ActionCosmetologistProfile,
		Entity:   "user",
		EntityID: audit.ID(u.ID),
	})

	return u, nil
}

var certificateTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

func baseName(filename, fallback string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." || base == "/" {
		return fallback
	}
	return base
}

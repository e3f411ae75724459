package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/config"
)

// Storage keeps uploaded files and hands back a public URL for them.
type Storage interface {
	// Upload stores data under folder and returns its public URL and key.
	Upload(ctx context.Context, folder string, filename string, contentType string, data io.Reader) (Object, error)

	// Delete removes an object by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

type Object struct {
	Key string
	URL string
}

type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

const (
	FolderSkinReports     = "skin-reports"
	FolderProfilePictures = "profile-pictures"
	FolderCertificates    = "certificates"
)

// New picks the backend named by the configuration.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch Type(cfg.StorageType) {
	case TypeLocal:
		return NewLocalStorage(cfg.StorageLocalPath, cfg.PublicBaseURL+LocalURLPrefix)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("AWS_S3_BUCKET is required for s3 storage")
		}
		return NewS3Storage(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// objectKey builds a unique key: folder/ab/<uuid>_<name><ext>.
func objectKey(folder string, fileID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	base = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', '?', '#', '%':
			return '_'
		}
		return r
	}, base)

	id := fileID.String()
	return fmt.Sprintf("%s/%s/%s_%s%s", folder, id[:2], id, base, ext)
}

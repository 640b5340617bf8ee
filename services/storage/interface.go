package storage

import (
	"context"
	"time"

	"physiocare/models"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for medical file storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	UploadRecord(ctx context.Context, localFilePath string, kind models.AttachmentKind) (string, error)
	UploadPrivateRecord(ctx context.Context, localFilePath string, kind models.AttachmentKind, encryptionKey string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl implements StorageService backed by Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// Package storage persists export archive blobs on the local filesystem or S3
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Storage is the blob backend for export archives
type Storage interface {
	// Upload stores an archive body and returns the storage path
	Upload(ctx context.Context, archiveID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves an archive body by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes an archive body by storage path
	Delete(ctx context.Context, storagePath string) error
}

// BackendType selects the storage implementation
type BackendType string

const (
	BackendLocal BackendType = "local"
	BackendS3    BackendType = "s3"
)

// Config holds storage configuration
type Config struct {
	Type         BackendType
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorageFromEnv builds a storage backend from environment variables,
// defaulting to local disk for development
func NewStorageFromEnv() (Storage, error) {
	backend := BackendType(os.Getenv("STORAGE_TYPE"))
	if backend == "" {
		backend = BackendLocal
	}

	switch backend {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/exports"
		}
		return NewLocalStorage(localPath)

	case BackendS3:
		cfg := Config{
			Type:         BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", backend)
	}
}

// archivePath derives a unique storage path for an archive. The two-character
// prefix spreads objects across key prefixes.
func archivePath(archiveID uuid.UUID, filename string) string {
	id := archiveID.String()
	return fmt.Sprintf("%s/%s_%s", id[:2], id, filename)
}

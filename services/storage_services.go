package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"api/config"
	"api/logger"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// StorageService uploads binary objects to the thumbnails bucket and
// resolves their public URLs
type StorageService interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	PublicURL(filename string) string
}

type gcsStorageService struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

// NewStorageService builds a StorageService backed by the configured object
// storage bucket. An emulator endpoint can be set for local development.
func NewStorageService(ctx context.Context) (StorageService, error) {
	var opts []option.ClientOption
	if config.StorageEmulatorHost != "" {
		opts = append(opts,
			option.WithoutAuthentication(),
			option.WithEndpoint(strings.TrimRight(config.StorageEmulatorHost, "/")+"/storage/v1/"),
		)
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	logger.L.Infow("object storage initialized",
		"bucket", config.ThumbnailsBucket,
		"emulator_host", config.StorageEmulatorHost,
	)

	return &gcsStorageService{
		client:        client,
		bucket:        config.ThumbnailsBucket,
		publicBaseURL: strings.TrimRight(config.StoragePublicBaseUrl, "/"),
	}, nil
}

// Upload writes the object under the given filename and returns its public
// URL. Filenames are randomized by the caller; collisions are not retried.
func (s *gcsStorageService) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(filename).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %w", err)
	}

	return s.PublicURL(filename), nil
}

// PublicURL resolves the publicly readable URL of an uploaded object
func (s *gcsStorageService) PublicURL(filename string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, filename)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, filename)
}

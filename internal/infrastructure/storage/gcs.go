package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrStorageNotConfigured = errors.New("document storage not configured")

// GCSService stores application documents in Google Cloud Storage.
type GCSService struct {
	client     *storage.Client
	bucketName string
}

// NewGCSService creates a client using credentialsPath, or the ambient credentials when empty.
func NewGCSService(ctx context.Context, bucketName, credentialsPath string) (*GCSService, error) {
	if bucketName == "" {
		return nil, ErrStorageNotConfigured
	}

	var client *storage.Client
	var err error
	if credentialsPath != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	log.Info().Str("bucket", bucketName).Msg("[document][storage] gcs client initialized")
	return &GCSService{client: client, bucketName: bucketName}, nil
}

func (s *GCSService) Close() error {
	return s.client.Close()
}

// Upload writes reader to objectPath and returns its gs:// location.
func (s *GCSService) Upload(ctx context.Context, objectPath, contentType string, reader io.Reader) (string, error) {
	writer := s.client.Bucket(s.bucketName).Object(objectPath).NewWriter(ctx)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	writer.ContentType = contentType

	if _, err := io.Copy(writer, reader); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return s.location(objectPath), nil
}

// SignedURL returns a V4 signed GET URL for a stored location.
func (s *GCSService) SignedURL(_ context.Context, location string, expiration time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}
	url, err := s.client.Bucket(s.bucketName).SignedURL(s.objectPath(location), opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}

func (s *GCSService) Delete(ctx context.Context, location string) error {
	err := s.client.Bucket(s.bucketName).Object(s.objectPath(location)).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *GCSService) location(objectPath string) string {
	return fmt.Sprintf("gs://%s/%s", s.bucketName, objectPath)
}

func (s *GCSService) objectPath(location string) string {
	return strings.TrimPrefix(location, fmt.Sprintf("gs://%s/", s.bucketName))
}

// DocumentObjectPath builds "applications/{number}/{category}/{documentID}-v{version}{ext}".
func DocumentObjectPath(applicationNumber, category, documentID string, version int, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	cat := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(category), " ", "-"))
	if cat == "" {
		cat = "other"
	}
	return fmt.Sprintf("applications/%s/%s/%s-v%d%s", applicationNumber, cat, documentID, version, ext)
}

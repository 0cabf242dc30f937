package interfaces

import (
	"context"
	"io"
	"time"
)

// IFileStorage stores document bytes outside DynamoDB. Locations are opaque to callers.
type IFileStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, reader io.Reader) (location string, err error)
	SignedURL(ctx context.Context, location string, expiration time.Duration) (string, error)
	Delete(ctx context.Context, location string) error
}

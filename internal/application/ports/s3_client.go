package ports

import (
	"context"
	"io"
)

type S3Client interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
	PresignGetURL(ctx context.Context, key string) (string, error)
	GetPublicURL(key string) string
	GetBucket() string
}

// Package storage keeps uploaded post images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"nativoseo/config"
	"nativoseo/internal/domain/lifecycle"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultSignedURLExpiry = 24 * time.Hour

// BlobStorage implements service.ImageStorage on top of a blob bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	expiry        time.Duration
	logger        *slog.Logger
}

var _ service.ImageStorage = (*BlobStorage)(nil)

// Params holds dependencies for New, injected by Fx.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (*BlobStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	storage := NewBlobStorage(bucket, cfg, params.Logger)

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("Image bucket opened", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	return storage, nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *BlobStorage {
	s := &BlobStorage{
		bucket: bucket,
		expiry: defaultSignedURLExpiry,
		logger: logger,
	}
	if cfg != nil {
		s.publicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
		if cfg.SignedURLExpiry > 0 {
			s.expiry = cfg.SignedURLExpiry
		}
	}

	return s
}

// Put streams r into the bucket under key. A failed read aborts the write, so
// nothing is left under key.
func (s *BlobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit %s", key)
	}

	return nil
}

// URL returns a signed GET URL, or publicBaseURL/key when the driver cannot sign.
func (s *BlobStorage) URL(ctx context.Context, key string) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: s.expiry,
		Method: "GET",
	})
	if err == nil {
		return signed, nil
	}

	if gcerrors.Code(err) != gcerrors.Unimplemented {
		s.logger.WarnContext(ctx, "Signing image URL failed", slog.String("key", key), slog.Any("error", err))
	}

	if s.publicBaseURL == "" {
		return "", errors.Wrap(err, "bucket cannot sign URLs and storage.publicBaseUrl is empty")
	}

	return s.publicBaseURL + "/" + key, nil
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}

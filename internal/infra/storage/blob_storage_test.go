package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"nativoseo/config"
	"nativoseo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_PutAndPublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, &config.StorageConfig{PublicBaseURL: "https://cdn.example/images/"}, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, "a.png", "image/png", strings.NewReader("png-bytes")))

	attrs, err := bucket.Attributes(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	url, err := storage.URL(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/images/a.png", url)
}

func TestBlobStorage_PutAbortsOnReadError(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, &config.StorageConfig{}, newDiscardLogger())
	ctx := context.Background()

	body := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("too big")))
	err := storage.Put(ctx, "partial.png", "image/png", body)
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "partial.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_URLWithoutPublicBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, &config.StorageConfig{}, newDiscardLogger())

	_, err := storage.URL(context.Background(), "a.png")

	require.Error(t, err)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://images", redactBucketURL("s3://images?endpoint=http://minio:9000&awssdk=v2"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}

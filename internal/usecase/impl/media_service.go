package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"nativoseo/config"
	deliverycontext "nativoseo/internal/delivery/context"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"
	"nativoseo/internal/usecase"
	"nativoseo/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMaxUploadBytes = 10 << 20

type mediaService struct {
	storage  service.ImageStorage
	maxBytes int64
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService.
type MediaServiceParams struct {
	fx.In

	Config  *config.Config
	Storage service.ImageStorage
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxBytes = params.Config.Storage.MaxUploadBytes
	}

	return &mediaService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores the image under a random key and returns a URL for it.
func (srv *mediaService) UploadImage(ctx context.Context, userID uuid.UUID, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrUnsupportedMedia
	}
	if input.Size > srv.maxBytes {
		return nil, srv.tooLarge()
	}

	key := uuid.NewString() + imageExtension(input.Filename, contentType)

	body := &cappedReader{r: io.LimitReader(input.Body, srv.maxBytes+1), max: srv.maxBytes}
	if err := srv.storage.Put(ctx, key, contentType, body); err != nil {
		if errors.Is(err, errUploadTooLarge) || body.n > srv.maxBytes {
			return nil, srv.tooLarge()
		}

		return nil, domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	url, err := srv.storage.URL(ctx, key)
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("userID", userID.String()),
		slog.String("key", key),
		slog.Int64("size", body.n),
	)

	return &usecase.UploadImageOutput{
		URL:         url,
		Filename:    input.Filename,
		ContentType: contentType,
		Size:        body.n,
	}, nil
}

func imageExtension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return fmt.Sprintf(".%s", strings.TrimPrefix(contentType, "image/"))
}

var errUploadTooLarge = errors.New("upload exceeds size limit")

// cappedReader fails the read that crosses max, so storage aborts the write.
type cappedReader struct {
	r   io.Reader
	max int64
	n   int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.n > c.max {
		return n, errUploadTooLarge
	}

	return n, err
}

func (srv *mediaService) tooLarge() error {
	return domainerrors.ErrMediaTooLarge.WithDetails("máximo " + util.FormatBytes(srv.maxBytes))
}

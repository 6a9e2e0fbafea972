package handler

import (
	"mime"
	"net/http"
	"path/filepath"

	"nativoseo/internal/delivery/api/response"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadField = "file"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Usecase usecase.MediaUsecase
}

// MediaHandler receives post images.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{uc: params.Usecase}
}

// UploadImage stores the multipart "file" field and returns its URL.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("falta el archivo"))
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		if byExt := mime.TypeByExtension(filepath.Ext(fh.Filename)); byExt != "" {
			contentType = byExt
		}
	}

	out, err := h.uc.UploadImage(c.Request().Context(), userID, &usecase.UploadImageInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out)
}

package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	domainerrors "nativoseo/internal/domain/errors"
	mockUc "nativoseo/internal/mocks/usecase"
	"nativoseo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMediaFixture(t *testing.T) (*testServer, *mockUc.MockMediaUsecase) {
	t.Helper()

	srv := newTestServer(t)
	uc := mockUc.NewMockMediaUsecase(t)
	h := NewMediaHandler(MediaHandlerParams{Usecase: uc})

	srv.e.POST("/upload-image", h.UploadImage, srv.auth)

	return srv, uc
}

func newUploadRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set(echo.HeaderContentType, contentType)
	}
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestMediaHandler_UploadImage(t *testing.T) {
	t.Run("hands the file to the usecase", func(t *testing.T) {
		srv, uc := newMediaFixture(t)
		content := []byte("\x89PNG fake")
		uc.EXPECT().UploadImage(mock.Anything, srv.userID, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			data, err := io.ReadAll(in.Body)

			return err == nil && bytes.Equal(data, content) &&
				in.Filename == "pan.png" && in.ContentType == "image/png" && in.Size == int64(len(content))
		})).Return(&usecase.UploadImageOutput{
			URL:         "https://cdn.example/abc.png",
			Filename:    "pan.png",
			ContentType: "image/png",
			Size:        int64(len(content)),
		}, nil)

		rec := srv.do(t, newUploadRequest(t, "file", "pan.png", "image/png", content), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://cdn.example/abc.png", decodeBody[usecase.UploadImageOutput](t, rec).URL)
	})

	t.Run("content type falls back to the extension", func(t *testing.T) {
		srv, uc := newMediaFixture(t)
		uc.EXPECT().UploadImage(mock.Anything, srv.userID, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			return in.ContentType == "image/jpeg"
		})).Return(&usecase.UploadImageOutput{URL: "u"}, nil)

		rec := srv.do(t, newUploadRequest(t, "file", "pan.jpg", "", []byte("jpeg")), true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non image is rejected", func(t *testing.T) {
		srv, uc := newMediaFixture(t)
		uc.EXPECT().UploadImage(mock.Anything, srv.userID, mock.Anything).Return(nil, domainerrors.ErrUnsupportedMedia)

		rec := srv.do(t, newUploadRequest(t, "file", "notas.txt", "text/plain", []byte("hola")), true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "UNSUPPORTED_MEDIA", decodeError(t, rec).Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		srv, _ := newMediaFixture(t)

		rec := srv.do(t, newUploadRequest(t, "imagen", "pan.png", "image/png", []byte("x")), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/upload"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Upload(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, userID, data)
	return args.String(0), args.Error(1)
}

func setupAPI(t *testing.T, svc upload.Servicer, userID uuid.UUID) humatest.TestAPI {
	_, api := humatest.New(t)
	asUser := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	}
	NewHandler(svc, slog.Default(), huma.Middlewares{asUser}).SetupRoutes(api)
	return api
}

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile(field, "image.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	userID := uuid.New()
	svc := new(MockService)
	api := setupAPI(t, svc, userID)

	payload := []byte("fake image bytes")
	svc.On("Upload", mock.Anything, userID, payload).Return("https://res.cloudinary.com/demo/image.png", nil)

	body, contentType := multipartBody(t, "file", payload)
	resp := api.Post("/api/uploads", "Content-Type: "+contentType, body)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"url":"https://res.cloudinary.com/demo/image.png"`)
	svc.AssertExpectations(t)
}

func TestHandler_Upload_MissingFile(t *testing.T) {
	svc := new(MockService)
	api := setupAPI(t, svc, uuid.New())

	body, contentType := multipartBody(t, "other", []byte("x"))
	resp := api.Post("/api/uploads", "Content-Type: "+contentType, body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "File is required")
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Upload_NotConfigured(t *testing.T) {
	userID := uuid.New()
	svc := new(MockService)
	api := setupAPI(t, svc, userID)

	svc.On("Upload", mock.Anything, userID, mock.Anything).Return("", upload.ErrNotConfigured)

	body, contentType := multipartBody(t, "file", []byte("x"))
	resp := api.Post("/api/uploads", "Content-Type: "+contentType, body)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

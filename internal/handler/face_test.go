package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwallet/walletd/internal/domain"
)

type stubFaceService struct {
	registerErr error
	match       bool
	verifyErr   error

	gotName  string
	gotImage []byte
}

func (s *stubFaceService) Register(ctx context.Context, name string, image []byte) error {
	s.gotName = name
	s.gotImage = image
	return s.registerErr
}

func (s *stubFaceService) Verify(ctx context.Context, image []byte) (bool, error) {
	s.gotImage = image
	return s.match, s.verifyErr
}

func multipartBody(t *testing.T, name string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if name != "" {
		require.NoError(t, mw.WriteField("name", name))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", "face.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestFaceRegisterEndpoint(t *testing.T) {
	svc := &stubFaceService{}
	h := NewFaceHandler(svc)

	body, contentType := multipartBody(t, "Ada", []byte("jpeg"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/face/register", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", svc.gotName)
	assert.Equal(t, []byte("jpeg"), svc.gotImage)
}

func TestFaceRegisterRequiresName(t *testing.T) {
	h := NewFaceHandler(&stubFaceService{})

	body, contentType := multipartBody(t, "", []byte("jpeg"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/face/register", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestFaceVerifyEndpoint(t *testing.T) {
	svc := &stubFaceService{match: true}
	h := NewFaceHandler(svc)

	body, contentType := multipartBody(t, "", []byte("jpeg"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/face/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Verify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"match":true`)
}

func TestFaceVerifyRequiresImage(t *testing.T) {
	h := NewFaceHandler(&stubFaceService{})

	body, contentType := multipartBody(t, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/face/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Verify(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFaceBackendFailureMapsToBadGateway(t *testing.T) {
	svc := &stubFaceService{verifyErr: domain.ErrFaceUnavailable}
	h := NewFaceHandler(svc)

	body, contentType := multipartBody(t, "", []byte("jpeg"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/face/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Verify(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "FACE_SERVICE_UNAVAILABLE")
}

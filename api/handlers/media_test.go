package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcanvas/mailcanvas/internal/models"
)

type fakeMediaService struct {
	assets map[string]*models.MediaAsset
	stored map[string][]byte
}

func newFakeMediaService() *fakeMediaService {
	return &fakeMediaService{
		assets: make(map[string]*models.MediaAsset),
		stored: make(map[string][]byte),
	}
}

func (f *fakeMediaService) Upload(ctx context.Context, filename, contentType string, data []byte) (*models.MediaAsset, error) {
	asset := &models.MediaAsset{
		ID:          "media_test1",
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
		PublicURL:   "https://cdn.example.com/media_test1/" + filename,
	}
	f.assets[asset.ID] = asset
	f.stored[asset.ID] = data
	return asset, nil
}

func (f *fakeMediaService) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	return f.assets[id], nil
}

func (f *fakeMediaService) Download(ctx context.Context, id string) (*models.MediaAsset, []byte, error) {
	asset, ok := f.assets[id]
	if !ok {
		return nil, nil, nil
	}
	return asset, f.stored[id], nil
}

func (f *fakeMediaService) Delete(ctx context.Context, id string) error {
	delete(f.assets, id)
	delete(f.stored, id)
	return nil
}

func setupMediaRouter(svc *fakeMediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMediaHandler(svc)

	r := gin.New()
	r.POST("/v1/media", handler.Upload())
	r.GET("/v1/media/:id", handler.Get())
	r.GET("/v1/media/:id/content", handler.Content())
	return r
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestMediaHandler_UploadResponseShape(t *testing.T) {
	// Arrange
	router := setupMediaRouter(newFakeMediaService())
	body, contentType := multipartUpload(t, "hero.png", "image/png", []byte("fake png bytes"))

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Success bool               `json:"success"`
		URL     string             `json:"url"`
		Asset   *models.MediaAsset `json:"asset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "https://cdn.example.com/media_test1/hero.png", response.URL)
	require.NotNil(t, response.Asset)
	assert.Equal(t, "hero.png", response.Asset.Filename)
}

func TestMediaHandler_UploadMissingFile(t *testing.T) {
	router := setupMediaRouter(newFakeMediaService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/media", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_ContentStreamsStoredBytes(t *testing.T) {
	svc := newFakeMediaService()
	router := setupMediaRouter(svc)
	_, err := svc.Upload(context.Background(), "hero.png", "image/png", []byte("fake png bytes"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/media/media_test1/content", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hero.png")
	assert.Equal(t, []byte("fake png bytes"), w.Body.Bytes())
}

func TestMediaHandler_ContentUnknownID(t *testing.T) {
	router := setupMediaRouter(newFakeMediaService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/media/media_missing/content", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"candidate-intake-api/internal/api/handlers"
	"candidate-intake-api/internal/api/routes"
	"candidate-intake-api/internal/storage/objects"
	"candidate-intake-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUploadHandler is a mock implementation of UploadHandlerInterface
type MockUploadHandler struct {
	mock.Mock
}

func (m *MockUploadHandler) UploadHeadshot(c *gin.Context) { m.Called(c) }
func (m *MockUploadHandler) UploadResume(c *gin.Context)   { m.Called(c) }
func (m *MockUploadHandler) UploadVideo(c *gin.Context)    { m.Called(c) }
func (m *MockUploadHandler) RemoveHeadshot(c *gin.Context) { m.Called(c) }
func (m *MockUploadHandler) RemoveResume(c *gin.Context)   { m.Called(c) }
func (m *MockUploadHandler) RemoveVideo(c *gin.Context)    { m.Called(c) }

var _ handlers.UploadHandlerInterface = (*MockUploadHandler)(nil)

// MockObjectStore is a mock type for the objects.Store interface
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, bucket, name, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Remove(ctx context.Context, bucket, name string) error {
	args := m.Called(ctx, bucket, name)
	return args.Error(0)
}

func (m *MockObjectStore) PublicURL(bucket, name string) string {
	args := m.Called(bucket, name)
	return args.String(0)
}

// Ensure mock implements the interface
var _ objects.Store = (*MockObjectStore)(nil)

// --- Helpers ---

func setupTestRouterWithUploadMocks() (*gin.Engine, *MockObjectStore) {
	gin.SetMode(gin.TestMode)
	mockStore := new(MockObjectStore)
	handler := handlers.NewUploadHandler(mockStore, "headshots", "resumes", "videos")
	router := gin.New()
	routes.RegisterUploadRoutes(router.Group("/api/v1"), handler)
	return router, mockStore
}

// multipartUpload builds a request body with a session_id field and one file
// part carrying an explicit Content-Type.
func multipartUpload(t *testing.T, sessionID, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if sessionID != "" {
		err := writer.WriteField("session_id", sessionID)
		assert.NoError(t, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestRegisterUploadRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockUploadHandler)

	router := gin.New()
	testGroup := router.Group("/api/v1")

	routes.RegisterUploadRoutes(testGroup, mockHandler)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPost, "/api/v1/uploads/headshots"},
		{http.MethodPost, "/api/v1/uploads/resumes"},
		{http.MethodPost, "/api/v1/uploads/videos"},
		{http.MethodDelete, "/api/v1/uploads/headshots/:name"},
		{http.MethodDelete, "/api/v1/uploads/resumes/:name"},
		{http.MethodDelete, "/api/v1/uploads/videos/:name"},
	}

	registeredRoutes := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")

	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path],
			"Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestUploadHandler_UploadHeadshot(t *testing.T) {
	router, mockStore := setupTestRouterWithUploadMocks()

	t.Run("Success", func(t *testing.T) {
		mockStore.On("Upload", mock.Anything, "headshots",
			mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "session-1-") && strings.HasSuffix(name, ".png")
			}),
			"image/png", mock.Anything).
			Return("https://storage.example.com/object/public/headshots/session-1-123.png", nil).Once()

		body, contentType := multipartUpload(t, "session-1", "me.png", "image/png", []byte("fake png bytes"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.UploadResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(response.Name, "session-1-"))
		assert.Contains(t, response.URL, "/object/public/headshots/")
		mockStore.AssertExpectations(t)
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		mockStore.Calls = nil
		body, contentType := multipartUpload(t, "", "me.png", "image/png", []byte("fake png bytes"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "session_id")
		mockStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing File", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		assert.NoError(t, writer.WriteField("session_id", "session-1"))
		assert.NoError(t, writer.Close())

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", writer.FormDataContentType())
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "file")
	})

	t.Run("Oversized File", func(t *testing.T) {
		mockStore.Calls = nil
		oversized := bytes.Repeat([]byte("a"), 5<<20+1)
		body, contentType := multipartUpload(t, "session-1", "huge.png", "image/png", oversized)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "5 MiB")
		mockStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		mockStore.Calls = nil
		body, contentType := multipartUpload(t, "session-1", "me.gif", "image/gif", []byte("fake gif bytes"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "image/gif")
		mockStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStore.On("Upload", mock.Anything, "headshots", mock.Anything, "image/png", mock.Anything).
			Return("", errors.New("storage unreachable")).Once()

		body, contentType := multipartUpload(t, "session-1", "me.png", "image/png", []byte("fake png bytes"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/headshots", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestUploadHandler_RemoveHeadshot(t *testing.T) {
	router, mockStore := setupTestRouterWithUploadMocks()

	t.Run("Success", func(t *testing.T) {
		mockStore.On("Remove", mock.Anything, "headshots", "session-1-123.png").Return(nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/api/v1/uploads/headshots/session-1-123.png", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStore.On("Remove", mock.Anything, "headshots", "session-1-123.png").
			Return(errors.New("storage unreachable")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/api/v1/uploads/headshots/session-1-123.png", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestUploadHandler_UploadResume(t *testing.T) {
	router, mockStore := setupTestRouterWithUploadMocks()

	t.Run("Success", func(t *testing.T) {
		mockStore.On("Upload", mock.Anything, "resumes",
			mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "session-1-") && strings.HasSuffix(name, ".pdf")
			}),
			"application/pdf", mock.Anything).
			Return("https://storage.example.com/object/public/resumes/session-1-123.pdf", nil).Once()

		body, contentType := multipartUpload(t, "session-1", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/resumes", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestUploadHandler_UploadVideo(t *testing.T) {
	router, mockStore := setupTestRouterWithUploadMocks()

	t.Run("Success", func(t *testing.T) {
		mockStore.On("Upload", mock.Anything, "videos",
			mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "session-1-") && strings.HasSuffix(name, ".webm")
			}),
			"video/webm", mock.Anything).
			Return("https://storage.example.com/object/public/videos/session-1-123.webm", nil).Once()

		body, contentType := multipartUpload(t, "session-1", "intro.webm", "video/webm", []byte("fake webm bytes"))

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/uploads/videos", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockStore.AssertExpectations(t)
	})
}

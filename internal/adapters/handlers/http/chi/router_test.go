package chi_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sk9212k/opaltech-aws/internal/adapters/handlers/http/chi"
	"github.com/sk9212k/opaltech-aws/internal/adapters/handlers/http/chi/v1/file"
	"github.com/sk9212k/opaltech-aws/internal/adapters/storage"
	"github.com/sk9212k/opaltech-aws/internal/config"
	fileservice "github.com/sk9212k/opaltech-aws/internal/core/service/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(mockStorage *storage.MockStorage, env string) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := file.NewFileHandlerV1(fileservice.NewMockFileService(), config.FileUploadConfig{}, discardLogger)
	return chi.NewRouter(discardLogger, handler, mockStorage, env, time.Minute)
}

func TestRouter_Health(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		mockStorage.On("Ping", mock.Anything).Return(nil)
		h := newRouter(mockStorage, "DEV")
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var resp chi.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Storage)
		mockStorage.AssertExpectations(t)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockStorage()
		mockStorage.On("Ping", mock.Anything).Return(errors.New("connection refused"))
		h := newRouter(mockStorage, "DEV")
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp chi.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unreachable", resp.Storage)
	})
}

func TestRouter_CORS(t *testing.T) {

	preflight := func() *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/api/FileUpload/upload", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		return req
	}

	t.Run("enabled outside prod", func(t *testing.T) {
		h := newRouter(storage.NewMockStorage(), "DEV")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, preflight())

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled in prod", func(t *testing.T) {
		h := newRouter(storage.NewMockStorage(), "prod")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, preflight())

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_UploadPathIgnoresCase(t *testing.T) {
	for _, path := range []string{"/api/FileUpload/upload", "/api/fileupload/upload", "/API/FILEUPLOAD/UPLOAD"} {
		t.Run(path, func(t *testing.T) {
			// Arrange
			h := newRouter(storage.NewMockStorage(), "DEV")
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")

			// Act
			h.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "No file uploaded.")
		})
	}
}

func TestRouter_UnknownMethod(t *testing.T) {
	h := newRouter(storage.NewMockStorage(), "DEV")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/FileUpload/upload", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

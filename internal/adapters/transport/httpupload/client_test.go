package httpupload_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sk9212k/opaltech-aws/internal/adapters/filesource"
	"github.com/sk9212k/opaltech-aws/internal/adapters/transport/httpupload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type receivedFile struct {
	path        string
	fileName    string
	contentType string
	data        string
}

func newUploadServer(t *testing.T, status int, body string) (*httptest.Server, *receivedFile) {
	t.Helper()
	received := &receivedFile{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.path = r.URL.Path
		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			data, _ := io.ReadAll(file)
			received.fileName = header.Filename
			received.contentType = header.Header.Get("Content-Type")
			received.data = string(data)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, received
}

func TestClient_Upload(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		response, _ := json.Marshal(map[string]string{
			"message":  "File uploaded successfully",
			"fileName": "report.csv",
			"key":      "report.csv",
		})
		server, received := newUploadServer(t, http.StatusOK, string(response))
		client, err := httpupload.NewClient(server.URL, 0, discardLogger())
		require.NoError(t, err)

		var mu sync.Mutex
		var progress [][2]int64
		onProgress := func(sent, total int64) {
			mu.Lock()
			defer mu.Unlock()
			progress = append(progress, [2]int64{sent, total})
		}

		// Act
		receipt, err := client.Upload(context.Background(), filesource.NewMemory("report.csv", []byte("id,amount\n1,10\n")), onProgress)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "File uploaded successfully", receipt.Message)
		assert.Equal(t, "report.csv", receipt.FileName)
		assert.Equal(t, "report.csv", receipt.Key)

		assert.Equal(t, "/api/FileUpload/upload", received.path)
		assert.Equal(t, "report.csv", received.fileName)
		assert.Equal(t, "text/csv", received.contentType)
		assert.Equal(t, "id,amount\n1,10\n", received.data)

		mu.Lock()
		defer mu.Unlock()
		require.NotEmpty(t, progress)
		last := progress[len(progress)-1]
		assert.Equal(t, last[1], last[0])
		for i := 1; i < len(progress); i++ {
			assert.GreaterOrEqual(t, progress[i][0], progress[i-1][0])
		}
	})

	t.Run("unknown extension is sniffed", func(t *testing.T) {
		// Arrange
		server, received := newUploadServer(t, http.StatusOK, `{"fileName":"order.edi","key":"order.edi"}`)
		client, err := httpupload.NewClient(server.URL+"/", 0, discardLogger())
		require.NoError(t, err)

		// Act
		_, err = client.Upload(context.Background(), filesource.NewMemory("order.edi", []byte("UNA:+.? 'UNB+UNOC:3'")), nil)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/api/FileUpload/upload", received.path)
		assert.Equal(t, "text/plain; charset=utf-8", received.contentType)
	})

	t.Run("error - non 2xx status", func(t *testing.T) {
		// Arrange
		server, _ := newUploadServer(t, http.StatusBadRequest, "Invalid file type. Allowed types: .xml, .csv, .json, .edi\n")
		client, err := httpupload.NewClient(server.URL, 0, discardLogger())
		require.NoError(t, err)

		// Act
		receipt, err := client.Upload(context.Background(), filesource.NewMemory("data.xml", []byte("<a/>")), nil)

		// Assert
		assert.Nil(t, receipt)
		var statusErr *httpupload.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "upload failed with status 400: Invalid file type. Allowed types: .xml, .csv, .json, .edi", err.Error())
	})

	t.Run("error - server error", func(t *testing.T) {
		server, _ := newUploadServer(t, http.StatusInternalServerError, "Internal server error: storage write failed: Access Denied")
		client, err := httpupload.NewClient(server.URL, 0, discardLogger())
		require.NoError(t, err)

		_, err = client.Upload(context.Background(), filesource.NewMemory("data.xml", []byte("<a/>")), nil)

		assert.ErrorContains(t, err, "status 500")
		assert.ErrorContains(t, err, "Access Denied")
	})

	t.Run("error - invalid json", func(t *testing.T) {
		server, _ := newUploadServer(t, http.StatusOK, "not json")
		client, err := httpupload.NewClient(server.URL, 0, discardLogger())
		require.NoError(t, err)

		_, err = client.Upload(context.Background(), filesource.NewMemory("data.xml", []byte("<a/>")), nil)

		assert.ErrorContains(t, err, "failed to decode response")
	})

	t.Run("error - timeout", func(t *testing.T) {
		// Arrange
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)
		client, err := httpupload.NewClient(server.URL, 50*time.Millisecond, discardLogger())
		require.NoError(t, err)

		// Act
		_, err = client.Upload(context.Background(), filesource.NewMemory("data.xml", []byte("<a/>")), nil)

		// Assert
		assert.ErrorContains(t, err, "failed to send data.xml")
	})

	t.Run("error - unreadable source", func(t *testing.T) {
		client, err := httpupload.NewClient("http://127.0.0.1:1", 0, discardLogger())
		require.NoError(t, err)

		_, err = client.Upload(context.Background(), brokenSource{}, nil)

		assert.ErrorContains(t, err, "failed to open broken.csv")
	})
}

type brokenSource struct{}

func (brokenSource) Name() string { return "broken.csv" }

func (brokenSource) Size() int64 { return 1 }

func (brokenSource) Open() (io.ReadCloser, error) {
	return nil, errors.New("permission denied")
}

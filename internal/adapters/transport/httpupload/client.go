package httpupload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

const (
	formFieldFile    = "file"
	maxResponseBytes = 1 << 20
)

// StatusError is returned when the endpoint answers with a non 2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("upload failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("upload failed with status %d: %s", e.StatusCode, body)
}

type uploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// Client posts files to the upload endpoint, one multipart request per file
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the server at baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	endpoint, err := url.JoinPath(baseURL, "api", "FileUpload", "upload")
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Upload sends src under the "file" form field and reports request bytes sent through onProgress
func (c *Client) Upload(ctx context.Context, src domain.FileSource, onProgress port.ProgressFunc) (*port.UploadReceipt, error) {
	body, contentType, err := buildBody(src)
	if err != nil {
		return nil, err
	}

	total := int64(body.Len())
	reader := &progressReader{reader: bytes.NewReader(body.Bytes()), total: total, onProgress: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending file", "file_name", src.Name(), "request_bytes", total)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", src.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var decoded uploadResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &port.UploadReceipt{
		Message:  decoded.Message,
		FileName: decoded.FileName,
		Key:      decoded.Key,
	}, nil
}

// buildBody buffers the whole multipart request so its length is known up front
func buildBody(src domain.FileSource) (*bytes.Buffer, string, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     formFieldFile,
		"filename": src.Name(),
	}))
	header.Set("Content-Type", partContentType(src.Name(), data))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write form part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

var contentTypes = map[string]string{
	".xml":  "application/xml",
	".csv":  "text/csv",
	".json": "application/json",
}

// partContentType falls back to sniffing for extensions without a registered type (.edi)
func partContentType(name string, data []byte) string {
	if byExt, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return byExt
	}
	return mimetype.Detect(data).String()
}

type progressReader struct {
	reader     io.Reader
	sent       int64
	total      int64
	onProgress port.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.onProgress != nil {
			p.onProgress(p.sent, p.total)
		}
	}
	return n, err
}

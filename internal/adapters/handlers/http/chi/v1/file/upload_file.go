package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

const (
	formFieldFile     = "file"
	maxMultipartInRAM = 32 << 20
	msgNoFileUploaded = "No file uploaded."
	msgUploadSuccess  = "File uploaded successfully"
)

// V1UploadFileResponse is the response to a stored upload
type V1UploadFileResponse struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// UploadFileV1 accepts one multipart file under the "file" field and writes it to storage
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {

	if limit := h.maxRequestBytes(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	incoming, err := readIncomingFile(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, h.tooLargeMessage(), http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("no file in upload request", "error", err)
		http.Error(w, msgNoFileUploaded, http.StatusBadRequest)
		return
	}

	stored, uploadErr := h.fileService.UploadFile(r.Context(), *incoming)
	switch {
	case errors.Is(uploadErr, domain.ErrNoFileUploaded):
		http.Error(w, msgNoFileUploaded, http.StatusBadRequest)
		return
	case errors.Is(uploadErr, domain.ErrInvalidFileType):
		h.logger.Warn("invalid request", "file_name", incoming.FileName, "error", uploadErr)
		http.Error(w, fmt.Sprintf("Invalid file type. Allowed types: %s", domain.AllowedExtensionsList()), http.StatusBadRequest)
		return
	case errors.Is(uploadErr, domain.ErrFileSizeTooBig):
		h.logger.Warn("invalid request", "file_name", incoming.FileName, "error", uploadErr)
		http.Error(w, h.tooLargeMessage(), http.StatusRequestEntityTooLarge)
		return
	case uploadErr != nil:
		requestID := middleware.GetReqID(r.Context())
		h.logger.Error("error storing file", "request_id", requestID, "file_name", incoming.FileName, "error", uploadErr)
		if h.uploadCfg.ExposeStorageErrors {
			http.Error(w, fmt.Sprintf("Internal server error: %s", uploadErr.Error()), http.StatusInternalServerError)
			return
		}
		http.Error(w, fmt.Sprintf("Internal server error. Reference: %s", requestID), http.StatusInternalServerError)
		return
	default:
		resp := V1UploadFileResponse{
			Message:  msgUploadSuccess,
			FileName: stored.FileName,
			Key:      stored.Key,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

func (h *HandlerV1) tooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size: %d bytes", h.uploadCfg.MaxFileSize)
}

// readIncomingFile buffers the "file" part in memory
func readIncomingFile(r *http.Request) (*domain.IncomingFile, error) {
	if err := r.ParseMultipartForm(maxMultipartInRAM); err != nil {
		return nil, err
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	part, header, err := r.FormFile(formFieldFile)
	if err != nil {
		return nil, err
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, err
	}

	return &domain.IncomingFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

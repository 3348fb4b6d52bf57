package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"scholarportal/internal/config"
	"scholarportal/internal/domain"
	"scholarportal/internal/httputil"
)

// FileUploader stores an uploaded file and returns its public URL.
// storage.S3Uploader implements it.
type FileUploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

// UploadHandler accepts admin file uploads (cover images, ijaza PDFs)
type UploadHandler struct {
	uploader FileUploader // nil when storage is not configured
	logger   *slog.Logger
}

// NewUploadHandler creates a new upload handler. uploader may be nil.
func NewUploadHandler(uploader FileUploader, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores the multipart "file" part under the optional "folder"
// POST /api/admin/uploads
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		handleError(w, &domain.ServerConfigurationError{Component: "object storage"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file must be at most %d MB", config.MaxUploadSize>>20))
			return
		}
		handleError(w, domain.NewValidationError("file", "expected a multipart form upload"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, domain.NewValidationError("file", "is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.uploader.Upload(r.Context(), r.FormValue("folder"), header.Filename, contentType, file)
	if err != nil {
		handleError(w, fmt.Errorf("upload %q: %w", header.Filename, err))
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

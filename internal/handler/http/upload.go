package http

import (
	"log/slog"
	"net/http"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/service"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/storage"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/httputil"
)

// UploadHandler handles the standalone blob upload endpoint.
type UploadHandler struct {
	admin  *service.AdminService
	logger *slog.Logger
}

// NewUploadHandler creates a new upload HTTP handler.
func NewUploadHandler(admin *service.AdminService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		admin:  admin,
		logger: logger,
	}
}

// UploadResponse carries the public URL of the stored blob.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/v1/uploads. The blob arrives as the "image"
// part of a multipart form.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "image file is required"},
		})
		return
	}
	defer file.Close()

	url, err := h.admin.UploadImage(r.Context(), &storage.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: UploadResponse{URL: url}})
}

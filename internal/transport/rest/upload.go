package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/extraction"
)

type extractionService interface {
	Extract(ctx context.Context, u extraction.Upload) ([]domain.WordPair, error)
}

// UploadHandler serves POST /api/upload.
type UploadHandler struct {
	svc      extractionService
	log      *slog.Logger
	maxBytes int64
}

// NewUploadHandler creates an UploadHandler accepting bodies of at most
// maxBytes.
func NewUploadHandler(svc extractionService, logger *slog.Logger, maxBytes int64) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "upload"), maxBytes: maxBytes}
}

type uploadRequest struct {
	File           string `json:"file"`
	FileName       string `json:"fileName"`
	FileType       string `json:"fileType"`
	FirstLanguage  string `json:"firstLanguage"`
	SecondLanguage string `json:"secondLanguage"`
}

type uploadResponse struct {
	WordPairs []domain.WordPair `json:"wordPairs"`
}

// Upload handles POST /api/upload. Other methods get 405.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req uploadRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if strings.TrimSpace(req.File) == "" {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	pairs, err := h.svc.Extract(r.Context(), extraction.Upload{
		File:           req.File,
		FileName:       req.FileName,
		FileType:       req.FileType,
		FirstLanguage:  req.FirstLanguage,
		SecondLanguage: req.SecondLanguage,
	})
	if err != nil {
		handleError(w, r, h.log, err, "File processing failed")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{WordPairs: pairs})
}

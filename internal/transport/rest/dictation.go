package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/dictation"
)

// dictationService defines the minimal interface needed by DictationHandler.
type dictationService interface {
	Create(ctx context.Context, in dictation.CreateInput) (uuid.UUID, error)
	Get(ctx context.Context, id string) (domain.Structure, error)
	ExampleStructure() []byte
}

// DictationHandler serves the create, retrieval and template endpoints.
type DictationHandler struct {
	svc dictationService
	log *slog.Logger
}

// NewDictationHandler creates a DictationHandler.
func NewDictationHandler(svc dictationService, logger *slog.Logger) *DictationHandler {
	return &DictationHandler{svc: svc, log: logger.With("handler", "dictation")}
}

type createDictationRequest struct {
	Title          string            `json:"title"`
	FirstLanguage  string            `json:"firstLanguage"`
	SecondLanguage string            `json:"secondLanguage"`
	WordPairs      []domain.WordPair `json:"wordPairs"`
}

type createDictationResponse struct {
	Success     bool   `json:"success"`
	DictationID string `json:"dictationId"`
}

// Create handles POST /api/create-dictation.
func (h *DictationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDictationRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	id, err := h.svc.Create(r.Context(), dictation.CreateInput{
		Title:          req.Title,
		FirstLanguage:  req.FirstLanguage,
		SecondLanguage: req.SecondLanguage,
		WordPairs:      req.WordPairs,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Failed to create dictation")
		return
	}

	writeJSON(w, http.StatusOK, createDictationResponse{Success: true, DictationID: id.String()})
}

// Get handles GET /api/dictation/{id}.
func (h *DictationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, "GET, OPTIONS")
		return
	}

	st, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err, "Failed to read dictation")
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// ExampleStructure handles GET /api/example-structure.
func (h *DictationHandler) ExampleStructure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, "GET, OPTIONS")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.svc.ExampleStructure()) //nolint:errcheck
}

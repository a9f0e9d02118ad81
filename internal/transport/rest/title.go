package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictation-builder/internal/service/content"
)

type titleService interface {
	Title(ctx context.Context, in content.TitleInput) (string, error)
}

// TitleHandler serves POST /api/generate-title.
type TitleHandler struct {
	svc titleService
	log *slog.Logger
}

// NewTitleHandler creates a TitleHandler.
func NewTitleHandler(svc titleService, logger *slog.Logger) *TitleHandler {
	return &TitleHandler{svc: svc, log: logger.With("handler", "title")}
}

type generateTitleRequest struct {
	WordPairsText  string `json:"wordPairsText"`
	FirstLanguage  string `json:"firstLanguage"`
	SecondLanguage string `json:"secondLanguage"`
}

// Generate handles POST /api/generate-title.
func (h *TitleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateTitleRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	title, err := h.svc.Title(r.Context(), content.TitleInput{
		WordPairsText:  req.WordPairsText,
		FirstLanguage:  req.FirstLanguage,
		SecondLanguage: req.SecondLanguage,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Failed to generate title")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"title": title})
}

package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// maxJSONBody caps request bodies of the JSON endpoints other than upload.
const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// decodeJSON reads at most limit bytes of r's body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return json.NewDecoder(r.Body).Decode(v)
}

// writeDecodeError answers a body that could not be decoded: 413 when the
// size limit was hit, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
}

// handleError maps domain errors to responses. Anything unrecognised is
// logged and answered with a 500 carrying internalMsg.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, internalMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		writeError(w, http.StatusBadRequest, "Unsupported file type")
	case errors.Is(err, domain.ErrNoWordPairs):
		writeError(w, http.StatusUnprocessableEntity, "No valid word pairs found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Dictation not found")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

package rest

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Languages offered by the form.
var formLanguages = []string{
	"English",
	"Mandarin Chinese",
	"Hindi",
	"Spanish",
	"French",
	"Arabic",
	"Bengali",
	"Russian",
	"Portuguese",
	"Indonesian",
	"Hebrew",
}

const (
	defaultFirstLanguage  = "Hebrew"
	defaultSecondLanguage = "English"
	defaultFormRows       = 5
)

type dictationReader interface {
	Get(ctx context.Context, id string) (domain.Structure, error)
}

// PageHandler serves the server-rendered form and playback pages.
type PageHandler struct {
	dictations dictationReader
	player     config.PlayerConfig
	maxPairs   int
	tmpl       *template.Template
	log        *slog.Logger
}

// NewPageHandler parses the embedded page templates.
func NewPageHandler(dictations dictationReader, player config.PlayerConfig, maxPairs int, logger *slog.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		dictations: dictations,
		player:     player,
		maxPairs:   maxPairs,
		tmpl:       tmpl,
		log:        logger.With("handler", "pages"),
	}, nil
}

type formPage struct {
	Languages      []string
	FirstLanguage  string
	SecondLanguage string
	Rows           []int
	MaxPairs       int
}

type playPage struct {
	ID        string
	PlayerSrc string
}

// Index handles GET / by redirecting to the form.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dictation", http.StatusFound)
}

// Form handles GET /dictation.
func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	rows := make([]int, defaultFormRows)
	for i := range rows {
		rows[i] = i
	}
	h.render(w, r, http.StatusOK, "form.html", formPage{
		Languages:      formLanguages,
		FirstLanguage:  defaultFirstLanguage,
		SecondLanguage: defaultSecondLanguage,
		Rows:           rows,
		MaxPairs:       h.maxPairs,
	})
}

// Play handles GET /dictation/{id}/play: the external player in an iframe,
// pointed at the retrieval endpoint of this dictation.
func (h *PageHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := h.dictations.Get(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.render(w, r, http.StatusNotFound, "not_found.html", nil)
			return
		}
		h.log.ErrorContext(r.Context(), "load dictation for playback",
			slog.String("dictation_id", id),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Failed to read dictation", http.StatusInternalServerError)
		return
	}

	src, err := h.playerSrc(r, id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "build player url", slog.String("error", err.Error()))
		http.Error(w, "Player is misconfigured", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Security-Policy", "frame-src 'self' "+h.player.Origin()+";")
	h.render(w, r, http.StatusOK, "play.html", playPage{ID: id, PlayerSrc: src})
}

// playerSrc returns <player>?structureJson=<base>/api/dictation/<id>.
func (h *PageHandler) playerSrc(r *http.Request, id string) (string, error) {
	u, err := url.Parse(h.player.URL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("structureJson", publicBaseURL(r, h.player.PublicBaseURL)+"/api/dictation/"+url.PathEscape(id))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func publicBaseURL(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}

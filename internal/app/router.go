package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/transport/middleware"
	"github.com/heartmarshall/dictation-builder/internal/transport/rest"
)

// NewRouter mounts the API, the pages and the probes.
//
// The LLM-backed routes are rate limited per client; the routes read by the
// player carry CORS headers and answer preflight requests.
func NewRouter(cfg *config.Config, c *Components, rl *middleware.RateLimiter, logger *slog.Logger) (http.Handler, error) {
	dictations := rest.NewDictationHandler(c.Dictations, logger)
	titles := rest.NewTitleHandler(c.Content, logger)
	uploads := rest.NewUploadHandler(c.Extraction, logger, cfg.Upload.MaxBytes)
	health := rest.NewHealthHandler(c.Store, cfg.Storage.Backend, BuildVersion())
	pages, err := rest.NewPageHandler(c.Dictations, cfg.Player, cfg.Dictation.MaxWordPairs, logger)
	if err != nil {
		return nil, err
	}

	limit := rl.Limit(cfg.RateLimit.PerMinute)
	cors := middleware.CORS(cfg.CORS)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /api/create-dictation", limit(http.HandlerFunc(dictations.Create)))
	mux.Handle("POST /api/generate-title", limit(http.HandlerFunc(titles.Generate)))
	mux.Handle("/api/upload", limit(http.HandlerFunc(uploads.Upload)))
	mux.Handle("/api/dictation/{id}", cors(http.HandlerFunc(dictations.Get)))
	mux.Handle("/api/example-structure", cors(http.HandlerFunc(dictations.ExampleStructure)))

	mux.HandleFunc("GET /{$}", pages.Index)
	mux.HandleFunc("GET /dictation", pages.Form)
	mux.HandleFunc("GET /dictation/{id}/play", pages.Play)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux), nil
}

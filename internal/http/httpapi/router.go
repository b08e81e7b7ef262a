package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"imageprompt/internal/http/handlers"
	"imageprompt/internal/middleware"
)

type Options struct {
	DefaultLocale  string
	AllowedOrigins []string
	Logger         zerolog.Logger
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	// Web form
	r.Get("/", app.Index)
	r.Post("/generate", app.GenerateForm)
	r.Post("/download", app.Download)

	// JSON API
	r.Post("/v1/prompts", app.PromptGenerate)

	return r
}

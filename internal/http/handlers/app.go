package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"imageprompt/internal/providers/prompt"
)

//go:embed templates/*.html
var templateFS embed.FS

type App struct {
	Generator prompt.Generator
	Logger    zerolog.Logger
	Now       func() time.Time

	pages *template.Template
}

func NewApp(gen prompt.Generator, logger zerolog.Logger) (*App, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &App{Generator: gen, Logger: logger, Now: time.Now, pages: pages}, nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errCode, Message: message})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
	"imageprompt/internal/middleware"
)

// maxFormBytes caps the form body; descriptions are short free text.
const maxFormBytes = 64 << 10

type downloadLink struct {
	Format   string
	Label    string
	FileName string
}

type formPage struct {
	Locale      string
	T           map[string]string
	Description string
	Warning     string
	Error       string
	Success     string
	Notice      string
	JSON        string
	Downloads   []downloadLink
}

func (a *App) newPage(r *http.Request) formPage {
	locale := middleware.LocaleFromContext(r.Context())
	return formPage{Locale: locale, T: messagesFor(locale)}
}

func (a *App) render(w http.ResponseWriter, r *http.Request, code int, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := a.pages.ExecuteTemplate(w, "index", page); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render page")
	}
}

// Index serves the empty form.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, a.newPage(r))
}

// GenerateForm handles the form submission: it calls the generator once and
// renders the indented JSON with download actions.
func (a *App) GenerateForm(w http.ResponseWriter, r *http.Request) {
	page := a.newPage(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		page.Error = fmt.Sprintf(page.T["error"], "invalid form")
		a.render(w, r, http.StatusBadRequest, page)
		return
	}
	description := r.PostFormValue("description")
	page.Description = description
	if strings.TrimSpace(description) == "" {
		page.Warning = page.T["empty_warning"]
		a.render(w, r, http.StatusBadRequest, page)
		return
	}

	logger := zerolog.Ctx(r.Context())
	res, err := a.Generator.Generate(r.Context(), description)
	if err != nil {
		logger.Error().Err(err).Msg("generate image spec")
		page.Error = fmt.Sprintf(page.T["error"], err.Error())
		code := http.StatusBadGateway
		if errors.Is(err, domain.ErrEmptyDescription) {
			code = http.StatusBadRequest
		}
		a.render(w, r, code, page)
		return
	}

	body, err := imagespec.MarshalJSON(res.Spec)
	if err != nil {
		logger.Error().Err(err).Msg("encode image spec")
		page.Error = fmt.Sprintf(page.T["error"], err.Error())
		a.render(w, r, http.StatusInternalServerError, page)
		return
	}
	page.JSON = string(body)
	page.Success = page.T["success"]
	switch {
	case !res.Parsed():
		page.Notice = page.T["parse_warning"]
	case imagespec.IsRefusal(res.Spec):
		page.Notice = page.T["refusal"]
	}
	for _, f := range []string{formatJSON, formatYAML, formatZip} {
		page.Downloads = append(page.Downloads, downloadLink{
			Format:   f,
			Label:    page.T["download_"+f],
			FileName: imagespec.FileName(res.Spec, imagespec.LabelMaxLen, f),
		})
	}
	a.render(w, r, http.StatusOK, page)
}

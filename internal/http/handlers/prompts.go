package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
)

type promptGenerateRequest struct {
	Description string `json:"description"`
}

type promptGenerateResponse struct {
	Prompt   imagespec.Spec `json:"prompt"`
	FileName string         `json:"filename"`
	Parsed   bool           `json:"parsed"`
	Refusal  bool           `json:"refusal"`
	Provider string         `json:"provider"`
	Model    string         `json:"model"`
}

// PromptGenerate is the JSON counterpart of the form: one description in,
// one image spec out.
func (a *App) PromptGenerate(w http.ResponseWriter, r *http.Request) {
	var req promptGenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	res, err := a.Generator.Generate(r.Context(), req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDescription) {
			a.error(w, http.StatusBadRequest, "empty_description", "description is required")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("generate image spec")
		a.error(w, http.StatusBadGateway, "provider_failure", err.Error())
		return
	}
	spec := res.Spec
	if spec == nil {
		spec = imagespec.Empty()
	}
	a.json(w, http.StatusOK, promptGenerateResponse{
		Prompt:   spec,
		FileName: imagespec.FileName(spec, imagespec.FileNameMaxLen, formatJSON),
		Parsed:   res.Parsed(),
		Refusal:  imagespec.IsRefusal(spec),
		Provider: res.Provider,
		Model:    res.Model,
	})
}

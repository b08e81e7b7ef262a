package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
	"imageprompt/pkg/zip"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatZip  = "zip"
)

const maxDownloadBytes = 1 << 20

type rendered struct {
	FileName    string
	ContentType string
	Data        []byte
}

// renderSpec encodes spec in the requested format. Download names use the
// short label length of the web form.
func (a *App) renderSpec(spec imagespec.Spec, format string) (*rendered, error) {
	switch format {
	case "", formatJSON:
		data, err := imagespec.MarshalJSON(spec)
		if err != nil {
			return nil, err
		}
		return &rendered{FileName: imagespec.FileName(spec, imagespec.LabelMaxLen, formatJSON), ContentType: "application/json; charset=utf-8", Data: data}, nil
	case formatYAML:
		data, err := imagespec.MarshalYAML(spec)
		if err != nil {
			return nil, err
		}
		return &rendered{FileName: imagespec.FileName(spec, imagespec.LabelMaxLen, formatYAML), ContentType: "application/yaml; charset=utf-8", Data: data}, nil
	case formatZip:
		jsonDoc, err := a.renderSpec(spec, formatJSON)
		if err != nil {
			return nil, err
		}
		yamlDoc, err := a.renderSpec(spec, formatYAML)
		if err != nil {
			return nil, err
		}
		data, err := zip.Archive([]zip.Entry{
			{Filename: jsonDoc.FileName, Data: jsonDoc.Data},
			{Filename: yamlDoc.FileName, Data: yamlDoc.Data},
		}, a.Now())
		if err != nil {
			return nil, err
		}
		return &rendered{FileName: imagespec.FileName(spec, imagespec.LabelMaxLen, formatZip), ContentType: "application/zip", Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Download returns a previously generated spec as an attachment. The payload
// is re-parsed so only JSON objects are served back.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDownloadBytes)
	if err := r.ParseForm(); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid form")
		return
	}
	spec, err := imagespec.Parse(r.PostFormValue("payload"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "payload must be a json object")
		return
	}
	format := strings.ToLower(strings.TrimSpace(r.PostFormValue("format")))
	doc, err := a.renderSpec(spec, format)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			a.error(w, http.StatusBadRequest, "unsupported_format", err.Error())
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Str("format", format).Msg("render download")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render download")
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

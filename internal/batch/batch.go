// Package batch implements the file-to-file run: read a description file,
// generate the spec once and write it next to a slug-derived name.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
	"imageprompt/internal/providers/prompt"
	"imageprompt/internal/storage"
)

const DefaultInputFile = "description.txt"

var (
	ErrInputMissing = errors.New("input file not found")
	ErrInputEmpty   = errors.New("input file is empty")
)

type Options struct {
	InputPath string
	// Description, when set, is used as is and InputPath is not read.
	Description string
	OutputDir   string
	Format      string
}

type Outcome struct {
	Path   string
	Parsed bool
}

// InputPath returns path, or DefaultInputFile when path is empty.
func InputPath(path string) string {
	if path == "" {
		return DefaultInputFile
	}
	return path
}

// ReadDescription loads the description file and rejects blank content.
func ReadDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrInputEmpty, path)
	}
	return text, nil
}

func encode(spec imagespec.Spec, format string) ([]byte, string, error) {
	switch format {
	case "", "json":
		data, err := imagespec.MarshalJSON(spec)
		return data, "json", err
	case "yaml", "yml":
		data, err := imagespec.MarshalYAML(spec)
		return data, "yaml", err
	default:
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Run performs one generation and writes the result. A parse failure still
// writes the empty object; transport failures abort without writing.
func Run(ctx context.Context, opts Options, gen prompt.Generator, logger zerolog.Logger) (*Outcome, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if _, _, err := encode(imagespec.Empty(), format); err != nil {
		return nil, err
	}
	description := opts.Description
	if description == "" {
		text, err := ReadDescription(InputPath(opts.InputPath))
		if err != nil {
			return nil, err
		}
		description = text
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	store, err := storage.NewFileStore(outDir)
	if err != nil {
		return nil, err
	}

	res, err := gen.Generate(ctx, description)
	if err != nil {
		return nil, err
	}
	if !res.Parsed() {
		logger.Warn().Err(res.ParseErr).Msg("model returned invalid json, writing empty object")
	}
	data, ext, err := encode(res.Spec, format)
	if err != nil {
		return nil, err
	}
	name := imagespec.FileName(res.Spec, imagespec.FileNameMaxLen, ext)
	path, err := store.Write(ctx, name, data)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Str("provider", res.Provider).Str("model", res.Model).Msg("spec written")
	return &Outcome{Path: path, Parsed: res.Parsed()}, nil
}

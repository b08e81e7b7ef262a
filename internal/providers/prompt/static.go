package prompt

import (
	"context"
	"strings"

	"imageprompt/internal/domain/imagespec"
)

// StaticGenerator builds a spec from the documented defaults without calling
// any model. It is meant for local development and demos.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

var (
	verticalHints    = []string{"selfie", "story", "stories", "reel", "tiktok", "instagram", "social", "vertical"}
	documentaryHints = []string{"documentary", "documentaire", "archival", "archive", "classroom", "historical", "reportage"}
)

// AspectRatioFor infers the default frame.aspect_ratio from the description.
func AspectRatioFor(description string) string {
	lower := strings.ToLower(description)
	for _, hint := range verticalHints {
		if strings.Contains(lower, hint) {
			return "9:16"
		}
	}
	for _, hint := range documentaryHints {
		if strings.Contains(lower, hint) {
			return "4:3"
		}
	}
	return "3:2"
}

func (s *StaticGenerator) Generate(ctx context.Context, description string) (*Result, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	description = strings.Join(strings.Fields(description), " ")
	aspect := AspectRatioFor(description)
	cameraStyle := "documentary realism"
	if aspect == "9:16" && strings.Contains(strings.ToLower(description), "selfie") {
		cameraStyle = "realistic smartphone photo"
	}
	spec := imagespec.Spec{
		"schema_version": imagespec.SchemaVersion,
		"intent":         description,
		"frame": map[string]any{
			"aspect_ratio": aspect,
			"angle":        "eye_level",
		},
		"scene": map[string]any{
			"setting": description,
		},
		"photography": map[string]any{
			"camera_style": cameraStyle,
		},
		"lighting": map[string]any{
			"type":                "soft practical lighting",
			"color_temperature_k": float64(5000),
		},
		"negative": map[string]any{
			"style":     []any{"no heavy filters", "no extreme HDR", "no over-smoothing", "no CGI look", "no cartoonish rendering"},
			"artifacts": []any{"no text", "no watermark", "no logos"},
		},
	}
	return &Result{Spec: spec, Provider: staticProviderName, Model: staticProviderName}, nil
}

var _ Generator = (*StaticGenerator)(nil)

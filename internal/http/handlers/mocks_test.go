package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
	"imageprompt/internal/providers/prompt"
)

type stubGenerator struct {
	result *prompt.Result
	err    error
	calls  int
	last   string
}

func (s *stubGenerator) Generate(ctx context.Context, description string) (*prompt.Result, error) {
	s.calls++
	s.last = description
	if s.err != nil {
		return nil, s.err
	}
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}
	return s.result, nil
}

func parsedResult(spec imagespec.Spec) *prompt.Result {
	return &prompt.Result{Spec: spec, Provider: "stub", Model: "stub-1"}
}

func newTestApp(t *testing.T, gen prompt.Generator) *App {
	t.Helper()
	app, err := NewApp(gen, zerolog.Nop())
	require.NoError(t, err)
	app.Now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return app
}

var _ prompt.Generator = (*stubGenerator)(nil)

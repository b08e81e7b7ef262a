package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
	"imageprompt/internal/providers/prompt"
)

type fakeGenerator struct {
	res   *prompt.Result
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, description string) (*prompt.Result, error) {
	f.calls++
	return f.res, f.err
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultInputFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesIntentNamedJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "un café sous la pluie\n")
	gen := &fakeGenerator{res: &prompt.Result{Spec: imagespec.Spec{"intent": "Café de l'été 2024!!"}}}

	out, err := Run(context.Background(), Options{InputPath: input, OutputDir: dir}, gen, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, out.Parsed)
	assert.Equal(t, filepath.Join(dir, "cafe-de-l-ete-2024.json"), out.Path)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"intent\": \"Café de l'été 2024!!\"\n}\n", string(data))
}

func TestRunFallsBackToSubjectDescriptionAndDefault(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a dog")

	gen := &fakeGenerator{res: &prompt.Result{Spec: imagespec.Spec{"subject": map[string]any{"description": "Golden retriever"}}}}
	out, err := Run(context.Background(), Options{InputPath: input, OutputDir: dir, Format: "yaml"}, gen, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "golden-retriever.yaml", filepath.Base(out.Path))

	gen = &fakeGenerator{res: &prompt.Result{Spec: imagespec.Empty(), ParseErr: errors.New("bad json")}}
	out, err = Run(context.Background(), Options{InputPath: input, OutputDir: dir}, gen, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, out.Parsed)
	assert.Equal(t, "image-prompt.json", filepath.Base(out.Path))
	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

type recordingGenerator struct {
	got string
}

func (r *recordingGenerator) Generate(ctx context.Context, description string) (*prompt.Result, error) {
	r.got = description
	return &prompt.Result{Spec: imagespec.Spec{"intent": "Given text"}}, nil
}

func TestRunUsesProvidedDescription(t *testing.T) {
	dir := t.TempDir()
	gen := &recordingGenerator{}

	out, err := Run(context.Background(), Options{
		InputPath:   filepath.Join(dir, "missing.txt"),
		Description: "already read",
		OutputDir:   dir,
	}, gen, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "already read", gen.got)
	assert.Equal(t, "given-text.json", filepath.Base(out.Path))
}

func TestRunInputErrors(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{}

	_, err := Run(context.Background(), Options{InputPath: filepath.Join(dir, "missing.txt"), OutputDir: dir}, gen, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInputMissing)

	input := writeInput(t, dir, " \n\t\n")
	_, err = Run(context.Background(), Options{InputPath: input, OutputDir: dir}, gen, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInputEmpty)
	assert.Zero(t, gen.calls)
}

func TestRunPropagatesProviderError(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a cat")
	gen := &fakeGenerator{err: fmt.Errorf("%w: timeout", domain.ErrProviderFailure)}

	_, err := Run(context.Background(), Options{InputPath: input, OutputDir: filepath.Join(dir, "out")}, gen, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
	entries, _ := os.ReadDir(filepath.Join(dir, "out"))
	assert.Empty(t, entries)
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := Run(context.Background(), Options{Format: "toml"}, gen, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Zero(t, gen.calls)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("PROMPT_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "")
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestArchitectWritesStaticSpec(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "description.txt")
	require.NoError(t, os.WriteFile(input, []byte("Portrait selfie au coucher du soleil"), 0o644))

	stdout, _, err := runCLI(t, "--provider", "static", "-i", input, "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK -> ")

	want := filepath.Join(dir, "portrait-selfie-au-coucher-du-soleil.json")
	assert.Contains(t, stdout, want)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"aspect_ratio": "9:16"`)
}

func TestArchitectMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runCLI(t, "--provider", "static", "-i", filepath.Join(dir, "nope.txt"), "-o", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "input file not found")
}

func TestArchitectEmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "description.txt")
	require.NoError(t, os.WriteFile(input, []byte("   \n"), 0o644))

	_, stderr, err := runCLI(t, "--provider", "static", "-i", input, "-o", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "input file is empty")
}

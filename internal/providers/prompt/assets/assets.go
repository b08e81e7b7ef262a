// Package assets holds the versioned instruction text sent as the system
// message of every generation request.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

// SystemPromptVersion tracks edits to system_prompt.txt. Bump it whenever the
// schema, defaults or guardrails in the text change.
const SystemPromptVersion = "2025-01.1"

//go:embed system_prompt.txt
var systemPrompt string

// SystemPrompt returns the embedded instruction text.
func SystemPrompt() string {
	return systemPrompt
}

// Load returns the instruction text at path, or the embedded text when path
// is empty.
func Load(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return systemPrompt, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("assets: read system prompt: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("assets: system prompt file is empty")
	}
	return text + "\n", nil
}

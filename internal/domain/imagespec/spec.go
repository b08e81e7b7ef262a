package imagespec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"imageprompt/internal/domain"
	"imageprompt/pkg/slug"
)

// Spec is the image specification returned by the model. Its structure is
// advisory only; fields are read defensively and never validated.
type Spec map[string]any

const (
	// FileNameMaxLen bounds the slug used for files written to disk.
	FileNameMaxLen = 50
	// LabelMaxLen bounds the slug used for download labels in the web form.
	LabelMaxLen = 20
	// DefaultBaseName is used when the spec yields no usable name.
	DefaultBaseName = "image-prompt"
	// SchemaVersion is the schema_version the system prompt asks for.
	SchemaVersion = "1.0"
)

// Empty returns a non-nil spec without keys.
func Empty() Spec {
	return Spec{}
}

// Parse decodes text as a single JSON object. Arrays, scalars and null are
// rejected. Numbers are kept as json.Number so integers survive unchanged.
func Parse(text string) (Spec, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty", domain.ErrInvalidPayload)
	}
	var decoded any
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after json object", domain.ErrInvalidPayload)
	}
	obj, ok := decoded.(map[string]any)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%w: payload is %T, want object", domain.ErrInvalidPayload, decoded)
	}
	return Spec(obj), nil
}

// Text returns the value at the dotted path when it is a non-blank string.
func (s Spec) Text(path string) string {
	v, ok := s.lookup(path)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return strings.TrimSpace(str)
}

// Has reports whether the dotted path resolves to a value.
func (s Spec) Has(path string) bool {
	_, ok := s.lookup(path)
	return ok
}

func (s Spec) lookup(path string) (any, bool) {
	var cur any = map[string]any(s)
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// DisplayName prefers intent, then subject.description, then fallback.
func DisplayName(s Spec, fallback string) string {
	if v := s.Text("intent"); v != "" {
		return v
	}
	if v := s.Text("subject.description"); v != "" {
		return v
	}
	return fallback
}

// FileName derives "<slug>.<ext>" from the spec display name, with the slug
// capped at maxLen. DefaultBaseName is used when the slug comes out empty.
func FileName(s Spec, maxLen int, ext string) string {
	base := slug.Make(DisplayName(s, DefaultBaseName), maxLen)
	if base == "" {
		base = DefaultBaseName
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// IsRefusal reports whether the spec looks like the refusal object the model
// emits for disallowed requests: an intent and no image sections.
func IsRefusal(s Spec) bool {
	if s.Text("intent") == "" {
		return false
	}
	for _, key := range []string{"subject", "scene", "frame", "style", "photography", "lighting", "vibe", "negative"} {
		if s.Has(key) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the spec with two-space indentation and non-ASCII
// characters kept literal.
func MarshalJSON(s Spec) ([]byte, error) {
	if s == nil {
		s = Empty()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any(s)); err != nil {
		return nil, fmt.Errorf("imagespec: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders the spec as YAML for tools that take it instead of JSON.
func MarshalYAML(s Spec) ([]byte, error) {
	if s == nil {
		s = Empty()
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlValue(map[string]any(s))); err != nil {
		return nil, fmt.Errorf("imagespec: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("imagespec: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// yamlValue replaces json.Number leaves with int64 or float64; yaml.v3 would
// otherwise quote them as strings.
func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = yamlValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = yamlValue(item)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

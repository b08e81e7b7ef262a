package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "punctuation_only", input: "!!!", want: ""},
		{name: "accents", input: "Café de l'été 2024!!", want: "cafe-de-l-ete-2024"},
		{name: "leading_trailing", input: "  --Hello, World--  ", want: "hello-world"},
		{name: "underscores", input: "neon_cat__noodles", want: "neon-cat-noodles"},
		{name: "non_latin_dropped", input: "猫 cat 雨", want: "cat"},
		{name: "non_latin_only", input: "東京の雨", want: ""},
		{name: "ligature_compat", input: "ﬁne Ångström", want: "fine-angstrom"},
		{name: "digits", input: "Scene 42 / take 7", want: "scene-42-take-7"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestSlugifyOutputShape(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"A cat eating noodles in the rain, neon lights",
		"Portrait : rétro, années 70 (film 35mm)",
		"***multiple***   separators///here",
		"Ünïcödé everywhere ñ ç ø",
		"x",
		"-a-",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, slugShape, got, "input %q", in)
		assert.NotContains(t, got, "--", "input %q", in)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abc-def", 4))
	assert.Equal(t, "abc-d", Truncate("abc-def", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestMakeRespectsLimit(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("neon rain ", 20)
	got := Make(long, 50)
	assert.LessOrEqual(t, len(got), 50)
	assert.Regexp(t, slugShape, got)
}

package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid tags are normalized to lowercase", func(t *testing.T) {
		t.Parallel()
		tests := map[string]locale.Locale{
			"en":      "en",
			"EN":      "en",
			"en-US":   "en-us",
			"zh":      "zh",
			"pt-BR":   "pt-br",
			"  es  ":  "es",
			"id":      "id",
			"sr-Latn": "sr-latn",
		}
		for input, want := range tests {
			got, err := locale.Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := locale.Parse("")
		assert.ErrorIs(t, err, locale.ErrEmptyLocale)

		_, err = locale.Parse("   ")
		assert.ErrorIs(t, err, locale.ErrEmptyLocale)
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{
			"123",
			"!!!",
			"en us",
			"en--us",
			strings.Repeat("a", 100),
		} {
			_, err := locale.Parse(input)
			assert.ErrorIs(t, err, locale.ErrMalformedLocale, "input %q", input)
		}
	})
}

func TestLocaleBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.Locale("en"), locale.Locale("en-us").Base())
	assert.Equal(t, locale.Locale("en"), locale.Locale("en").Base())
	assert.Equal(t, locale.Locale("pt"), locale.Locale("pt-br").Base())
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.Locale("en"), locale.MustParse("EN"))
	assert.Panics(t, func() { locale.MustParse("!!!") })
}

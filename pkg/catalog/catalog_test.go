package catalog_test

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/catalog"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"translations/en.yaml": &fstest.MapFile{Data: []byte(`
home:
  title: Welcome
  subtitle: Build something
greeting: Hello, %{name}!
`)},
		"translations/es.yaml": &fstest.MapFile{Data: []byte(`
home:
  title: Bienvenido
greeting: Hola, %{name}!
`)},
		"translations/zh.json": &fstest.MapFile{Data: []byte(`{
  "home": {"title": "欢迎"},
  "greeting": "你好，%{name}！"
}`)},
		"translations/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("loads json and yaml tables", func(t *testing.T) {
		t.Parallel()
		b, err := catalog.New(t.Context(), testFS(), "translations")
		require.NoError(t, err)

		assert.Equal(t, []locale.Locale{"en", "es", "zh"}, b.Locales())
		assert.True(t, b.Has("en"))
		assert.False(t, b.Has("fr"))
	})

	t.Run("nested keys flatten to dot paths", func(t *testing.T) {
		t.Parallel()
		b, err := catalog.New(t.Context(), testFS(), "translations")
		require.NoError(t, err)

		rc := b.Context("en")
		assert.Equal(t, "Welcome", rc.T("home.title"))
		assert.Equal(t, "Build something", rc.T("home.subtitle"))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(t.Context(), testFS(), "missing")
		assert.ErrorIs(t, err, catalog.ErrFailedToReadDir)
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"translations/readme.txt": &fstest.MapFile{Data: []byte("x")}}
		_, err := catalog.New(t.Context(), fsys, "translations")
		assert.ErrorIs(t, err, catalog.ErrNoTables)
	})

	t.Run("malformed yaml fails fast", func(t *testing.T) {
		t.Parallel()
		fsys := testFS()
		fsys["translations/de.yaml"] = &fstest.MapFile{Data: []byte("a: [unclosed")}
		_, err := catalog.New(t.Context(), fsys, "translations")
		assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
	})

	t.Run("malformed json fails fast", func(t *testing.T) {
		t.Parallel()
		fsys := testFS()
		fsys["translations/de.json"] = &fstest.MapFile{Data: []byte("{oops")}
		_, err := catalog.New(t.Context(), fsys, "translations")
		assert.ErrorIs(t, err, catalog.ErrFailedToParseJSON)
	})

	t.Run("file stem must be a valid locale", func(t *testing.T) {
		t.Parallel()
		fsys := testFS()
		fsys["translations/123.yaml"] = &fstest.MapFile{Data: []byte("a: b")}
		_, err := catalog.New(t.Context(), fsys, "translations")
		assert.ErrorIs(t, err, locale.ErrMalformedLocale)
	})

	t.Run("default table must exist", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(t.Context(), testFS(), "translations",
			catalog.WithDefaultLocale("id"),
		)
		assert.ErrorIs(t, err, catalog.ErrDefaultTableMissing)
	})

	t.Run("cancelled context aborts loading", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := catalog.New(ctx, testFS(), "translations")
		assert.ErrorIs(t, err, catalog.ErrLoadingCancelled)
	})
}

func TestRenderContext(t *testing.T) {
	t.Parallel()

	newBundle := func(t *testing.T) *catalog.Bundle {
		t.Helper()
		b, err := catalog.New(t.Context(), testFS(), "translations")
		require.NoError(t, err)
		return b
	}

	t.Run("carries its locale", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("es")
		assert.Equal(t, locale.Locale("es"), rc.Locale())
	})

	t.Run("placeholder substitution", func(t *testing.T) {
		t.Parallel()
		b := newBundle(t)
		assert.Equal(t, "Hello, Ada!", b.Context("en").T("greeting", "name", "Ada"))
		assert.Equal(t, "Hola, Ada!", b.Context("es").T("greeting", "name", "Ada"))
	})

	t.Run("unknown placeholder is kept", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("en")
		assert.Equal(t, "Hello, %{name}!", rc.T("greeting", "other", "x"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("en")
		assert.Equal(t, "nav.missing", rc.T("nav.missing"))
	})

	t.Run("missing key returns empty when fallback disabled", func(t *testing.T) {
		t.Parallel()
		b, err := catalog.New(t.Context(), testFS(), "translations",
			catalog.WithFallbackToKey(false),
		)
		require.NoError(t, err)
		assert.Empty(t, b.Context("en").T("nav.missing"))
	})

	t.Run("Td uses explicit default", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("en")
		assert.Equal(t, "Fallback", rc.Td("nav.missing", "Fallback"))
		assert.Equal(t, "Welcome", rc.Td("home.title", "Fallback"))
	})

	t.Run("Has", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("en")
		assert.True(t, rc.Has("home.title"))
		assert.False(t, rc.Has("nav.missing"))
	})

	t.Run("unknown locale falls back to default table", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("fr")
		assert.Equal(t, "Welcome", rc.T("home.title"))
	})

	t.Run("region variant falls back to base table", func(t *testing.T) {
		t.Parallel()
		rc := newBundle(t).Context("es-mx")
		assert.Equal(t, "Bienvenido", rc.T("home.title"))
	})

	t.Run("request context integration", func(t *testing.T) {
		t.Parallel()
		b := newBundle(t)
		ctx := locale.WithContext(t.Context(), "zh")
		rc := b.FromRequest(ctx)
		assert.Equal(t, locale.Locale("zh"), rc.Locale())
		assert.Equal(t, "欢迎", rc.T("home.title"))
	})
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	b, err := catalog.New(t.Context(), testFS(), "translations")
	require.NoError(t, err)

	out, err := b.ExportJSON("es")
	require.NoError(t, err)

	var table map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, "Bienvenido", table["home.title"])
}

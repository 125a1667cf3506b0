// Package catalog loads per-locale string tables and hands out
// per-render-pass RenderContext values pairing a resolved locale with
// its translations.
//
// # Overview
//
// A Bundle is built once at startup from a directory of table files
// (JSON or YAML, one file per locale, nested keys flattened to dot
// paths) and is immutable afterwards - lookups are lock-free. The
// rendering layer asks the bundle for a RenderContext per request:
//
//	//go:embed translations
//	var translations embed.FS
//
//	bundle, err := catalog.New(ctx, translations, "translations",
//		catalog.WithDefaultLocale("en"),
//	)
//
//	// per request, after locale.Middleware has resolved the locale:
//	rc := bundle.FromRequest(r.Context())
//	title := rc.T("home.title")
//	hello := rc.T("greeting", "name", user.Name)
//
// Placeholders use the %{name} form and are substituted from key-value
// argument pairs. Missing keys fall back to the key itself so untranslated
// UI stays legible; WithFallbackToKey(false) turns that off.
//
// The package owns string tables only. Which locale a request renders
// under is decided by pkg/locale; the bundle just honors it, falling back
// to the base language table and then the default table when a locale has
// no table of its own.
package catalog

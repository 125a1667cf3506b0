package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Bundle holds the per-locale string tables the rendering layer draws
// from. Tables are loaded once at startup and immutable afterwards, so
// lookups need no locking.
type Bundle struct {
	tables        map[locale.Locale]map[string]string
	def           locale.Locale
	fallbackToKey bool
	logger        *slog.Logger
}

// New loads one string table per file from dir inside fsys. The file
// stem names the locale ("es.yaml" -> "es"); JSON, YAML, and YML are
// recognized, other files are skipped. Nested keys are flattened to dot
// paths ("nav.home"). Loading is fail-fast: a malformed file or a file
// stem that is not a valid locale tag aborts with an error rather than
// shipping a partial bundle.
func New(ctx context.Context, fsys fs.FS, dir string, opts ...Option) (*Bundle, error) {
	b := &Bundle{
		tables:        make(map[locale.Locale]map[string]string),
		def:           locale.DefaultLocale,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		l, err := locale.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, fmt.Errorf("table file %q: %w", name, err)
		}

		content, err := fs.ReadFile(fsys, filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		table, err := parseTable(content, ext)
		if err != nil {
			return nil, fmt.Errorf("table file %q: %w", name, err)
		}

		// Later files for the same locale merge over earlier ones
		if existing, ok := b.tables[l]; ok {
			for k, v := range table {
				existing[k] = v
			}
			continue
		}
		b.tables[l] = table
	}

	if len(b.tables) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTables, dir)
	}
	if _, ok := b.tables[b.def]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultTableMissing, b.def)
	}

	b.logger.InfoContext(ctx, "string tables loaded", "locales", b.locales())
	return b, nil
}

// Locales returns the locales with a loaded table, sorted.
func (b *Bundle) Locales() []locale.Locale {
	return b.locales()
}

func (b *Bundle) locales() []locale.Locale {
	out := make([]locale.Locale, 0, len(b.tables))
	for l := range b.tables {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether a table is loaded for the locale (exact match).
func (b *Bundle) Has(l locale.Locale) bool {
	_, ok := b.tables[l]
	return ok
}

// ExportJSON returns the table for a locale as JSON, for client-side
// consumption. The locale is resolved the same way Context resolves it.
func (b *Bundle) ExportJSON(l locale.Locale) (string, error) {
	table := b.table(l)
	data, err := json.Marshal(table)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(data), nil
}

// table resolves the backing table for a locale: exact match, base
// language, then the default table.
func (b *Bundle) table(l locale.Locale) map[string]string {
	if t, ok := b.tables[l]; ok {
		return t
	}
	if t, ok := b.tables[l.Base()]; ok {
		return t
	}
	return b.tables[b.def]
}

// parseTable decodes a single table file and flattens it to dot paths.
func parseTable(content []byte, ext string) (map[string]string, error) {
	var raw map[string]any

	switch ext {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
	default:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
	}

	table := make(map[string]string)
	if err := flatten("", raw, table); err != nil {
		return nil, err
	}
	return table, nil
}

// flatten walks a nested map and writes leaf values under dot-joined keys.
func flatten(prefix string, m map[string]any, out map[string]string) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case bool, int, int64, uint64, float64:
			out[key] = fmt.Sprint(val)
		case nil:
			out[key] = ""
		default:
			return fmt.Errorf("%w: key %q has type %T", ErrInvalidTableValue, key, v)
		}
	}
	return nil
}

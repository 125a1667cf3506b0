package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// maxLocaleLength is the maximum allowed length for a locale code
const maxLocaleLength = 35 // RFC 5646 recommends 35 characters max

// Locale is a normalized language tag, e.g. "en" or "pt-br".
// Values produced by this package are always lowercase and syntactically
// valid per BCP 47; raw user input must go through Parse before it is
// treated as a Locale.
type Locale string

// Parse validates the syntactic shape of a language tag and returns it as
// a normalized lowercase Locale. It does not check membership in any
// registry - that is the resolver's job.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyLocale
	}

	// Limit tag length for security
	if len(s) > maxLocaleLength {
		return "", ErrMalformedLocale
	}

	if _, err := language.Parse(s); err != nil {
		return "", errors.Join(ErrMalformedLocale, err)
	}

	return Locale(strings.ToLower(s)), nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for statically known tags, e.g. registry construction in main.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Locale) String() string { return string(l) }

// Base returns the language subtag without the region ("en-us" -> "en").
// Locales without a region are returned unchanged.
func (l Locale) Base() Locale {
	if idx := strings.Index(string(l), "-"); idx > 0 {
		return l[:idx]
	}
	return l
}

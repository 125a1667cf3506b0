package locale

import "errors"

var (
	ErrEmptyLocale         = errors.New("locale.empty")
	ErrMalformedLocale     = errors.New("locale.malformed")
	ErrUnsupportedLocale   = errors.New("locale.unsupported")
	ErrNoSupportedLocales  = errors.New("locale.no_supported_locales")
	ErrDefaultNotSupported = errors.New("locale.default_not_supported")
)

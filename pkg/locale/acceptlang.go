package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized
// Accept-Language headers. RFC 7231 doesn't specify a limit, but 4KB is
// generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// tagWithQ represents a language tag with its quality value
type tagWithQ struct {
	tag string
	q   float64
}

// parseAcceptLanguage parses an Accept-Language header per RFC 7231 and
// returns the tags sorted by quality, highest first. Malformed entries
// are skipped rather than failing the whole header.
func parseAcceptLanguage(header string) []tagWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []tagWithQ

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tagAndQ := strings.Split(part, ";")
		tag := strings.ToLower(strings.TrimSpace(tagAndQ[0]))
		q := 1.0

		if len(tagAndQ) > 1 {
			qPart := strings.TrimSpace(tagAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if tag != "" {
			tags = append(tags, tagWithQ{tag: tag, q: q})
		}
	}

	slices.SortFunc(tags, func(a, b tagWithQ) int {
		return cmp.Compare(b.q, a.q) // descending
	})

	return tags
}

// negotiate matches an Accept-Language header against the registry.
// Exact matches across all tags are tried before any base-language
// fallback so that quality ordering is respected within each phase.
func negotiate(header string, registry *Registry) (Locale, bool) {
	tags := parseAcceptLanguage(header)
	if len(tags) == 0 {
		return "", false
	}

	// Phase 1: exact matches (en-us matches en-us)
	for _, tq := range tags {
		if registry.Contains(Locale(tq.tag)) {
			return Locale(tq.tag), true
		}
	}

	// Phase 2: base language fallback (en-us matches en)
	for _, tq := range tags {
		if idx := strings.Index(tq.tag, "-"); idx > 0 {
			base := Locale(tq.tag[:idx])
			if registry.Contains(base) {
				return base, true
			}
		}
	}

	return "", false
}

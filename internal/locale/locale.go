// Package locale resolves raw language tags to the closed set of locales the
// site can render. It is the single gate for locale selection: every locale
// value that reaches rendering or persistence has passed through this package.
package locale

import (
	"fmt"
	"strings"
)

// Locale is one of the fixed set of locale codes the content pipeline supports.
type Locale string

// Supported locales. Default is the sole fallback.
const (
	EN     Locale = "en"
	De     Locale = "de"
	Fr     Locale = "fr"
	Es     Locale = "es"
	It     Locale = "it"
	Ja     Locale = "ja"
	ZhHans Locale = "zh-Hans"
	ZhHant Locale = "zh-Hant"
	Ko     Locale = "ko"
	Ru     Locale = "ru"

	// Default is the fallback locale. Content for it must always exist.
	Default = EN
)

// ErrUnsupported is returned by Select when the requested code is not a member
// of the supported set.
var ErrUnsupported = fmt.Errorf("locale: unsupported")

// supported lists all members in display order (default first).
var supported = []Locale{EN, De, Fr, Es, It, Ja, ZhHans, ZhHant, Ko, Ru}

// normTable maps lowercased raw tags to supported locales. Anything not listed
// here falls through to primary-subtag extraction and then to Default.
//
// Chinese is a macro-language with two scripts in the supported set; mapping a
// bare "zh" (and mainland/Singapore region tags) to Simplified, and Taiwan/
// Hong Kong/Macau region tags to Traditional, is a policy decision, not
// something inferable from the tag itself.
var normTable = map[string]Locale{
	"en": EN,
	"de": De,
	"fr": Fr,
	"es": Es,
	"it": It,
	"ja": Ja,
	"ko": Ko,
	"ru": Ru,

	"zh":      ZhHans,
	"zh-hans": ZhHans,
	"zh-cn":   ZhHans,
	"zh-sg":   ZhHans,
	"zh-my":   ZhHans,
	"zh-hant": ZhHant,
	"zh-tw":   ZhHant,
	"zh-hk":   ZhHant,
	"zh-mo":   ZhHant,
}

// Supported returns all supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is an exact member of the supported set.
func IsSupported(code string) bool {
	for _, l := range supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Normalize maps an arbitrary raw tag (e.g. "en-US", "zh_TW") to a supported
// locale. The input is lowercased and looked up exactly; on a miss the primary
// subtag (everything before the first "-" or "_") is retried; on a second miss
// the Default is returned. Normalize is pure and idempotent.
func Normalize(rawTag string) Locale {
	tag := strings.ToLower(strings.TrimSpace(rawTag))
	tag = strings.ReplaceAll(tag, "_", "-")

	if l, ok := normTable[tag]; ok {
		return l
	}

	if i := strings.IndexByte(tag, '-'); i > 0 {
		if l, ok := normTable[tag[:i]]; ok {
			return l
		}
	}

	return Default
}

// Detect determines the active locale at startup time for a visitor.
// A stored preference that is itself a supported code wins unchanged; it is
// never re-normalized, so an explicit "zh-Hant" choice survives even when the
// environment tag would resolve elsewhere. Otherwise the environment tag is
// normalized. The result is always a member of the supported set.
func Detect(rawTag, storedPreference string) Locale {
	if IsSupported(storedPreference) {
		return Locale(storedPreference)
	}
	return Normalize(rawTag)
}

// Select validates an explicitly requested locale code. Members pass through
// unchanged. Non-members return the Default together with ErrUnsupported so
// the caller can log the substitution; the returned locale is always usable.
func Select(requested string) (Locale, error) {
	if IsSupported(requested) {
		return Locale(requested), nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnsupported, requested)
}

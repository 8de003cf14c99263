package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyhq/website/internal/locale"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawTag   string
		expected locale.Locale
	}{
		{name: "exact short code", rawTag: "de", expected: locale.De},
		{name: "uppercase input", rawTag: "DE", expected: locale.De},
		{name: "region stripped", rawTag: "en-US", expected: locale.EN},
		{name: "underscore separator", rawTag: "fr_FR", expected: locale.Fr},
		{name: "surrounding whitespace", rawTag: "  ja  ", expected: locale.Ja},
		{name: "bare zh resolves to simplified", rawTag: "zh", expected: locale.ZhHans},
		{name: "zh-CN resolves to simplified", rawTag: "zh-CN", expected: locale.ZhHans},
		{name: "zh-SG resolves to simplified", rawTag: "zh-SG", expected: locale.ZhHans},
		{name: "zh-TW resolves to traditional", rawTag: "zh-TW", expected: locale.ZhHant},
		{name: "zh-HK resolves to traditional", rawTag: "zh-HK", expected: locale.ZhHant},
		{name: "zh-Hant script tag", rawTag: "zh-Hant", expected: locale.ZhHant},
		{name: "zh-Hant with region strips to zh policy default", rawTag: "zh-Hant-HK", expected: locale.ZhHans},
		{name: "unsupported language falls back", rawTag: "pt-BR", expected: locale.EN},
		{name: "empty tag falls back", rawTag: "", expected: locale.EN},
		{name: "garbage falls back", rawTag: "???", expected: locale.EN},
		{name: "korean region variant", rawTag: "ko-KR", expected: locale.Ko},
		{name: "russian", rawTag: "ru-RU", expected: locale.Ru},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, locale.Normalize(tt.rawTag))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"en-US", "de-AT", "zh-TW", "zh", "pt-BR", "ja", "nonsense"}
	for _, raw := range inputs {
		once := locale.Normalize(raw)
		assert.Equal(t, once, locale.Normalize(string(once)), "raw tag %q", raw)
	}
}

func TestNormalizeCoversSupportedSet(t *testing.T) {
	t.Parallel()

	// Every supported code must normalize to itself except script-qualified
	// codes, whose lowercase form is in the table.
	for _, l := range locale.Supported() {
		assert.Equal(t, l, locale.Normalize(string(l)), "locale %s", l)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("stored preference wins over browser tag", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, locale.Fr, locale.Detect("de-DE", "fr"))
	})

	t.Run("stored preference is not re-normalized", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, locale.ZhHant, locale.Detect("zh-CN", "zh-Hant"))
	})

	t.Run("invalid stored preference falls through to detection", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, locale.De, locale.Detect("de-DE", "xx"))
	})

	t.Run("lowercase stored zh-hant is not a member and is ignored", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, locale.EN, locale.Detect("en-GB", "zh-hant"))
	})

	t.Run("no preference and no tag yields default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, locale.Default, locale.Detect("", ""))
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("member passes through unchanged", func(t *testing.T) {
		t.Parallel()
		got, err := locale.Select("zh-Hant")
		require.NoError(t, err)
		assert.Equal(t, locale.ZhHant, got)
	})

	t.Run("non-member substitutes default with error", func(t *testing.T) {
		t.Parallel()
		got, err := locale.Select("pt-BR")
		require.ErrorIs(t, err, locale.ErrUnsupported)
		assert.Equal(t, locale.Default, got)
	})

	t.Run("raw browser tag is not a member", func(t *testing.T) {
		t.Parallel()
		got, err := locale.Select("en-US")
		require.ErrorIs(t, err, locale.ErrUnsupported)
		assert.Equal(t, locale.Default, got)
	})
}

func TestSupported(t *testing.T) {
	t.Parallel()

	all := locale.Supported()
	require.Len(t, all, 10)
	assert.Equal(t, locale.Default, all[0], "default locale listed first")

	// Returned slice is a copy; mutating it must not affect the package.
	all[0] = locale.Locale("mutated")
	assert.Equal(t, locale.Default, locale.Supported()[0])
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, locale.IsSupported("en"))
	assert.True(t, locale.IsSupported("zh-Hans"))
	assert.False(t, locale.IsSupported("zh-hans"), "member check is exact")
	assert.False(t, locale.IsSupported("en-US"))
	assert.False(t, locale.IsSupported(""))
}

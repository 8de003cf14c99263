package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennyhq/website/internal/locale"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected locale.Locale
	}{
		{
			name:     "empty header yields default",
			header:   "",
			expected: locale.EN,
		},
		{
			name:     "single exact tag",
			header:   "de",
			expected: locale.De,
		},
		{
			name:     "region variant matches base",
			header:   "de-CH",
			expected: locale.De,
		},
		{
			name:     "quality ordering wins",
			header:   "it;q=0.5,ja;q=0.9,ru;q=0.8",
			expected: locale.Ja,
		},
		{
			name:     "first supported entry wins among equal quality",
			header:   "pt-BR,es;q=0.9,fr;q=0.9",
			expected: locale.Es,
		},
		{
			name:     "taiwan tag resolves to traditional chinese",
			header:   "zh-TW,zh;q=0.9,en;q=0.8",
			expected: locale.ZhHant,
		},
		{
			name:     "unsupported top choice falls through to next",
			header:   "pt-BR,pt;q=0.9,de;q=0.5",
			expected: locale.De,
		},
		{
			name:     "wholly unsupported header yields default",
			header:   "pt-BR,pt;q=0.9,nl;q=0.8",
			expected: locale.EN,
		},
		{
			name:     "wildcard is ignored",
			header:   "*,ko;q=0.3",
			expected: locale.Ko,
		},
		{
			name:     "malformed quality treated as full weight",
			header:   "ru;q=abc,de;q=0.9",
			expected: locale.Ru,
		},
		{
			name:     "quality above one is ignored",
			header:   "it;q=5.0,fr;q=0.9",
			expected: locale.It,
		},
		{
			name:     "whitespace tolerated",
			header:   " ja , en ; q=0.5 ",
			expected: locale.Ja,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, locale.ParseAcceptLanguage(tt.header))
		})
	}
}

func TestParseAcceptLanguageOversizedHeader(t *testing.T) {
	t.Parallel()

	// The tail beyond the cap must not be considered.
	header := strings.Repeat("xx-YY,", 1000) + "de"
	assert.Equal(t, locale.EN, locale.ParseAcceptLanguage(header))
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "English", locale.DisplayName(locale.EN))
	assert.Equal(t, "Deutsch", locale.DisplayName(locale.De))
	assert.Equal(t, "日本語", locale.DisplayName(locale.Ja))
	assert.NotEmpty(t, locale.DisplayName(locale.ZhHant))
}

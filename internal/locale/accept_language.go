package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing to bound work on hostile input.
const maxAcceptLanguageLength = 4096

// weightedTag is a parsed Accept-Language entry with its quality value.
type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage resolves an Accept-Language header to a supported
// locale. Entries are considered in descending quality order; the first one
// that normalizes to a supported locale via the exact table (full tag, then
// primary subtag) wins. An empty or unmatchable header yields the Default.
//
// Example: "zh-TW,zh;q=0.9,en;q=0.8" resolves to zh-Hant.
func ParseAcceptLanguage(header string) Locale {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default
	}

	for _, wt := range parseWeightedTags(header) {
		if l, ok := lookupTag(wt.tag); ok {
			return l
		}
	}

	return Default
}

// lookupTag resolves a lowercased tag against the normalization table without
// the Default fallthrough, so lower-quality entries still get a chance.
func lookupTag(tag string) (Locale, bool) {
	if l, ok := normTable[tag]; ok {
		return l, true
	}
	if i := strings.IndexByte(tag, '-'); i > 0 {
		if l, ok := normTable[tag[:i]]; ok {
			return l, true
		}
	}
	return Default, false
}

// parseWeightedTags splits the header into tags with quality values, sorted by
// descending quality. Wildcards and malformed q-values are skipped or treated
// as q=1 respectively, matching common browser behavior.
func parseWeightedTags(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tagPart, qPart, hasQuality := strings.Cut(part, ";")
		tagPart = strings.ToLower(strings.TrimSpace(tagPart))

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tagPart != "" && tagPart != "*" {
			tags = append(tags, weightedTag{tag: tagPart, quality: quality})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

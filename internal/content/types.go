// Package content loads and serves the site's localized content: UI strings,
// the feature list, and customer reviews. The three documents are independent;
// a failure loading one never blocks the others. Loaded content is read-only
// until the next explicit reload.
package content

// Feature is one entry in the per-locale feature grid, rendered in document
// order.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReviewTranslation is a review's title and body in one locale.
type ReviewTranslation struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Review is a customer review. Translations are keyed by supported locale
// code; rendering falls back to the "en" entry when the active locale is
// absent.
type Review struct {
	ID               string                       `json:"id"`
	OriginalLanguage string                       `json:"originalLanguage"`
	Author           string                       `json:"author"`
	Date             string                       `json:"date"`
	Rating           int                          `json:"rating"`
	Translations     map[string]ReviewTranslation `json:"translations"`
}

// LocalizedReview pairs a review with the title and text selected for the
// active locale.
type LocalizedReview struct {
	Review Review
	Title  string
	Text   string
}

// translationsDoc is the combined translations document: locale code to an
// arbitrarily nested tree of string values.
type translationsDoc map[string]map[string]any

// featuresDoc is the features document: locale code to an ordered list.
type featuresDoc map[string][]Feature

// reviewsDoc is the reviews document envelope.
type reviewsDoc struct {
	Reviews []Review `json:"reviews"`
}

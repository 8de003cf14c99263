package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Changed is the notification published after the active locale changes.
// Dispatched exactly once per change, after the preference is persisted.
type Changed struct {
	Locale Locale
}

// DisplayName returns the locale's self-name ("Deutsch", "日本語", "繁體中文")
// for the language selector. Falls back to the raw code if the tag cannot be
// rendered.
func DisplayName(l Locale) string {
	tag, err := language.Parse(string(l))
	if err != nil {
		return string(l)
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return string(l)
}

package content

import "github.com/pennyhq/website/internal/locale"

// fallbackTranslations is the built-in default used when the translations
// document cannot be loaded. It carries just enough English copy to render the
// hero section; everything else degrades to literal keys.
func fallbackTranslations() table {
	tree := map[string]any{
		"hero": map[string]any{
			"title": "Penny — effortless expense tracking",
			"cta":   "Download the app",
			"badge": "Download on the App Store",
		},
	}

	t := make(table)
	for path, value := range flatten(tree, "") {
		t[tableKey(string(locale.Default), path)] = value
	}
	return t
}

// Package website embeds the default content documents and static assets the
// server ships with. A deployment can override the content documents with a
// local directory or remote URL via configuration; static assets are always
// served from the binary.
package website

import (
	"embed"
	"io/fs"
)

//go:embed content
var contentFS embed.FS

//go:embed static
var staticFS embed.FS

// ContentFS returns the embedded default content documents (translations,
// features, reviews, markdown pages).
func ContentFS() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// StaticFS returns the embedded static assets (css, icons, store badges).
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

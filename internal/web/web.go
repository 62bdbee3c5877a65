// Package web embeds the HTML templates of the menu board.
package web

import (
	"embed"
	"io/fs"
)

// Embed the 'templates' directory.
// The path is relative to this file (internal/web/web.go).
//
//go:embed templates
var Assets embed.FS

// Template file names inside the templates directory.
const (
	HostTemplate  = "base.html"
	CardTemplate  = "card.html"
	OrderTemplate = "order.html"
)

// GetTemplatesFS returns the templates directory as its own filesystem root.
func GetTemplatesFS() fs.FS {
	sub, err := fs.Sub(Assets, "templates")
	if err != nil {
		// only fails on an invalid path literal
		panic(err)
	}
	return sub
}

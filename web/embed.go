// Package web embeds the static frontend assets served by the server.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets returns the embedded static assets rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unreachable: the static directory is compiled in.
		panic(err)
	}
	return sub
}

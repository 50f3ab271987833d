package handler

import (
	"io/fs"
	"net/http"
	"strings"
)

// Static serves the embedded frontend assets. "/" maps to index.html and
// unknown paths fall back to index.html so the app shell always loads.
func Static(assets fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(assets))

	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		// Fall back to the app shell for unknown paths. FileServer serves
		// index.html for the root directory itself.
		if _, err := fs.Stat(assets, path); err != nil {
			r.URL.Path = "/"
		}

		fileServer.ServeHTTP(w, r)
	}
}

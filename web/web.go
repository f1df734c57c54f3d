// Package web holds the browser front end, embedded into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Assets returns the static files rooted at the static directory.
func Assets() (fs.FS, error) {
	return fs.Sub(files, "static")
}

// Index returns the single HTML page of the view.
func Index() ([]byte, error) {
	return files.ReadFile("static/index.html")
}

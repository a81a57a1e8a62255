package views

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var viewsFS embed.FS

// StaticFS serves app.js and style.css.
func StaticFS() fs.FS {
	sub, err := fs.Sub(viewsFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

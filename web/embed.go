// Package web carries the templates, static assets and default content that
// are compiled into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates content static
var files embed.FS

// Templates holds *.html page and fragment templates.
func Templates() fs.FS { return sub("templates") }

// Static holds css, js and images served under /static.
func Static() fs.FS { return sub("static") }

// Content holds the default site.yaml and experience.json.
func Content() fs.FS { return sub("content") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		panic(err) // dir is embedded above
	}
	return f
}

// Package web holds the HTML templates compiled into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"time"
)

//go:embed templates/*.html
var embedded embed.FS

// Funcs are available to every template.
var Funcs = template.FuncMap{
	// trusted marks text that already went through the sanitizer.
	"trusted": func(s string) template.HTML { return template.HTML(s) },
	"date": func(t time.Time) string {
		return t.Format("2 Jan 2006 15:04")
	},
}

// Templates parses the page templates. An empty dir uses the embedded copy,
// otherwise templates are read from dir so they can be edited without a
// rebuild.
func Templates(dir string) (*template.Template, error) {
	var source fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		source = sub
	} else {
		source = os.DirFS(dir)
	}

	tmpl, err := template.New("").Funcs(Funcs).ParseFS(source, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

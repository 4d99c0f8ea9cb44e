// Package render executes the embedded HTML templates.
package render

import (
	"html/template"
	"log"
	"net/http"

	"github.com/inkwell-blog/inkwell/web"
)

var templates = template.Must(template.ParseFS(web.Templates, "templates/*.html"))

func HTML(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("ERROR rendering %s: %v", name, err)
	}
}

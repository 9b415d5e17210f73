package handler

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

const layoutMain = "layouts/main"

// NewViews returns the HTML engine serving the embedded page templates.
func NewViews() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

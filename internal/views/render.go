package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"github.com/i474232898/weather-card/internal/weather"
)

//go:embed templates/*.html
var viewsFS embed.FS

var pageTmpl *template.Template

// loadTemplatesFromFS parses page templates from dir inside fsys.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	pageTmpl, err = template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads the embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// PageData is the view model for the lookup page.
type PageData struct {
	Query string
	Card  weather.View
}

func RenderPage(w io.Writer, data *PageData) error {
	if pageTmpl == nil {
		return errors.New("page template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "page.html", data)
}

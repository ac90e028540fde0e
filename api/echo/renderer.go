package echoapi

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/user"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	templates map[string]*template.Template
}

// newRenderer parses each page template against the shared base layout.
func newRenderer() *renderer {
	pages := []string{"index", "register", "login", "dashboard", "mood", "study_plan", "error"}

	r := renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		r.templates[page] = template.Must(template.ParseFS(
			templatesFS, "templates/base.html", "templates/"+page+".html",
		))
	}
	return &r
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	return errors.Wrapf(tmpl.ExecuteTemplate(w, "base", data), "rendering %q", name)
}

// templateData is the payload handed to every page template.
type templateData struct {
	AppName string
	User    *user.User
	Flashes []flash
	Errors  map[string]string
	Form    interface{}
	Data    interface{}
}

func (s *Server) newTemplateData(ctx echo.Context) templateData {
	td := templateData{
		AppName: s.deps.Conf.AppName,
		Flashes: s.popFlashes(ctx),
	}
	if usr, ok := currentUser(ctx); ok {
		td.User = &usr
	} else if usr, ok := s.resolveUser(ctx); ok {
		td.User = &usr
	}
	return td
}

// Package templates holds the embedded HTML pages and the echo renderer that serves them.
package templates

import (
	"embed"
	"encoding/base64"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"arthurflix/internal/domain/entity"
	"arthurflix/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const layoutFile = "layout.html"

//go:embed *.html
var files embed.FS

// Renderer implements echo.Renderer. Each page is parsed together with the layout so pages can
// all define the same "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	names, err := fs.Glob(files, "*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layoutFile {
			continue
		}

		page, err := template.New(name).Funcs(funcs()).ParseFS(files, layoutFile, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", name)
		}
		r.pages[strings.TrimSuffix(name, ".html")] = page
	}

	return r, nil
}

// Render executes the layout of page name with data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}

	return errors.WithStack(page.ExecuteTemplate(w, "layout", data))
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"pngDataURI": func(png []byte) template.URL {
			return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		},
		"until": func(t time.Time) string {
			return util.FormatDuration(time.Until(t))
		},
		"daysLeft": func(s *entity.MembershipStatus) int {
			if s == nil {
				return 0
			}

			return s.DaysLeft(time.Now())
		},
		"lower": strings.ToLower,
	}
}

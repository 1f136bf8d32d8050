package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/utils/errutil"
	"github.com/secmon-lab/datedmemo/pkg/utils/safe"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex    = "index.html"
	pageCreate   = "create.html"
	pageNotFound = "page_not_found.html"
)

type pages struct {
	templates map[string]*template.Template
}

func loadPages() (*pages, error) {
	p := &pages{templates: make(map[string]*template.Template)}
	for _, name := range []string{pageIndex, pageCreate, pageNotFound} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse template", goerr.V("page", name))
		}
		p.templates[name] = tmpl
	}
	return p, nil
}

// render executes the page into a buffer before the status line is written
func (p *pages) render(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	tmpl, ok := p.templates[name]
	if !ok {
		errutil.HandleHTTP(r.Context(), w, goerr.New("unknown page", goerr.V("page", name)), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render page", goerr.V("page", name)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, buf.Bytes())
}

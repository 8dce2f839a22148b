package core

import (
	"net/http"
	"strings"
)

const (
	// PageTemplate is the one template the page route renders.
	PageTemplate = "index.html"

	// PageName is the fixed value bound to the "name" key of the render
	// context on every request.
	PageName = "ben"
)

// PageHandler serves the single page route. Every other path falls
// through to a plain 404.
type PageHandler struct {
	env       string
	config    Config
	templates *TemplateSet
}

func NewPageHandler(env string, config Config, templates *TemplateSet) *PageHandler {
	return &PageHandler{
		env:       env,
		config:    config,
		templates: templates,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(req.URL.Path, "/")
	if path != "" {
		http.NotFound(w, req)
		return
	}

	if h.config.CacheEnabled {
		if html, ok := GetCachedPage(h.config, "index"); ok {
			w.Header().Set("Content-Type", "text/html")
			w.Write(html)
			return
		}
	}

	ctx := map[string]string{"name": PageName}

	ts := h.templates
	if h.env == "dev" {
		// Dev re-parses on every hit so template edits show up
		// without a restart.
		fresh, err := LoadTemplateSet(h.config.TemplatesDir)
		if err != nil {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		ts = fresh
	}

	out, err := ts.Render(PageTemplate, ctx)
	if err != nil {
		// Every render failure maps to the same status, body empty.
		// The cause is not inspected here.
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	if h.config.MinifyHTML {
		out = MinifyHTML(out)
	}

	if h.config.CacheEnabled {
		_ = SaveCachedPage(h.config, "index", out)
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write(out)
}

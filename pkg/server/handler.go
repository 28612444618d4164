package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlgen/internal/dev"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

// Render loads, builds and renders the named document.
func (s *Server) Render(ctx context.Context, name string) (*markup.Page, error) {
	_, span := s.tracer.Start(ctx, "htmlgen.render",
		trace.WithAttributes(attribute.String("htmlgen.document", name)),
	)
	defer span.End()

	page, err := s.build(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return page, nil
}

func (s *Server) build(name string) (*markup.Page, error) {
	entry, ok := docspec.Lookup(s.config.Dir, name)
	if !ok {
		return nil, errors.New("H040").
			WithDetailf("No document named %q in %s.", name, s.config.Dir)
	}
	doc, err := docspec.Load(entry.Path)
	if err != nil {
		return nil, err
	}
	page, err := s.builder.Build(doc)
	if err != nil {
		return nil, err
	}
	s.injectReload(page)
	return page, nil
}

// injectReload adds the live reload client to page.
func (s *Server) injectReload(page *markup.Page) {
	if s.reload != nil {
		page.AddScriptLiteral(dev.ClientScript())
	}
}

// handleIndex lists the documents in the source directory.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := docspec.Find(s.config.Dir)
	if err != nil {
		s.writeError(w, err)
		return
	}
	page := indexPage(s.config.Dir, entries)
	s.injectReload(page)
	s.writePage(w, http.StatusOK, page)
}

// handlePage renders a document, or serves a static file when the name
// carries an extension other than .html.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	switch ext := filepath.Ext(name); ext {
	case "":
	case ".html":
		name = strings.TrimSuffix(name, ext)
	default:
		s.static().ServeHTTP(w, r)
		return
	}

	page, err := s.Render(r.Context(), name)
	if err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Code != "H040" {
			s.metrics.RecordRender(0, err)
		}
		s.logger.Warn("render failed", "document", name, "error", err)
		s.writeError(w, err)
		return
	}

	html := page.String()
	s.metrics.RecordRender(len(html), nil)
	s.logger.Debug("rendered", "document", name, "bytes", len(html))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// static serves files from the source directory.
func (s *Server) static() http.Handler {
	return http.FileServer(http.Dir(s.config.Dir))
}

func (s *Server) writePage(w http.ResponseWriter, status int, page *markup.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if _, err := page.WriteTo(w); err != nil {
		s.logger.Debug("write failed", "error", err)
	}
}

// writeError renders err as an HTML error page. Missing documents are 404,
// everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code == "H040" {
		status = http.StatusNotFound
	}
	page := errorPage(err)
	s.injectReload(page)
	s.writePage(w, status, page)
}

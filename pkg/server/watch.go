package server

import (
	stderrors "errors"
	"path/filepath"

	"github.com/vango-dev/htmlgen/internal/dev"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
)

// handleChanges rebuilds changed documents and notifies reload clients.
// A document that fails to build shows the error overlay instead of
// reloading the page.
func (s *Server) handleChanges(changes []dev.Change) {
	var stylesheets []string
	full := false

	for _, c := range changes {
		switch c.Type {
		case dev.ChangeDocument:
			full = true
			if c.Removed {
				continue
			}
			if err := s.check(c.Path); err != nil {
				s.logger.Warn("document build failed", "path", c.Path, "error", err)
				s.metrics.RecordRender(0, err)
				if s.reload != nil {
					s.reload.NotifyError(compact(err))
				}
				return
			}
		case dev.ChangeCSS:
			if c.Removed {
				full = true
				continue
			}
			rel, err := filepath.Rel(s.config.Dir, c.Path)
			if err != nil {
				rel = filepath.Base(c.Path)
			}
			stylesheets = append(stylesheets, filepath.ToSlash(rel))
		default:
			full = true
		}
	}

	s.logger.Info("changes detected", "files", len(changes))
	if s.reload == nil {
		return
	}

	s.reload.ClearError()
	if full {
		s.reload.NotifyReload()
	} else {
		for _, file := range stylesheets {
			s.reload.NotifyCSS(file)
		}
	}
	s.metrics.RecordReload()
}

// check loads and builds the description at path.
func (s *Server) check(path string) error {
	doc, err := docspec.Load(path)
	if err != nil {
		return err
	}
	_, err = s.builder.Build(doc)
	return err
}

// compact returns the single-line form of err.
func compact(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.FormatCompact()
	}
	return err.Error()
}

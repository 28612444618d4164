// Package server provides the HTTP preview server for document descriptions.
//
// The server renders description files (*.yaml, *.yml, *.json) from a
// source directory on every request, so the browser always shows the
// current state of the file on disk.
//
// # Routes
//
//	GET /                 index of all documents in the source directory
//	GET /{name}           the rendered page for name.yaml, name.yml or name.json
//	GET /{name}.html      same as above
//	GET /metrics          Prometheus metrics (when enabled)
//	GET /_htmlgen/reload  live reload WebSocket (when enabled)
//	GET /*                any other file, served from the source directory
//
// # Live Reload
//
// With Watch and LiveReload enabled, the server watches the source
// directory. Changed documents are rebuilt first: a broken document shows
// an error overlay in connected browsers, a fixed one clears it and reloads
// the page. Stylesheet-only changes swap the stylesheets without a reload.
//
// # Observability
//
// Every request gets an OpenTelemetry span and is counted in Prometheus.
// Rendering a document opens a child span and records the page size or
// the error code.
package server

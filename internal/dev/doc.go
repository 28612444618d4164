// Package dev provides file watching and live reload for the preview server.
//
// This package implements:
//   - File watching for document, stylesheet and asset changes
//   - WebSocket-based browser refresh
//   - Error overlay in browser
//
// # Live Reload Protocol
//
// The browser connects to /_htmlgen/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css"}                   // Triggers stylesheet-only reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev

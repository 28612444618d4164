package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket route browsers connect to.
const ReloadPath = "/_htmlgen/reload"

// writeWait bounds a single message write to a slow client.
const writeWait = 5 * time.Second

// ReloadMessageType names what a browser should do with a message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is the JSON payload pushed to browsers.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// reloadClient is one connected browser. gorilla/websocket allows a single
// concurrent writer per connection, so writes go through mu.
type reloadClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *reloadClient) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// ReloadServer pushes reload messages to connected preview pages.
type ReloadServer struct {
	mu       sync.Mutex
	clients  map[*reloadClient]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a new reload server. A nil logger uses slog.Default.
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*reloadClient]struct{}),
		upgrader: websocket.Upgrader{
			// The preview server only listens locally.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request and keeps the connection registered
// until the browser goes away.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	c := &reloadClient{conn: conn}
	r.mu.Lock()
	r.clients[c] = struct{}{}
	r.mu.Unlock()
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	// Browsers never send anything; reading only detects the close.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	r.drop(c)
}

func (r *ReloadServer) drop(c *reloadClient) {
	r.mu.Lock()
	delete(r.clients, c)
	r.mu.Unlock()
	c.conn.Close()
}

// NotifyReload asks every page to reload.
func (r *ReloadServer) NotifyReload() { r.broadcast(ReloadMessage{Type: ReloadTypeFull}) }

// NotifyCSS asks every page to refresh its stylesheets after file changed.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows msg in an overlay on every page.
func (r *ReloadServer) NotifyError(msg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// ClearError removes the error overlay.
func (r *ReloadServer) ClearError() { r.broadcast(ReloadMessage{Type: ReloadTypeClear}) }

func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("encode reload message", "error", err)
		return
	}

	r.mu.Lock()
	targets := make([]*reloadClient, 0, len(r.clients))
	for c := range r.clients {
		targets = append(targets, c)
	}
	r.mu.Unlock()

	for _, c := range targets {
		if err := c.send(data); err != nil {
			r.logger.Debug("reload client dropped", "error", err)
			r.drop(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close disconnects every client.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[*reloadClient]struct{})
	r.mu.Unlock()

	for c := range clients {
		c.conn.Close()
	}
}

// ClientScript returns the inline script that connects a preview page to
// the reload server.
func ClientScript() string {
	return strings.ReplaceAll(clientScript, "{{path}}", ReloadPath)
}

// clientScript reconnects with exponential backoff, reloads pages, swaps
// stylesheet URLs for css messages and shows build errors in an overlay.
const clientScript = `(function () {
  var overlayID = "htmlgen-error-overlay";
  var delay = 500;

  function overlay(text) {
    var el = document.getElementById(overlayID);
    if (text === null) {
      if (el) el.remove();
      return;
    }
    if (!el) {
      el = document.createElement("pre");
      el.id = overlayID;
      el.style.cssText = "position:fixed;inset:0;margin:0;padding:24px;overflow:auto;" +
        "background:#111e;color:#f66;font:13px/1.5 monospace;white-space:pre-wrap;z-index:2147483647";
      document.body.appendChild(el);
    }
    el.textContent = text;
  }

  function refreshStyles() {
    var stamp = String(Date.now());
    document.querySelectorAll("link[rel=stylesheet]").forEach(function (link) {
      var url = new URL(link.href);
      url.searchParams.set("_reload", stamp);
      link.href = url.href;
    });
  }

  var handlers = {
    reload: function () { location.reload(); },
    css: refreshStyles,
    error: function (msg) { overlay(msg.error || ""); },
    clear: function () { overlay(null); }
  };

  function connect() {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + "{{path}}");
    ws.onopen = function () { delay = 500; };
    ws.onmessage = function (e) {
      try {
        var msg = JSON.parse(e.data);
        if (handlers[msg.type]) handlers[msg.type](msg);
      } catch (_) {}
    };
    ws.onclose = function () {
      setTimeout(connect, delay);
      delay = Math.min(delay * 2, 30000);
    };
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", connect);
  } else {
    connect();
  }
})();`

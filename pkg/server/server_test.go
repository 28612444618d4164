package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/dev"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

const helloDoc = `title: Hello
body:
  - heading: {level: 1, text: Hello}
  - paragraph: "a < b"
`

const brokenDoc = `body:
  - paragraph: fine
  - headline: oops
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestServer(t *testing.T, configure func(*ServerConfig)) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultServerConfig()
	cfg.Dir = dir
	if configure != nil {
		configure(cfg)
	}
	return New(cfg), dir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Index(t *testing.T) {
	s, dir := newTestServer(t, nil)
	writeFile(t, dir, "hello.yaml", helloDoc)
	writeFile(t, dir, "about.json", `{"title": "About"}`)
	writeFile(t, dir, "notes.txt", "not a document")

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html><html lang=\"en\">"))
	assert.Contains(t, body, `<ul><li><a href="/about">about</a></li><li><a href="/hello">hello</a></li></ul>`)
	assert.NotContains(t, body, "notes")
}

func TestServer_IndexEmpty(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>No documents found in ")
}

func TestServer_Page(t *testing.T) {
	s, dir := newTestServer(t, nil)
	writeFile(t, dir, "hello.yaml", helloDoc)

	for _, path := range []string{"/hello", "/hello.html"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, s, path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

			body := rec.Body.String()
			assert.Contains(t, body, "<title>Hello</title>")
			assert.Contains(t, body, "<h1>Hello</h1><p>a &lt; b</p>")
			assert.NotContains(t, body, dev.ReloadPath)
		})
	}
}

func TestServer_PageUsesConfiguredDoctype(t *testing.T) {
	s, dir := newTestServer(t, func(c *ServerConfig) {
		c.Doctype = markup.HTML4
	})
	writeFile(t, dir, "hello.yaml", helloDoc)

	rec := get(t, s, "/hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), markup.HTML4.Declaration()))
}

func TestServer_NotFound(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := get(t, s, "/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "H040")
	assert.Contains(t, rec.Body.String(), "<h1>Document not found</h1>")
}

func TestServer_BrokenDocument(t *testing.T) {
	s, dir := newTestServer(t, nil)
	writeFile(t, dir, "broken.yaml", brokenDoc)

	rec := get(t, s, "/broken")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<body class="error">`)
	assert.Contains(t, body, "H021")
	assert.Contains(t, body, "broken.yaml:3")
}

func TestServer_StaticFile(t *testing.T) {
	s, dir := newTestServer(t, nil)
	writeFile(t, dir, "style.css", "body{color:red}")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0755))
	writeFile(t, filepath.Join(dir, "img"), "logo.svg", "<svg></svg>")

	rec := get(t, s, "/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{color:red}", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = get(t, s, "/img/logo.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg></svg>", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	s, dir := newTestServer(t, func(c *ServerConfig) {
		c.Metrics = true
	})
	writeFile(t, dir, "hello.yaml", helloDoc)
	writeFile(t, dir, "broken.yaml", brokenDoc)
	require.NotNil(t, s.Registry())

	get(t, s, "/hello")
	get(t, s, "/broken")
	get(t, s, "/missing")

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `htmlgen_renders_total{status="success"} 1`)
	assert.Contains(t, body, `htmlgen_renders_total{status="error"} 1`)
	assert.Contains(t, body, `htmlgen_render_errors_total{code="H021"} 1`)
	assert.Contains(t, body, `htmlgen_requests_total{method="GET",route="/{name}",status="404"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestServer_MetricsDisabled(t *testing.T) {
	s, _ := newTestServer(t, nil)
	assert.Nil(t, s.Registry())

	rec := get(t, s, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_LiveReloadScript(t *testing.T) {
	s, dir := newTestServer(t, func(c *ServerConfig) {
		c.LiveReload = true
	})
	writeFile(t, dir, "hello.yaml", helloDoc)
	require.NotNil(t, s.Reload())

	for _, path := range []string{"/", "/hello", "/missing"} {
		rec := get(t, s, path)
		assert.Contains(t, rec.Body.String(), `"`+dev.ReloadPath+`"`, path)
	}
}

func dialReload(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + dev.ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return s.Reload().ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) dev.ReloadMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg dev.ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestServer_HandleChanges(t *testing.T) {
	s, dir := newTestServer(t, func(c *ServerConfig) {
		c.LiveReload = true
	})
	conn := dialReload(t, s)

	path := writeFile(t, dir, "page.yaml", brokenDoc)
	s.handleChanges([]dev.Change{{Path: path, Type: dev.ChangeDocument}})

	msg := readMessage(t, conn)
	assert.Equal(t, dev.ReloadTypeError, msg.Type)
	assert.Contains(t, msg.Error, "H021")

	writeFile(t, dir, "page.yaml", helloDoc)
	s.handleChanges([]dev.Change{{Path: path, Type: dev.ChangeDocument}})

	assert.Equal(t, dev.ReloadTypeClear, readMessage(t, conn).Type)
	assert.Equal(t, dev.ReloadTypeFull, readMessage(t, conn).Type)

	css := writeFile(t, dir, "style.css", "p{}")
	s.handleChanges([]dev.Change{{Path: css, Type: dev.ChangeCSS}})

	assert.Equal(t, dev.ReloadTypeClear, readMessage(t, conn).Type)
	msg = readMessage(t, conn)
	assert.Equal(t, dev.ReloadTypeCSS, msg.Type)
	assert.Equal(t, "style.css", msg.File)

	s.handleChanges([]dev.Change{{Path: path, Type: dev.ChangeDocument, Removed: true}})

	assert.Equal(t, dev.ReloadTypeClear, readMessage(t, conn).Type)
	assert.Equal(t, dev.ReloadTypeFull, readMessage(t, conn).Type)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s, dir := newTestServer(t, func(c *ServerConfig) {
		c.Watch = true
		c.LiveReload = true
	})
	writeFile(t, dir, "hello.yaml", helloDoc)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String() + "/hello")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "<h1>Hello</h1>")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Dir = filepath.Join(t.TempDir(), "missing")
	err := cfg.ValidateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H025")

	cfg.Dir = writeFile(t, t.TempDir(), "file.yaml", "")
	require.Error(t, cfg.ValidateConfig())

	cfg.Dir = t.TempDir()
	assert.NoError(t, cfg.ValidateConfig())
}

func TestRun_InvalidDir(t *testing.T) {
	s := New(&ServerConfig{Dir: filepath.Join(t.TempDir(), "missing")})
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H025")
}

func TestFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Doctype = "xhtml1.1"
	cfg.Server.Port = 8123
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "docs"

	sc := FromConfig(cfg)
	assert.Equal(t, cfg.ServerAddress(), sc.Address)
	assert.True(t, strings.HasSuffix(sc.Address, ":8123"))
	assert.Equal(t, markup.XHTML1_1, sc.Doctype)
	assert.Equal(t, cfg.SourcePath(), sc.Dir)
	assert.Equal(t, cfg.Server.Watch, sc.Watch)
	assert.Equal(t, cfg.Server.LiveReload, sc.LiveReload)
	assert.Equal(t, config.DefaultDebounce, sc.Debounce)
	assert.True(t, sc.Metrics)
	assert.Equal(t, "docs", sc.Namespace)
}

func TestNew_DefaultsAndClone(t *testing.T) {
	cfg := &ServerConfig{Dir: t.TempDir()}
	s := New(cfg)

	assert.Equal(t, "localhost:4000", s.Config().Address)
	assert.Equal(t, config.DefaultNamespace, s.Config().Namespace)
	assert.Empty(t, cfg.Address, "New must not modify the caller's config")
	assert.Nil(t, s.Reload())
	assert.NotNil(t, s.Handler())
}

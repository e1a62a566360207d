// Package server is the development harness around the portlet renderer.
// It serves the fragment two ways: raw, the way the host dashboard would
// receive it, and hydrated into a full page so the board can be inspected
// in a plain browser without the host platform.
package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/brettwhite-git/opportunity-kanban/internal/board"
	"github.com/brettwhite-git/opportunity-kanban/internal/portlet"
)

// StaticAssets resolves client script paths against a fixed base URL,
// mirroring how the host platform maps file cabinet paths to URLs.
type StaticAssets struct {
	BaseURL string
}

func (a StaticAssets) URL(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resolve asset: empty path")
	}
	base := strings.TrimRight(a.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path, nil
}

type Server struct {
	renderer *portlet.Renderer
	addr     string
}

func New(renderer *portlet.Renderer, addr string) *Server {
	return &Server{renderer: renderer, addr: addr}
}

// Handler returns the route table. Kept separate from ListenAndServe so
// tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /board", s.handleBoard)
	mux.HandleFunc("GET /portlet", s.handlePortlet)
	return mux
}

func (s *Server) ListenAndServe() error {
	slog.Info("listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/board", http.StatusFound)
}

// handlePortlet serves the bare fragment: snapshot script, loading
// placeholder, cache-busted client script reference. This is the exact
// payload a dashboard host would embed.
func (s *Server) handlePortlet(w http.ResponseWriter, r *http.Request) {
	var p portlet.Portlet
	s.renderer.Render(r.Context(), &p)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, p.HTML)
}

// handleBoard wraps the fragment in a page shell and hydrates it
// server-side, standing in for the client script so the full board is
// visible without a host.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	var p portlet.Portlet
	s.renderer.Render(r.Context(), &p)

	page := "<!DOCTYPE html><html><head><meta charset=\"utf-8\">" +
		"<title>" + p.Title + "</title></head><body>" +
		"<h1>" + p.Title + "</h1>" + p.HTML + "</body></html>"

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		slog.Error("parsing board page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	board.Hydrate(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		slog.Error("rendering board page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

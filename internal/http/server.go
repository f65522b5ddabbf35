package http

import (
	"html/template"
	nethttp "net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/claes/ytcard/internal/browse"
	"github.com/claes/ytcard/internal/card"
	"github.com/claes/ytcard/internal/format"
	"github.com/claes/ytcard/internal/model"
)

var mediaExtensions = map[string]struct{}{
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".m4v":  {},
	".mov":  {},
	".mp4":  {},
	".png":  {},
	".webm": {},
	".webp": {},
}

type server struct {
	root  string
	index *browse.Index
	f     format.Formatter
	tpl   *template.Template
}

// NewServer creates an HTTP handler serving video cards for the catalog
// under root.
func NewServer(root string, index *browse.Index, f format.Formatter) nethttp.Handler {
	s := &server{root: root, index: index, f: f}
	s.tpl = template.Must(template.New("page").Funcs(template.FuncMap{
		"card": func(v model.Video) (template.HTML, error) {
			return card.New(v, s.f).HTML()
		},
		"cardStyle":  card.Style,
		"cardScript": card.Script,
		"channelURL": card.ChannelPath,
		"duration":   s.f.Duration,
		"views":      s.f.Views,
		"ago":        s.f.TimeAgo,
		"join":       strings.Join,
	}).Parse(pageTpl))
	template.Must(s.tpl.New("watch").Parse(watchTpl))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	r.Get("/", s.handleGrid)
	r.Get("/watch", s.handleWatch)
	r.Get("/@{channel}", s.handleChannel)
	r.Get("/cards/{id}", s.handleCard)
	r.Get(strings.TrimSuffix(browse.MediaPrefix, "/")+"/*", s.handleMedia)
	r.Get("/health", HealthHandler(func() int { return len(s.index.Videos()) }).ServeHTTP)
	return r
}

func (s *server) handleGrid(w nethttp.ResponseWriter, r *nethttp.Request) {
	s.render(w, r, "page", model.Listing{Title: "Home", Videos: s.index.Videos()})
}

func (s *server) handleChannel(w nethttp.ResponseWriter, r *nethttp.Request) {
	ch, videos, ok := s.index.Channel(chi.URLParam(r, "channel"))
	if !ok {
		httpError(w, nethttp.StatusNotFound, "unknown channel")
		return
	}
	s.render(w, r, "page", model.Listing{Title: ch.Name, Videos: videos, Channel: &ch})
}

func (s *server) handleWatch(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := r.URL.Query().Get("v")
	if id == "" {
		httpError(w, nethttp.StatusBadRequest, "missing v parameter")
		return
	}
	e, ok := s.index.Video(id)
	if !ok {
		httpError(w, nethttp.StatusNotFound, "unknown video")
		return
	}
	s.render(w, r, "watch", e)
}

// handleCard serves a single card fragment for pages that load cards lazily.
func (s *server) handleCard(w nethttp.ResponseWriter, r *nethttp.Request) {
	e, ok := s.index.Video(chi.URLParam(r, "id"))
	if !ok {
		httpError(w, nethttp.StatusNotFound, "unknown video")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := card.New(e.Video, s.f).Render(w); err != nil {
		logger(r).WithError(err).Error("failed to render card")
	}
}

func (s *server) handleMedia(w nethttp.ResponseWriter, r *nethttp.Request) {
	p := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(p); err == nil {
			p = u
		}
	}
	rel := filepath.FromSlash(p)
	full := filepath.Join(s.root, rel)
	if _, ok := mediaExtensions[strings.ToLower(filepath.Ext(full))]; !ok || !browse.IsSubpath(s.root, full) {
		httpError(w, nethttp.StatusNotFound, "not found")
		return
	}
	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		httpError(w, nethttp.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	nethttp.ServeFile(w, r, full)
}

func (s *server) render(w nethttp.ResponseWriter, r *nethttp.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.ExecuteTemplate(w, name, data); err != nil {
		logger(r).WithError(err).WithField("template", name).Error("failed to render page")
	}
}

func httpError(w nethttp.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

// Package web provides the HTTP server rendering the marketing site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/content"
	"github.com/rizkyriyadi/noval-quex/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server renders the site pages and serves the JSON API behind them.
type Server struct {
	svc       *content.Service
	site      config.Site
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates the site server around a retrieval service.
func NewServer(svc *content.Service, site config.Site) (*Server, error) {
	funcMap := template.FuncMap{
		"formatPrice": tmplFormatPrice,
		"formatDate":  tmplFormatDate,
		"stars":       tmplStars,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		svc:       svc,
		site:      site,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/projects", s.handleProjects)
	s.mux.HandleFunc("/projects/", s.handleProjectDetail)
	s.mux.HandleFunc("/news", s.handleNews)
	s.mux.HandleFunc("/news/", s.handleNewsDetail)
	s.mux.HandleFunc("/about", s.handleAbout)
	s.mux.HandleFunc("/contact", s.handleContact)
	s.mux.HandleFunc("/newsletter", s.handleNewsletter)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/properties", s.handleAPIProperties)
	s.mux.HandleFunc("/api/news", s.handleAPINews)
	s.mux.HandleFunc("/api/contact", s.handleAPIContact)
	s.mux.HandleFunc("/api/newsletter", s.handleAPINewsletter)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving %s on http://localhost%s\n", s.site.Name, addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

// Template helper functions

// tmplFormatPrice renders whole-rupiah prices the way the sales team
// quotes them: billions as "Miliar", everything else as "Juta".
func tmplFormatPrice(price int64) string {
	if price >= 1_000_000_000 {
		return fmt.Sprintf("Rp %.1f Miliar", float64(price)/1_000_000_000)
	}
	return fmt.Sprintf("Rp %.0f Juta", float64(price)/1_000_000)
}

func tmplFormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

func tmplStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := ""
	for i := 0; i < rating; i++ {
		out += "★"
	}
	for i := rating; i < 5; i++ {
		out += "☆"
	}
	return out
}

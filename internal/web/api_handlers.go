package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/content"
	"github.com/rizkyriyadi/noval-quex/internal/filter"
)

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := "live"
	if s.svc.CatalogOnly() {
		mode = "catalog"
	}
	apiJSON(w, map[string]string{"status": "ok", "content": mode}, http.StatusOK)
}

// handleAPIProperties serves the filtered property list used by the
// listing page. The same type and q parameters as the HTML page apply.
func (s *Server) handleAPIProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	typeFilter := r.URL.Query().Get("type")
	if !catalog.ValidPropertyType(typeFilter) {
		typeFilter = string(catalog.TypeAll)
	}
	query := r.URL.Query().Get("q")

	props := s.svc.ListProperties(r.Context())
	props = filter.Apply(props, catalog.PropertyType(typeFilter), query)

	if props == nil {
		// An empty result is a valid, displayable state.
		props = []catalog.Property{}
	}
	apiJSON(w, props, http.StatusOK)
}

// handleAPINews serves articles newest-first, optionally limited.
func (s *Server) handleAPINews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			apiError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		apiJSON(w, s.svc.ListLatestNews(r.Context(), limit), http.StatusOK)
		return
	}

	apiJSON(w, s.svc.ListNews(r.Context()), http.StatusOK)
}

// handleAPIContact accepts a JSON contact submission. The write outcome
// travels in the Result payload; the HTTP status is 200 either way.
func (s *Server) handleAPIContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var form content.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)
	if form.Name == "" || form.Email == "" || form.Subject == "" || form.Message == "" {
		apiError(w, "name, email, subject and message are required", http.StatusBadRequest)
		return
	}

	apiJSON(w, s.svc.SubmitContactForm(r.Context(), form), http.StatusOK)
}

// handleAPINewsletter accepts a JSON newsletter subscription.
func (s *Server) handleAPINewsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" {
		apiError(w, "email is required", http.StatusBadRequest)
		return
	}

	apiJSON(w, s.svc.SubscribeNewsletter(r.Context(), body.Email), http.StatusOK)
}

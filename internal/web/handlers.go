package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/content"
	"github.com/rizkyriyadi/noval-quex/internal/filter"
)

type pageData struct {
	Site  config.Site
	Title string
	Flash string
}

type homeData struct {
	pageData
	Featured     []catalog.Property
	LatestNews   []catalog.NewsArticle
	Testimonials []catalog.Testimonial
}

type projectsData struct {
	pageData
	Properties []catalog.Property
	TypeFilter string
	Query      string
}

type projectDetailData struct {
	pageData
	Property catalog.Property
}

type newsListData struct {
	pageData
	// FeaturedArticle is the most recent article, shown prominently;
	// Rest holds the remainder in descending order.
	FeaturedArticle *catalog.NewsArticle
	Rest            []catalog.NewsArticle
}

type newsDetailData struct {
	pageData
	Article catalog.NewsArticle
}

type aboutData struct {
	pageData
	Team []catalog.TeamMember
}

type contactData struct {
	pageData
	Sent bool
}

func (s *Server) page(title string) pageData {
	return pageData{Site: s.site, Title: title}
}

// handleHome renders the landing page: featured properties, latest
// news, and testimonials.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w)
		return
	}

	data := homeData{
		pageData:     s.page(s.site.Tagline),
		Featured:     s.svc.ListFeaturedProperties(r.Context()),
		LatestNews:   s.svc.ListLatestNews(r.Context(), content.DefaultNewsLimit),
		Testimonials: s.svc.ListTestimonials(),
	}
	if msg := r.URL.Query().Get("newsletter"); msg != "" {
		data.Flash = msg
	}
	s.render(w, "home.html", data)
}

// handleProjects renders the property listing. The type and q query
// parameters drive the listing filter; the filtered-empty state is a
// normal page, not an error.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")
	if !catalog.ValidPropertyType(typeFilter) {
		typeFilter = string(catalog.TypeAll)
	}
	query := r.URL.Query().Get("q")

	props := s.svc.ListProperties(r.Context())
	props = filter.Apply(props, catalog.PropertyType(typeFilter), query)

	s.render(w, "projects.html", projectsData{
		pageData:   s.page("Our Projects"),
		Properties: props,
		TypeFilter: typeFilter,
		Query:      query,
	})
}

// handleProjectDetail renders one property, keyed by slug.
func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/projects/")
	if slug == "" || strings.Contains(slug, "/") {
		s.renderNotFound(w)
		return
	}

	p, err := s.svc.GetPropertyBySlug(r.Context(), slug)
	if errors.Is(err, content.ErrNotFound) {
		s.renderNotFound(w)
		return
	}

	s.render(w, "project_detail.html", projectDetailData{
		pageData: s.page(p.Title),
		Property: p,
	})
}

// handleNews renders the article listing with the newest article
// promoted to the featured slot.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles := s.svc.ListNews(r.Context())

	data := newsListData{pageData: s.page("News & Event")}
	if len(articles) > 0 {
		data.FeaturedArticle = &articles[0]
		data.Rest = articles[1:]
	}
	s.render(w, "news.html", data)
}

// handleNewsDetail renders one article, keyed by slug.
func (s *Server) handleNewsDetail(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/news/")
	if slug == "" || strings.Contains(slug, "/") {
		s.renderNotFound(w)
		return
	}

	n, err := s.svc.GetNewsBySlug(r.Context(), slug)
	if errors.Is(err, content.ErrNotFound) {
		s.renderNotFound(w)
		return
	}

	s.render(w, "news_detail.html", newsDetailData{
		pageData: s.page(n.Title),
		Article:  n,
	})
}

// handleAbout renders the company page with the team roster.
func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about.html", aboutData{
		pageData: s.page("About Us"),
		Team:     s.svc.ListTeamMembers(),
	})
}

// handleContact renders the contact form on GET and submits it on POST.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	data := contactData{pageData: s.page("Contact Us")}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		form := content.ContactForm{
			Name:    strings.TrimSpace(r.FormValue("name")),
			Email:   strings.TrimSpace(r.FormValue("email")),
			Phone:   strings.TrimSpace(r.FormValue("phone")),
			Subject: strings.TrimSpace(r.FormValue("subject")),
			Message: strings.TrimSpace(r.FormValue("message")),
		}
		if form.Name == "" || form.Email == "" || form.Subject == "" || form.Message == "" {
			data.Flash = "Please fill in all required fields."
			s.render(w, "contact.html", data)
			return
		}

		res := s.svc.SubmitContactForm(r.Context(), form)
		data.Flash = res.Message
		data.Sent = res.Success
	}

	s.render(w, "contact.html", data)
}

// handleNewsletter accepts the footer subscription form and bounces
// back to the home page with the outcome message.
func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		http.Redirect(w, r, "/?newsletter="+url.QueryEscape("Please enter your email address."), http.StatusSeeOther)
		return
	}

	res := s.svc.SubscribeNewsletter(r.Context(), email)
	http.Redirect(w, r, "/?newsletter="+url.QueryEscape(res.Message), http.StatusSeeOther)
}

// renderNotFound renders the dedicated not-found page. It is a
// distinct state from an empty listing.
func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	s.render(w, "not_found.html", s.page("Page Not Found"))
}

package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
	"github.com/rizkyriyadi/noval-quex/internal/config"
	"github.com/rizkyriyadi/noval-quex/internal/content"
)

// testServer builds a server in catalog-only mode.
func testServer(t *testing.T) *Server {
	t.Helper()
	return testServerWithStore(t, nil)
}

// testServerWithStore builds a server around a fake store.
func testServerWithStore(t *testing.T, fake *content.FakeStore) *Server {
	t.Helper()

	var st content.Store
	if fake != nil {
		st = fake
	}
	svc := content.New(st, catalog.Default())
	srv, err := NewServer(svc, config.DefaultSite())
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestHandleHome(t *testing.T) {
	w := get(t, testServer(t), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Featured Projects") {
		t.Error("expected featured section")
	}
	// Every bundled featured property appears.
	if !strings.Contains(body, "Green Valley Residence") || !strings.Contains(body, "Blue Horizon Villa") {
		t.Error("expected featured bundle properties on home page")
	}
	if !strings.Contains(body, "What Our Customers Say") {
		t.Error("expected testimonials section")
	}
}

func TestHandleHomeUnknownPathIs404(t *testing.T) {
	w := get(t, testServer(t), "/no-such-page")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Error("expected not-found page")
	}
}

func TestHandleProjectsListsEverything(t *testing.T) {
	w := get(t, testServer(t), "/projects")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, title := range []string{"Green Valley Residence", "Blue Horizon Villa", "Sudirman Sky Suites"} {
		if !strings.Contains(body, title) {
			t.Errorf("expected %q in listing", title)
		}
	}
}

func TestHandleProjectsTypeFilter(t *testing.T) {
	w := get(t, testServer(t), "/projects?type=villa")

	body := w.Body.String()
	if !strings.Contains(body, "Blue Horizon Villa") {
		t.Error("expected villa in filtered listing")
	}
	if strings.Contains(body, "Green Valley Residence") {
		t.Error("house should be filtered out")
	}
}

func TestHandleProjectsSearch(t *testing.T) {
	w := get(t, testServer(t), "/projects?q=bandung")

	body := w.Body.String()
	if !strings.Contains(body, "Green Valley Residence") {
		t.Error("expected location match in listing")
	}
	if strings.Contains(body, "Menteng Park Apartment") {
		t.Error("non-matching property should be filtered out")
	}
}

func TestHandleProjectsEmptyResultIsNotAnError(t *testing.T) {
	w := get(t, testServer(t), "/projects?q=zzzz-no-match")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No properties found") {
		t.Error("expected empty-state message")
	}
	if strings.Contains(body, "Page Not Found") {
		t.Error("empty listing must not render the not-found page")
	}
}

func TestHandleProjectsInvalidTypeTreatedAsAll(t *testing.T) {
	w := get(t, testServer(t), "/projects?type=castle")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Blue Horizon Villa") {
		t.Error("unknown type should fall back to all properties")
	}
}

func TestHandleProjectDetail(t *testing.T) {
	w := get(t, testServer(t), "/projects/blue-horizon-villa")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Blue Horizon Villa") {
		t.Error("expected property title")
	}
	if !strings.Contains(body, "Infinity Pool") {
		t.Error("expected amenities")
	}
}

func TestHandleProjectDetailNotFound(t *testing.T) {
	w := get(t, testServer(t), "/projects/not-a-real-project")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Error("expected distinct not-found page")
	}
}

func TestHandleProjectDetailPrefersStore(t *testing.T) {
	fake := &content.FakeStore{Props: []catalog.Property{
		{Title: "Store Villa", Slug: "store-villa", Type: catalog.TypeVilla, Price: 2_000_000_000},
	}}
	w := get(t, testServerWithStore(t, fake), "/projects/store-villa")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Store Villa") {
		t.Error("expected store-backed property")
	}
}

func TestHandleNews(t *testing.T) {
	w := get(t, testServer(t), "/news")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	// The newest bundled article takes the featured slot.
	if !strings.Contains(body, "Blue Horizon Villa Wins Best Coastal Development 2025") {
		t.Error("expected newest article featured")
	}
}

func TestHandleNewsDetail(t *testing.T) {
	w := get(t, testServer(t), "/news/green-valley-phase-2-now-open")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Green Valley Residence Phase 2 Now Open") {
		t.Error("expected article title")
	}
}

func TestHandleNewsDetailNotFound(t *testing.T) {
	w := get(t, testServer(t), "/news/never-published")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleAbout(t *testing.T) {
	w := get(t, testServer(t), "/about")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Meet the Team") {
		t.Error("expected team section")
	}
}

func TestHandleContactGet(t *testing.T) {
	w := get(t, testServer(t), "/contact")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Send Message") {
		t.Error("expected contact form")
	}
}

func TestHandleContactPost(t *testing.T) {
	fake := &content.FakeStore{}
	srv := testServerWithStore(t, fake)

	w := postForm(t, srv, "/contact", url.Values{
		"name":    {"Andi"},
		"email":   {"andi@example.com"},
		"subject": {"Visit"},
		"message": {"When can I come by?"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Thank you for your message") {
		t.Error("expected success flash")
	}
	if len(fake.Contacts) != 1 {
		t.Errorf("contacts stored = %d, want 1", len(fake.Contacts))
	}
}

func TestHandleContactPostMissingFields(t *testing.T) {
	fake := &content.FakeStore{}
	srv := testServerWithStore(t, fake)

	w := postForm(t, srv, "/contact", url.Values{"name": {"Andi"}})

	if !strings.Contains(w.Body.String(), "Please fill in all required fields") {
		t.Error("expected validation flash")
	}
	if len(fake.Contacts) != 0 {
		t.Error("incomplete form must not be stored")
	}
}

func TestHandleContactPostStoreFailure(t *testing.T) {
	srv := testServer(t) // no store: every write fails

	w := postForm(t, srv, "/contact", url.Values{
		"name":    {"Andi"},
		"email":   {"andi@example.com"},
		"subject": {"Visit"},
		"message": {"Hello"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: write failures surface in the page, not the status", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Failed to submit form") {
		t.Error("expected failure flash")
	}
}

func TestHandleNewsletterPost(t *testing.T) {
	fake := &content.FakeStore{}
	srv := testServerWithStore(t, fake)

	w := postForm(t, srv, "/newsletter", url.Values{"email": {"reader@example.com"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "newsletter=") {
		t.Errorf("location = %q, want outcome message", loc)
	}
	if len(fake.Subscriptions) != 1 {
		t.Errorf("subscriptions stored = %d, want 1", len(fake.Subscriptions))
	}
}

func TestHandleNewsletterGetNotAllowed(t *testing.T) {
	w := get(t, testServer(t), "/newsletter")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	w := get(t, testServer(t), "/static/style.css")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

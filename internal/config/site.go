package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

// Site holds the marketing identity rendered into every page: company
// details, navigation, and the home-page hero copy.
type Site struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`

	Contact struct {
		Phone    string `yaml:"phone"`
		WhatsApp string `yaml:"whatsapp"`
		Email    string `yaml:"email"`
		Address  string `yaml:"address"`
	} `yaml:"contact"`

	Social struct {
		Facebook  string `yaml:"facebook"`
		Instagram string `yaml:"instagram"`
		Twitter   string `yaml:"twitter"`
		LinkedIn  string `yaml:"linkedin"`
		YouTube   string `yaml:"youtube"`
	} `yaml:"social"`

	Navigation []NavItem `yaml:"navigation"`

	Hero struct {
		Title       string `yaml:"title"`
		Highlight   string `yaml:"highlight"`
		Subtitle    string `yaml:"subtitle"`
		Description string `yaml:"description"`
		CTAText     string `yaml:"cta_text"`
		CTALink     string `yaml:"cta_link"`
	} `yaml:"hero"`
}

// NavItem is one entry in the site navigation.
type NavItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// DefaultSite returns the embedded site configuration.
func DefaultSite() Site {
	site, err := parseSite(defaultSiteYAML)
	if err != nil {
		// The embedded document is fixed at build time; failing to
		// parse it is a programming error.
		panic(fmt.Sprintf("embedded site.yaml: %v", err))
	}
	return site
}

// LoadSite reads a site configuration file, falling back to the
// embedded default when path is empty or missing.
func LoadSite(path string) (Site, error) {
	if path == "" {
		return DefaultSite(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSite(), nil
	}
	if err != nil {
		return Site{}, fmt.Errorf("reading site config: %w", err)
	}

	return parseSite(data)
}

func parseSite(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("parsing site config: %w", err)
	}
	return site, nil
}

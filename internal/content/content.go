// Package content loads the copy and data shown on the site.
package content

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DefaultCarouselRadius is the distance of each experience card from the
// carousel axis, in CSS pixels.
const DefaultCarouselRadius = 400

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon,omitempty"`
}

type Skill struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Skills struct {
	Heading  string  `yaml:"heading"`
	Offering string  `yaml:"offering"`
	Items    []Skill `yaml:"items"`
}

type Picture struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Card is one entry of the experience carousel. Type links it to the
// detailed Experience shown in the alert.
type Card struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type ExperienceSection struct {
	Intro  string  `yaml:"intro"`
	Radius float64 `yaml:"radius"`
	Cards  []Card  `yaml:"cards"`
}

// Site is everything on the single page except the experience details.
type Site struct {
	Owner      string            `yaml:"owner"`
	Brand      string            `yaml:"brand"`
	Tagline    string            `yaml:"tagline"`
	Avatar     string            `yaml:"avatar"`
	Background string            `yaml:"background"`
	AboutMe    string            `yaml:"about_me"`
	Nav        []Link            `yaml:"nav"`
	Socials    []Link            `yaml:"socials"`
	Skills     Skills            `yaml:"skills"`
	Portfolio  []Picture         `yaml:"portfolio"`
	Experience ExperienceSection `yaml:"experience"`
}

// LoadSite reads and parses site.yaml from fsys.
func LoadSite(fsys fs.FS, name string) (*Site, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", name, err)
	}
	if s.Experience.Radius <= 0 {
		s.Experience.Radius = DefaultCarouselRadius
	}
	return &s, nil
}

// Card returns the card with the given type.
func (s *Site) Card(typ string) (Card, bool) {
	for _, c := range s.Experience.Cards {
		if c.Type == typ {
			return c, true
		}
	}
	return Card{}, false
}

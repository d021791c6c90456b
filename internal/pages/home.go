package pages

import (
	g "maragu.dev/gomponents"
)

type Site struct {
	Title   string
	Tagline string
}

// Home composes the full homepage around an already built features section.
func Home(site Site, features g.Node) g.Node {
	return Layout(
		PageConfig{
			Title:       site.Title,
			Description: site.Tagline,
		},
		Hero(site.Title, site.Tagline),
		features,
	)
}

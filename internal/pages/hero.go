package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the banner above the features grid.
func Hero(title, tagline string) g.Node {
	return Header(
		Class("hero"),
		Div(
			Class("container"),
			H1(Class("hero__title"), g.Text(title)),
			g.If(tagline != "", P(Class("hero__subtitle"), g.Text(tagline))),
		),
	)
}

package features

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomepageFeatures renders the fixed feature list as a grid section.
func HomepageFeatures(icons IconResolver, styles Styles) g.Node {
	return FeaturesSection(FeatureList(), icons, styles)
}

// FeaturesSection renders items in order, one column per item. The
// positional index is emitted as a display key only.
func FeaturesSection(items []FeatureItem, icons IconResolver, styles Styles) g.Node {
	cards := make([]g.Node, 0, len(items))
	for idx, item := range items {
		cards = append(cards, Feature(item, icons, g.Attr("data-feature-index", strconv.Itoa(idx))))
	}

	return Section(
		Class(styles.Features),
		Div(
			Class("container"),
			Div(
				Class("row"),
				g.Group(cards),
			),
		),
	)
}

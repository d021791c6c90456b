package features

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/MrSnakeDoc/features/internal/assets"
)

// IconResolver turns an icon reference into renderable markup.
type IconResolver interface {
	Icon(ref assets.IconRef) g.Node
}

// Feature renders one card: icon, then centered title and description.
// attrs are added to the card's outer column.
func Feature(item FeatureItem, icons IconResolver, attrs ...g.Node) g.Node {
	return Div(
		Class("col col--4"),
		g.Group(attrs),
		Div(
			Class("text--center"),
			icons.Icon(item.Icon),
		),
		Div(
			Class("text--center padding-horiz--md"),
			H3(g.Text(item.Title)),
			P(item.Description),
		),
	)
}

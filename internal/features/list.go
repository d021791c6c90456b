package features

import (
	g "maragu.dev/gomponents"

	"github.com/MrSnakeDoc/features/internal/assets"
)

// FeatureItem is one homepage card.
type FeatureItem struct {
	Title       string
	Icon        assets.IconRef
	Description g.Node
}

// Titles and descriptions are kept verbatim, trailing spaces included.
var featureList = [...]FeatureItem{
	{
		Title:       "Release Management Principles ",
		Icon:        assets.Mountain,
		Description: g.Group{g.Text("Abstractions ftw")},
	},
	{
		Title:       "How to deploy code Changes",
		Icon:        assets.Tree,
		Description: g.Group{g.Text("Release Management Mechanics")},
	},
	{
		Title:       "MySQL on Kubernetes",
		Icon:        assets.React,
		Description: g.Group{g.Text("Let's use terraform instead! ")},
	},
}

// FeatureList returns the cards in display order. The slice is a copy.
func FeatureList() []FeatureItem {
	out := make([]FeatureItem, len(featureList))
	copy(out, featureList[:])
	return out
}

// IconRefs lists the icons the feature list needs resolved.
func IconRefs() []assets.IconRef {
	refs := make([]assets.IconRef, 0, len(featureList))
	for _, item := range featureList {
		refs = append(refs, item.Icon)
	}
	return refs
}

package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	g "maragu.dev/gomponents"

	"github.com/MrSnakeDoc/features/internal/assets"
)

// stubIcons renders a bare svg tagged with the ref, so tests can tell icons apart.
type stubIcons struct{}

func (stubIcons) Icon(ref assets.IconRef) g.Node {
	return g.El("svg", g.Attr("role", "img"), g.Attr("data-ref", string(ref)))
}

type card struct {
	index   string
	title   string
	text    string
	hasIcon bool
	iconRef string
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, tag); f != nil {
			return f
		}
	}
	return nil
}

// parseCards returns one entry per element carrying data-feature-index, in document order.
func parseCards(t *testing.T, markup string) []card {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	var cards []card
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if idx, ok := attr(n, "data-feature-index"); ok {
				c := card{index: idx}
				if h := find(n, "h3"); h != nil {
					c.title = textContent(h)
				}
				if p := find(n, "p"); p != nil {
					c.text = textContent(p)
				}
				if svg := find(n, "svg"); svg != nil {
					role, _ := attr(svg, "role")
					c.hasIcon = role == "img"
					c.iconRef, _ = attr(svg, "data-ref")
				}
				cards = append(cards, c)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return cards
}

func TestHomepageFeaturesRendersListInOrder(t *testing.T) {
	cards := parseCards(t, renderString(t, HomepageFeatures(stubIcons{}, DefaultStyles())))
	require.Len(t, cards, 3)

	want := []card{
		{index: "0", title: "Release Management Principles ", text: "Abstractions ftw", hasIcon: true, iconRef: string(assets.Mountain)},
		{index: "1", title: "How to deploy code Changes", text: "Release Management Mechanics", hasIcon: true, iconRef: string(assets.Tree)},
		{index: "2", title: "MySQL on Kubernetes", text: "Let's use terraform instead! ", hasIcon: true, iconRef: string(assets.React)},
	}
	assert.Equal(t, want, cards)
}

func TestHomepageFeaturesIsDeterministic(t *testing.T) {
	icons, err := assets.LoadCatalog(DefaultStyles().FeatureSvg, IconRefs()...)
	require.NoError(t, err)

	first := renderString(t, HomepageFeatures(icons, DefaultStyles()))
	second := renderString(t, HomepageFeatures(icons, DefaultStyles()))
	assert.Equal(t, first, second)
}

func TestHomepageFeaturesWithEmbeddedIcons(t *testing.T) {
	styles := DefaultStyles()
	icons, err := assets.LoadCatalog(styles.FeatureSvg, IconRefs()...)
	require.NoError(t, err)

	markup := renderString(t, HomepageFeatures(icons, styles))
	assert.True(t, strings.HasPrefix(markup, `<section class="features"><div class="container"><div class="row">`))
	assert.Equal(t, 3, strings.Count(markup, `class="featureSvg"`))

	for _, c := range parseCards(t, markup) {
		assert.True(t, c.hasIcon, "card %s lacks role=img", c.index)
	}
}

func TestFeaturesSectionCardCountFollowsList(t *testing.T) {
	base := FeatureList()
	baseCards := parseCards(t, renderString(t, FeaturesSection(base, stubIcons{}, DefaultStyles())))

	t.Run("removed entry", func(t *testing.T) {
		cards := parseCards(t, renderString(t, FeaturesSection(base[:2], stubIcons{}, DefaultStyles())))
		require.Len(t, cards, 2)
		assert.Equal(t, baseCards[:2], cards)
	})

	t.Run("added entry", func(t *testing.T) {
		extra := append(FeatureList(), FeatureItem{
			Title:       "Extra",
			Icon:        assets.Tree,
			Description: g.Group{g.Text("More")},
		})
		cards := parseCards(t, renderString(t, FeaturesSection(extra, stubIcons{}, DefaultStyles())))
		require.Len(t, cards, 4)
		assert.Equal(t, baseCards, cards[:3])
		assert.Equal(t, "Extra", cards[3].title)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, parseCards(t, renderString(t, FeaturesSection(nil, stubIcons{}, DefaultStyles()))))
	})
}

func TestFeatureListReturnsCopy(t *testing.T) {
	list := FeatureList()
	list[0].Title = "mutated"
	list = append(list[:1], list[2:]...)

	fresh := FeatureList()
	require.Len(t, fresh, 3)
	assert.Equal(t, "Release Management Principles ", fresh[0].Title)
	assert.Equal(t, "How to deploy code Changes", fresh[1].Title)
}

func TestFeatureDescriptionAddsNoWrapper(t *testing.T) {
	got := renderString(t, Feature(FeatureList()[0], stubIcons{}))
	assert.Contains(t, got, "<p>Abstractions ftw</p>")
	assert.Contains(t, got, "<h3>Release Management Principles </h3>")
	assert.True(t, strings.HasPrefix(got, `<div class="col col--4">`))

	// Top to bottom: icon block, then heading, then paragraph.
	nodes, err := html.ParseFragment(strings.NewReader(got), &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	var order []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "svg" || n.Data == "h3" || n.Data == "p") {
			order = append(order, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nodes[0])
	assert.Equal(t, []string{"svg", "h3", "p"}, order)

	var blocks []*html.Node
	for c := nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			blocks = append(blocks, c)
		}
	}
	require.Len(t, blocks, 2)
	iconClass, _ := attr(blocks[0], "class")
	assert.Equal(t, "text--center", iconClass)
	assert.NotNil(t, find(blocks[0], "svg"))
	assert.Nil(t, find(blocks[0], "h3"))
	textClass, _ := attr(blocks[1], "class")
	assert.Equal(t, "text--center padding-horiz--md", textClass)
}

func TestIconRefsFollowListOrder(t *testing.T) {
	assert.Equal(t, []assets.IconRef{assets.Mountain, assets.Tree, assets.React}, IconRefs())
}

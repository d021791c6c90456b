package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	g "maragu.dev/gomponents"
)

//go:embed img/*.svg css/*.css
var files embed.FS

// IconRef names an SVG file under img/.
type IconRef string

const (
	Mountain IconRef = "undraw_docusaurus_mountain.svg"
	Tree     IconRef = "undraw_docusaurus_tree.svg"
	React    IconRef = "undraw_docusaurus_react.svg"
)

// Static exposes the embedded img/ and css/ trees for the file server.
func Static() fs.FS {
	return files
}

// Catalog holds icons resolved once at startup. It is read-only after
// LoadCatalog returns and safe for concurrent use.
type Catalog struct {
	class string
	icons map[IconRef]string
}

// LoadCatalog resolves refs from the embedded image directory, stamping
// every SVG root with class and role="img".
func LoadCatalog(class string, refs ...IconRef) (*Catalog, error) {
	return loadCatalog(files, class, refs)
}

func loadCatalog(fsys fs.FS, class string, refs []IconRef) (*Catalog, error) {
	c := &Catalog{
		class: class,
		icons: make(map[IconRef]string, len(refs)),
	}
	for _, ref := range refs {
		if _, ok := c.icons[ref]; ok {
			continue
		}
		markup, err := resolve(fsys, ref, class)
		if err != nil {
			return nil, err
		}
		c.icons[ref] = markup
	}
	return c, nil
}

// Len reports how many distinct icons were resolved.
func (c *Catalog) Len() int { return len(c.icons) }

// Icon returns the prepared SVG for ref. Unknown refs render an empty
// svg element so the card keeps its image role.
func (c *Catalog) Icon(ref IconRef) g.Node {
	if markup, ok := c.icons[ref]; ok {
		return g.Raw(markup)
	}
	return g.El("svg", g.Attr("class", c.class), g.Attr("role", "img"))
}

func resolve(fsys fs.FS, ref IconRef, class string) (string, error) {
	name := path.Join("img", path.Base(string(ref)))
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read icon %q: %w", ref, err)
	}

	nodes, err := html.ParseFragment(strings.NewReader(string(data)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse icon %q: %w", ref, err)
	}

	var root *html.Node
	for _, n := range nodes {
		if root = findSVG(n); root != nil {
			break
		}
	}
	if root == nil {
		return "", fmt.Errorf("icon %q has no <svg> root", ref)
	}

	setAttr(root, "class", class)
	setAttr(root, "role", "img")

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", fmt.Errorf("failed to render icon %q: %w", ref, err)
	}
	return b.String(), nil
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "svg" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findSVG(child); found != nil {
			return found
		}
	}
	return nil
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

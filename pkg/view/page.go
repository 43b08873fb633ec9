package view

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContainerID is the id of the element headlines are rendered into
const ContainerID = "headlines-container"

// ErrNoContainer returned when the host document has no container element
var ErrNoContainer = errors.New("container element not found")

// Page is a live html document with a container element.
// Replace is the only mutation, readers and the writer are serialized by the page lock.
type Page struct {
	lock      sync.RWMutex
	doc       *html.Node
	container *html.Node
}

// NewPage parses the host document and locates the container by its id
func NewPage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	sel := goquery.NewDocumentFromNode(doc).Find("#" + ContainerID)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrNoContainer, ContainerID)
	}

	return &Page{doc: doc, container: sel.Nodes[0]}, nil
}

// Replace clears the container and appends the given nodes in order
func (p *Page) Replace(nodes []Node) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for c := p.container.FirstChild; c != nil; c = p.container.FirstChild {
		p.container.RemoveChild(c)
	}
	for _, n := range nodes {
		p.container.AppendChild(toHTML(n))
	}
}

// Render writes the whole document
func (p *Page) Render(w io.Writer) error {
	p.lock.RLock()
	defer p.lock.RUnlock()
	if err := html.Render(w, p.doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// ContainerHTML returns the inner html of the container
func (p *Page) ContainerHTML() (string, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	var buf bytes.Buffer
	for c := p.container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render container: %w", err)
		}
	}
	return buf.String(), nil
}

// toHTML converts a node description to a detached html element
func toHTML(n Node) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag))}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}

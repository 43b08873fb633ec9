// Package view maps headlines to a description of the container content and applies
// that description to a live html document.
package view

import "github.com/umputun/headlines/pkg/domain"

// status messages written into the container
const (
	MsgFailed  = "Failed to load news. Is the API server running?"
	MsgNoItems = "No headlines found."
)

// class names used by rendered elements
const (
	ClassStatus = "loading-message"
	ClassCard   = "headline-card"
)

// Attr is a single element attribute, kept in declaration order
type Attr struct {
	Key string
	Val string
}

// Node describes an element to be written into the container.
// Text is written as an escaped text child before Children.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

// Attr returns the value of the named attribute and whether it is set
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Describe returns the container content for the given headlines.
// Nil or empty input yields a single "no headlines" status message, otherwise one card per headline in order.
func Describe(headlines []domain.Headline) []Node {
	if len(headlines) == 0 {
		return []Node{Status(MsgNoItems)}
	}
	res := make([]Node, 0, len(headlines))
	for _, h := range headlines {
		res = append(res, Card(h))
	}
	return res
}

// Failure returns the container content shown when headlines could not be loaded
func Failure() []Node {
	return []Node{Status(MsgFailed)}
}

// Status makes a status message paragraph
func Status(msg string) Node {
	return Node{Tag: "p", Attrs: []Attr{{Key: "class", Val: ClassStatus}}, Text: msg}
}

// Card makes a headline card, a link opening in a new tab. Title and link are used as is.
func Card(h domain.Headline) Node {
	link := Node{
		Tag:   "a",
		Attrs: []Attr{{Key: "href", Val: h.Link}, {Key: "target", Val: "_blank"}},
		Text:  h.Title,
	}
	return Node{Tag: "div", Attrs: []Attr{{Key: "class", Val: ClassCard}}, Children: []Node{link}}
}

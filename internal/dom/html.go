// SPDX-License-Identifier: MIT
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// HTMLDocument is a server-side Document over a parsed HTML tree.
// It is safe for concurrent use; every access holds the document lock.
type HTMLDocument struct {
	mu   sync.Mutex
	root *html.Node
}

// NewDocument returns an empty document with html, head and body elements
func NewDocument() *HTMLDocument {
	doc, err := ParseHTML(strings.NewReader(skeleton))
	if err != nil {
		panic(fmt.Sprintf("dom: parsing skeleton: %v", err))
	}
	return doc
}

// ParseHTML parses markup into a document. Missing html, head and body
// elements are synthesised the way a browser would.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// Document makes HTMLDocument usable as its own Environment
func (d *HTMLDocument) Document() (Document, error) {
	return d, nil
}

// Render writes the document as HTML
func (d *HTMLDocument) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// String renders the document, returning "" if rendering fails
func (d *HTMLDocument) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *HTMLDocument) Head() Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Head }))
}

func (d *HTMLDocument) Body() Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body }))
}

func (d *HTMLDocument) Root() Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(d.documentElement())
}

func (d *HTMLDocument) GetElementByID(id string) Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == "" {
		return nil
	}
	return d.wrap(findFirst(d.root, func(n *html.Node) bool { return attr(n, "id") == id }))
}

func (d *HTMLDocument) QuerySelector(selector string) Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	group, ok := parseSelectorGroup(selector)
	if !ok {
		return nil
	}
	return d.wrap(findFirst(d.root, func(n *html.Node) bool {
		_, matched := group.match(n)
		return matched
	}))
}

// QuerySelectorAll returns every matching element in tree order
func (d *HTMLDocument) QuerySelectorAll(selector string) []Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	group, ok := parseSelectorGroup(selector)
	if !ok {
		return nil
	}
	var out []Element
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if _, matched := group.match(n); matched {
			out = append(out, d.wrap(n))
		}
	})
	return out
}

func (d *HTMLDocument) CreateElement(tag string) Element {
	tag = strings.ToLower(tag)
	return &htmlElement{doc: d, node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

func (d *HTMLDocument) ComputedStyle(el Element) StyleDeclaration {
	e, ok := el.(*htmlElement)
	if !ok || e.doc != d {
		return computedStyle{}
	}
	return computedStyle{doc: d, node: e.node}
}

func (d *HTMLDocument) documentElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// wrap returns a nil interface for a nil node
func (d *HTMLDocument) wrap(n *html.Node) Element {
	if n == nil {
		return nil
	}
	return &htmlElement{doc: d, node: n}
}

type htmlElement struct {
	doc  *HTMLDocument
	node *html.Node
}

func (e *htmlElement) TagName() string {
	return e.node.Data
}

func (e *htmlElement) ID() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return attr(e.node, "id")
}

func (e *htmlElement) SetID(id string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.node, "id", id)
}

func (e *htmlElement) InnerHTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if isRawText(e.node) && c.Type == html.TextNode {
			buf.WriteString(c.Data)
			continue
		}
		html.Render(&buf, c)
	}
	return buf.String()
}

func (e *htmlElement) SetInnerHTML(markup string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}

	if isRawText(e.node) {
		if markup != "" {
			e.node.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		}
		return
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

func (e *htmlElement) AppendChild(child Element) error {
	c, ok := child.(*htmlElement)
	if !ok || c.doc != e.doc {
		return fmt.Errorf("%w: child belongs to another document", ErrTypeMismatch)
	}

	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
	return nil
}

func (e *htmlElement) Style() InlineStyle {
	return inlineStyle{el: e}
}

func isRawText(n *html.Node) bool {
	return n.DataAtom == atom.Style || n.DataAtom == atom.Script
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

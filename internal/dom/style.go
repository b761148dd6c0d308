// SPDX-License-Identifier: MIT
package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseInline reads a style attribute. Unparsable attributes read as empty.
func parseInline(text string) []*css.Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil
	}
	return decls
}

func formatInline(decls []*css.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		s := d.Property + ": " + d.Value
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s+";")
	}
	return strings.Join(parts, " ")
}

type inlineStyle struct {
	el *htmlElement
}

func (s inlineStyle) GetPropertyValue(name string) string {
	s.el.doc.mu.Lock()
	defer s.el.doc.mu.Unlock()

	value, _ := lastDeclaration(parseInline(attr(s.el.node, "style")), name)
	return value
}

func (s inlineStyle) SetProperty(name, value string) {
	s.el.doc.mu.Lock()
	defer s.el.doc.mu.Unlock()

	decls := parseInline(attr(s.el.node, "style"))
	kept := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.Property != name {
			kept = append(kept, d)
			continue
		}
		if value != "" && !replaced {
			kept = append(kept, &css.Declaration{Property: name, Value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		kept = append(kept, &css.Declaration{Property: name, Value: value})
	}

	if len(kept) == 0 {
		removeAttr(s.el.node, "style")
		return
	}
	setAttr(s.el.node, "style", formatInline(kept))
}

func lastDeclaration(decls []*css.Declaration, name string) (string, bool) {
	value, found := "", false
	for _, d := range decls {
		if d.Property == name {
			value, found = d.Value, true
		}
	}
	return value, found
}

// computedStyle resolves values through the document's style elements and
// inline styles. Custom properties inherit from ancestors.
type computedStyle struct {
	doc  *HTMLDocument
	node *html.Node
}

func (s computedStyle) GetPropertyValue(name string) string {
	if s.doc == nil || s.node == nil {
		return ""
	}
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()

	sheets := s.doc.stylesheets()
	inherits := strings.HasPrefix(name, "--")
	for n := s.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if value, ok := specifiedValue(n, name, sheets); ok {
			return value
		}
		if !inherits {
			break
		}
	}
	return ""
}

type cascaded struct {
	value     string
	important bool
	inline    bool
	spec      specificity
	order     int
}

func (c cascaded) less(o cascaded) bool {
	if c.important != o.important {
		return o.important
	}
	if c.inline != o.inline {
		return o.inline
	}
	if c.spec != o.spec {
		return c.spec.less(o.spec)
	}
	return c.order < o.order
}

// specifiedValue returns the cascade winner for name on n, if any declaration applies
func specifiedValue(n *html.Node, name string, sheets []*css.Stylesheet) (string, bool) {
	var best cascaded
	found := false
	consider := func(c cascaded) {
		if !found || best.less(c) {
			best = c
			found = true
		}
	}

	order := 0
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules {
			if rule.Kind != css.QualifiedRule {
				continue
			}
			order++
			group, ok := parseSelectorGroup(strings.Join(rule.Selectors, ","))
			if !ok {
				continue
			}
			spec, matched := group.match(n)
			if !matched {
				continue
			}
			for _, d := range rule.Declarations {
				if d.Property == name {
					consider(cascaded{value: d.Value, important: d.Important, spec: spec, order: order})
				}
			}
		}
	}

	for _, d := range parseInline(attr(n, "style")) {
		if d.Property == name {
			order++
			consider(cascaded{value: d.Value, important: d.Important, inline: true, order: order})
		}
	}

	return best.value, found
}

// stylesheets parses every style element in tree order, skipping ones that fail to parse
func (d *HTMLDocument) stylesheets() []*css.Stylesheet {
	var sheets []*css.Stylesheet
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Style {
			return
		}
		var text strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				text.WriteString(c.Data)
			}
		}
		sheet, err := parser.Parse(text.String())
		if err != nil {
			return
		}
		sheets = append(sheets, sheet)
	})
	return sheets
}

// SPDX-License-Identifier: MIT
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// The server-side document understands compound selectors built from a
// type, #id, .class and :root, joined by descendant combinators, plus
// comma separated groups. Anything else never matches.

type specificity [3]int

func (s specificity) less(o specificity) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

type compound struct {
	tag     string
	id      string
	classes []string
	root    bool
}

// complexSelector is a descendant chain, outermost first
type complexSelector []compound

type selectorGroup []complexSelector

func parseSelectorGroup(s string) (selectorGroup, bool) {
	var group selectorGroup
	for _, part := range strings.Split(s, ",") {
		sel, ok := parseComplex(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		group = append(group, sel)
	}
	return group, len(group) > 0
}

func parseComplex(s string) (complexSelector, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}
	sel := make(complexSelector, 0, len(fields))
	for _, f := range fields {
		c, ok := parseCompound(f)
		if !ok {
			return nil, false
		}
		sel = append(sel, c)
	}
	return sel, true
}

func parseCompound(s string) (compound, bool) {
	var c compound
	i := nextBoundary(s, 0)
	if i > 0 {
		c.tag = strings.ToLower(s[:i])
		if c.tag == "*" {
			c.tag = ""
		}
	}
	for i < len(s) {
		kind := s[i]
		end := nextBoundary(s, i+1)
		name := s[i+1 : end]
		if name == "" {
			return compound{}, false
		}
		switch kind {
		case '#':
			c.id = name
		case '.':
			c.classes = append(c.classes, name)
		case ':':
			if strings.ToLower(name) != "root" {
				return compound{}, false
			}
			c.root = true
		default:
			return compound{}, false
		}
		i = end
	}
	return c, true
}

func nextBoundary(s string, from int) int {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '#', '.', ':', '[', '>', '+', '~':
			return i
		}
	}
	return len(s)
}

func (c compound) specificity() specificity {
	var s specificity
	if c.id != "" {
		s[0]++
	}
	s[1] += len(c.classes)
	if c.root {
		s[1]++
	}
	if c.tag != "" {
		s[2]++
	}
	return s
}

func (c compound) matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && n.Data != c.tag {
		return false
	}
	if c.id != "" && attr(n, "id") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(attr(n, "class"))
		for _, want := range c.classes {
			found := false
			for _, h := range have {
				if h == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	if c.root && (n.Parent == nil || n.Parent.Type != html.DocumentNode) {
		return false
	}
	return true
}

func (sel complexSelector) specificity() specificity {
	var total specificity
	for _, c := range sel {
		s := c.specificity()
		for i := range total {
			total[i] += s[i]
		}
	}
	return total
}

func (sel complexSelector) match(n *html.Node) bool {
	last := len(sel) - 1
	if !sel[last].matches(n) {
		return false
	}
	cur := n.Parent
	for i := last - 1; i >= 0; i-- {
		for cur != nil && !sel[i].matches(cur) {
			cur = cur.Parent
		}
		if cur == nil {
			return false
		}
		cur = cur.Parent
	}
	return true
}

// match reports the highest specificity among the group's selectors that match n
func (g selectorGroup) match(n *html.Node) (specificity, bool) {
	var best specificity
	matched := false
	for _, sel := range g {
		if !sel.match(n) {
			continue
		}
		if s := sel.specificity(); !matched || best.less(s) {
			best = s
		}
		matched = true
	}
	return best, matched
}

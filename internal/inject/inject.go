// SPDX-License-Identifier: MIT

// Package inject writes flattened themes into a document: as one managed
// style block (Inject), as an inline bootstrap script for server-rendered
// pages (GenerateScript), or as inline properties on the root element
// (Update). Read closes the loop by resolving a variable's live value.
package inject

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

// DefaultStyleID identifies the managed style block
const DefaultStyleID = "pte-vars"

// Options control naming and placement. Zero values select the defaults.
type Options struct {
	Prefix   string // variable prefix, default "pte"
	Selector string // rule selector, default ":root"
	ID       string // style element id, default "pte-vars"
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = themes.DefaultPrefix
	}
	if o.Selector == "" {
		o.Selector = themes.DefaultSelector
	}
	if o.ID == "" {
		o.ID = DefaultStyleID
	}
	return o
}

// CSS returns the rule text Inject and GenerateScript write. Any "</" in a
// value is written as the CSS escape "<\/" so the text cannot close the
// style element it is rendered into.
func CSS(theme *themes.Theme, opts Options) string {
	opts = opts.withDefaults()
	return rawTextSafe.Replace(themes.GenerateCSS(theme, opts.Selector, opts.Prefix))
}

var rawTextSafe = strings.NewReplacer("</", `<\/`)

// Inject makes sure exactly one style element with opts.ID exists in the
// document head and that its content reflects theme. Earlier content is
// replaced entirely, so variables missing from theme disappear.
func Inject(env dom.Environment, theme *themes.Theme, opts Options) error {
	opts = opts.withDefaults()

	doc, err := dom.Acquire(env)
	if err != nil {
		return fmt.Errorf("inject theme: %w", err)
	}
	head := doc.Head()
	if head == nil {
		return fmt.Errorf("inject theme: %w: document has no head", dom.ErrEnvironment)
	}

	style := doc.GetElementByID(opts.ID)
	if style != nil && style.TagName() != "style" {
		return fmt.Errorf("inject theme: %w: #%s is a <%s>, not a <style>", dom.ErrTypeMismatch, opts.ID, style.TagName())
	}

	css := CSS(theme, opts)

	if style == nil {
		style = doc.CreateElement("style")
		style.SetID(opts.ID)
		if err := head.AppendChild(style); err != nil {
			return fmt.Errorf("inject theme: %w", err)
		}
	}
	style.SetInnerHTML(css)
	return nil
}
